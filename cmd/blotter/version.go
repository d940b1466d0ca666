package main

import (
	"fmt"
	"strings"

	"github.com/blotterhq/blotter"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of blotter",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blotter version %s\n", strings.TrimSpace(blotter.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
