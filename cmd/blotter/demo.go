package main

import (
	"github.com/blotterhq/blotter/internal/cli"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through the canonical undo/redo/snapshot scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		return cli.Demo(debug)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
