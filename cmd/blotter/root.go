package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blotter",
	Short: "Blotter is an undoable trade journal",
	Long:  `Blotter records reversible trade actions against a portfolio, with undo/redo, frozen snapshots, and archived audit trails.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("redis", "", "Redis address for trail archiving (e.g. localhost:6379)")
}
