package main

import (
	"github.com/blotterhq/blotter/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Replay a YAML trade script through the journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		redisURL, _ := cmd.Flags().GetString("redis")
		cash, _ := cmd.Flags().GetFloat64("cash")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		return cli.Execute(cli.RunOptions{
			ScriptPath: args[0],
			Cash:       cash,
			RedisURL:   redisURL,
			Debug:      debug,
			NoBanner:   noBanner,
		})
	},
}

func init() {
	runCmd.Flags().Float64("cash", 1_000_000, "Opening cash balance (overridden by the script's opening_cash)")
	runCmd.Flags().Bool("no-banner", false, "Suppress the startup banner")
	rootCmd.AddCommand(runCmd)
}
