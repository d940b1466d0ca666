package main

import (
	"github.com/blotterhq/blotter/internal/cli"
	"github.com/spf13/cobra"
)

var trailCmd = &cobra.Command{
	Use:   "trail [name]",
	Short: "Render an archived audit trail (requires --redis)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		redisURL, _ := cmd.Flags().GetString("redis")
		list, _ := cmd.Flags().GetBool("list")

		opts := cli.TrailOptions{RedisURL: redisURL, List: list}
		if len(args) == 1 {
			opts.Name = args[0]
		}
		if !opts.List && opts.Name == "" {
			return cmd.Help()
		}
		return cli.ShowTrail(opts)
	},
}

func init() {
	trailCmd.Flags().Bool("list", false, "List archived trail names")
	rootCmd.AddCommand(trailCmd)
}
