package main

import (
	"log/slog"

	"github.com/blotterhq/blotter"
	"github.com/blotterhq/blotter/internal/logging"
	mcpadapter "github.com/blotterhq/blotter/pkg/adapters/mcp"
	"github.com/blotterhq/blotter/pkg/adapters/memory"
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose the journal as an MCP server on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		cash, _ := cmd.Flags().GetFloat64("cash")

		// Stdout carries the MCP protocol; logging stays on stderr.
		desk, err := blotter.New(
			blotter.WithLogger(logging.New(slog.LevelWarn)),
			blotter.WithArchive(memory.NewStore()),
		)
		if err != nil {
			return err
		}

		portfolio := domain.NewPortfolio(cash)
		return mcpadapter.NewServer(desk, portfolio).ServeStdio()
	},
}

func init() {
	mcpCmd.Flags().Float64("cash", 1_000_000, "Opening cash balance")
	rootCmd.AddCommand(mcpCmd)
}
