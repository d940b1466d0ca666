package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/blotterhq/blotter"
	httpadapter "github.com/blotterhq/blotter/internal/adapters/http"
	"github.com/blotterhq/blotter/internal/logging"
	"github.com/blotterhq/blotter/pkg/adapters/memory"
	"github.com/blotterhq/blotter/pkg/adapters/redis"
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/blotterhq/blotter/pkg/observability"
	"github.com/blotterhq/blotter/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the audit API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		redisURL, _ := cmd.Flags().GetString("redis")
		port, _ := cmd.Flags().GetInt("port")
		cash, _ := cmd.Flags().GetFloat64("cash")

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		var archive ports.ArchiveStore = memory.NewStore()
		if redisURL != "" {
			archive = redis.New(redisURL, "", 0)
		}

		metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
		desk, err := blotter.New(
			blotter.WithLogger(logger),
			blotter.WithArchive(archive),
			blotter.WithHooks(metrics.Hooks()),
		)
		if err != nil {
			return err
		}

		portfolio := domain.NewPortfolio(cash)
		handler, err := httpadapter.NewHandler(desk, portfolio, logger)
		if err != nil {
			return err
		}

		addr := fmt.Sprintf(":%d", port)
		logger.Info("audit API listening", "addr", addr)
		return http.ListenAndServe(addr, handler)
	},
}

func init() {
	serveCmd.Flags().Int("port", 8086, "HTTP port")
	serveCmd.Flags().Float64("cash", 1_000_000, "Opening cash balance")
	rootCmd.AddCommand(serveCmd)
}
