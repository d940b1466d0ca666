package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/blotterhq/blotter"
	"github.com/blotterhq/blotter/internal/logging"
	"github.com/blotterhq/blotter/internal/presentation/tui"
	"github.com/blotterhq/blotter/pkg/adapters/memory"
	"github.com/blotterhq/blotter/pkg/adapters/redis"
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/blotterhq/blotter/pkg/ports"
	"github.com/blotterhq/blotter/pkg/registry"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	ScriptPath string
	Cash       float64
	RedisURL   string
	Debug      bool
	NoBanner   bool
}

// Execute handles the 'run' command logic: load the script, replay its
// directives through the registry, render the resulting trail.
func Execute(opts RunOptions) error {
	logger := newLogger(opts.Debug)

	script, err := LoadScript(opts.ScriptPath)
	if err != nil {
		return err
	}

	cash := opts.Cash
	if script.OpeningCash > 0 {
		cash = script.OpeningCash
	}

	desk, err := blotter.New(
		blotter.WithLogger(logger),
		blotter.WithArchive(newArchive(opts.RedisURL)),
	)
	if err != nil {
		return err
	}

	if !opts.NoBanner {
		tui.PrintBanner(blotter.Version)
	}

	ctx := context.Background()
	portfolio := domain.NewPortfolio(cash)
	reg := registry.New()

	for i, step := range script.Steps {
		if err := reg.Execute(ctx, step.Op, desk, portfolio, step.Params); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}

	return RenderSummary(desk.Trail(), portfolio)
}

// RenderSummary prints the trail and portfolio state as rendered markdown.
func RenderSummary(trail []domain.TradeAction, portfolio *domain.Portfolio) error {
	md := tui.TrailMarkdown(trail)
	md += fmt.Sprintf("\n**Cash:** $%.2f\n", portfolio.Cash())
	for sym, qty := range portfolio.Positions() {
		md += fmt.Sprintf("- %s: %d shares\n", sym, qty)
	}

	render := tui.NewRenderer()
	out, err := render(md)
	if err != nil {
		// Fall back to raw markdown rather than dropping the trail.
		out = md
	}
	fmt.Fprint(os.Stdout, out)
	return nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

func newArchive(redisURL string) ports.ArchiveStore {
	if redisURL == "" {
		return memory.NewStore()
	}
	return redis.New(redisURL, "", 0)
}
