package cli

import (
	"context"
	"fmt"

	"github.com/blotterhq/blotter"
	"github.com/blotterhq/blotter/internal/presentation/tui"
	"github.com/blotterhq/blotter/pkg/domain"
)

// Demo walks the canonical trade sequence: three trades, two undos, a redo,
// a snapshot, and a divergence that proves the snapshot is frozen.
func Demo(debug bool) error {
	logger := newLogger(debug)
	desk, err := blotter.New(blotter.WithLogger(logger))
	if err != nil {
		return err
	}

	tui.PrintBanner(blotter.Version)

	ctx := context.Background()
	portfolio := domain.NewPortfolio(1_000_000)

	fmt.Println("--- Executing trades ---")
	trades := []domain.TradeAction{
		domain.Buy("AAPL", 100, 185.50),
		domain.Buy("GOOGL", 50, 140.25),
		domain.Sell("MSFT", 75, 420.00),
	}
	for _, a := range trades {
		if err := desk.Execute(ctx, a, portfolio); err != nil {
			// MSFT sell fails: nothing held. The journal records only what
			// actually succeeded.
			fmt.Printf("  rejected: %s (%v)\n", a, err)
			continue
		}
		fmt.Printf("  executed: %s (cash: $%.2f)\n", a, portfolio.Cash())
	}

	fmt.Println("\n--- Undo last trade ---")
	if ok, err := desk.Undo(ctx, portfolio); err != nil {
		return err
	} else if ok {
		fmt.Printf("  cash restored to $%.2f\n", portfolio.Cash())
	}

	fmt.Println("\n--- Redo ---")
	if ok, err := desk.Redo(ctx, portfolio); err != nil {
		return err
	} else if ok {
		fmt.Printf("  cash back to $%.2f\n", portfolio.Cash())
	}

	fmt.Println("\n--- Snapshot (independent copy) ---")
	snapshot := desk.Snapshot(ctx)
	fmt.Printf("  snapshot holds %d trades\n", snapshot.Len())

	// Keep trading on the live journal.
	if err := desk.Execute(ctx, domain.Sell("AAPL", 50, 190.00), portfolio); err != nil {
		return err
	}
	fmt.Printf("  live journal now holds %d trades, snapshot still %d\n",
		desk.Len(), snapshot.Len())

	fmt.Println()
	return RenderSummary(desk.Trail(), portfolio)
}
