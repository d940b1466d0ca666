package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
// When stdout is not a TTY (pipes, CI), markdown passes through untouched.
func NewRenderer() func(string) (string, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// TrailMarkdown renders an audit trail as a markdown table, one row per
// recorded action in application order.
func TrailMarkdown(trail []domain.TradeAction) string {
	var b strings.Builder
	b.WriteString("# Audit Trail\n\n")
	if len(trail) == 0 {
		b.WriteString("*(empty)*\n")
		return b.String()
	}

	b.WriteString("| # | Side | Qty | Symbol | Price | Notional |\n")
	b.WriteString("|---|------|-----|--------|-------|----------|\n")
	for i, a := range trail {
		side := "BUY"
		if a.Kind == domain.KindSell {
			side = "SELL"
		}
		fmt.Fprintf(&b, "| %d | %s | %d | %s | $%.2f | $%.2f |\n",
			i+1, side, a.Quantity, a.Symbol, a.Price, a.Notional())
	}
	return b.String()
}
