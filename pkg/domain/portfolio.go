package domain

import "fmt"

// Portfolio is the receiver: caller-owned mutable state that trade actions
// are applied to. It exposes only primitive adjust/query operations; actions
// never reach into its fields, and the journal never stores or copies it.
type Portfolio struct {
	cash      float64
	positions map[string]int64
}

// NewPortfolio creates a portfolio with an opening cash balance.
func NewPortfolio(cash float64) *Portfolio {
	return &Portfolio{
		cash:      cash,
		positions: make(map[string]int64),
	}
}

// Adjust atomically applies a signed share delta for a symbol together with
// a signed cash delta. It validates the result first: if the mutation would
// drive the position or the cash balance negative, nothing changes and the
// rejection is returned to the caller.
func (p *Portfolio) Adjust(symbol string, qtyDelta int64, cashDelta float64) error {
	newQty := p.positions[symbol] + qtyDelta
	if newQty < 0 {
		return fmt.Errorf("%w: %s would go to %d shares", ErrInsufficientPosition, symbol, newQty)
	}
	newCash := p.cash + cashDelta
	if newCash < 0 {
		return fmt.Errorf("%w: balance would go to $%.2f", ErrInsufficientCash, newCash)
	}

	if newQty == 0 {
		delete(p.positions, symbol)
	} else {
		p.positions[symbol] = newQty
	}
	p.cash = newCash
	return nil
}

// Cash returns the current cash balance.
func (p *Portfolio) Cash() float64 {
	return p.cash
}

// Position returns the share count held for a symbol (zero if none).
func (p *Portfolio) Position(symbol string) int64 {
	return p.positions[symbol]
}

// Positions returns a copy of all non-zero positions.
func (p *Portfolio) Positions() map[string]int64 {
	out := make(map[string]int64, len(p.positions))
	for sym, qty := range p.positions {
		out[sym] = qty
	}
	return out
}
