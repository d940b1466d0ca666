package domain

import "fmt"

// Apply performs the forward mutation described by an action against a
// portfolio. It is a pure function of its inputs: no global state, no side
// channels. A failed application leaves the portfolio untouched.
func Apply(a TradeAction, p *Portfolio) error {
	if err := a.Validate(); err != nil {
		return err
	}
	switch a.Kind {
	case KindBuy:
		return p.Adjust(a.Symbol, a.Quantity, -a.Notional())
	case KindSell:
		return p.Adjust(a.Symbol, -a.Quantity, a.Notional())
	default:
		return fmt.Errorf("%w: apply %q", ErrUnknownActionKind, a.Kind)
	}
}

// Invert performs the exact compensating mutation for an action, restoring
// the portfolio to its pre-Apply observable state. Only the journal calls
// Invert, and only immediately after popping the matching action from its
// done sequence.
func Invert(a TradeAction, p *Portfolio) error {
	if err := a.Validate(); err != nil {
		return err
	}
	switch a.Kind {
	case KindBuy:
		return p.Adjust(a.Symbol, -a.Quantity, a.Notional())
	case KindSell:
		return p.Adjust(a.Symbol, a.Quantity, -a.Notional())
	default:
		return fmt.Errorf("%w: invert %q", ErrUnknownActionKind, a.Kind)
	}
}

// SelfCheck verifies that every discriminant in Kinds is handled by both
// Apply and Invert. Go switches are not exhaustive at compile time, so this
// runs once at startup: a kind added to Kinds without dispatch arms fails
// here deterministically instead of surfacing mid-session.
//
// The probe runs against throwaway portfolios funded well above any probe
// notional, so the only possible failure is an unhandled discriminant.
func SelfCheck() error {
	for _, kind := range Kinds() {
		probe := TradeAction{Kind: kind, Symbol: "SELFCHECK", Quantity: 1, Price: 1}

		p := NewPortfolio(1000)
		// Sell probes need an existing position to reverse out of.
		if err := p.Adjust(probe.Symbol, 10, 0); err != nil {
			return fmt.Errorf("self-check setup: %w", err)
		}

		if err := Apply(probe, p); err != nil {
			return fmt.Errorf("self-check: kind %q not applicable: %w", kind, err)
		}
		if err := Invert(probe, p); err != nil {
			return fmt.Errorf("self-check: kind %q not invertible: %w", kind, err)
		}
		if p.Cash() != 1000 || p.Position(probe.Symbol) != 10 {
			return fmt.Errorf("self-check: kind %q apply/invert do not compose to identity", kind)
		}
	}
	return nil
}
