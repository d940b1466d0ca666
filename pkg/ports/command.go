package ports

import "github.com/blotterhq/blotter/pkg/domain"

// Command is the open-set escape hatch for action kinds defined outside this
// module. The closed domain.TradeAction set is preferred when the kinds are
// known at build time; Command exists so third-party code can add kinds
// without recompiling the journal.
//
// Implementations must be pure data plus behavior: a Command must never hold
// a reference to a Portfolio, and the portfolio is always passed explicitly
// to Apply and Invert.
type Command interface {
	// Apply performs the forward mutation.
	Apply(p *domain.Portfolio) error

	// Invert performs the exact compensating mutation for a prior Apply.
	Invert(p *domain.Portfolio) error

	// Describe returns a one-line human-readable audit entry.
	Describe() string

	// Clone returns an independent value copy, used by snapshots to sever
	// all sharing with the live log.
	Clone() Command
}
