package ports

import (
	"context"

	"github.com/blotterhq/blotter/pkg/domain"
)

// ArchiveStore persists frozen audit trails (the done sequence of a journal
// snapshot). The live journal itself is never stored: archiving is a layer
// on top of the plain-data trail representation, so a stored trail has no
// further relationship with the journal it was copied from.
type ArchiveStore interface {
	// Save persists a trail under a name, overwriting any previous trail
	// with that name.
	Save(ctx context.Context, name string, trail []domain.TradeAction) error

	// Load retrieves a trail by name.
	// Returns domain.ErrTrailNotFound if no trail exists under that name.
	Load(ctx context.Context, name string) ([]domain.TradeAction, error)

	// Delete removes a trail by name.
	Delete(ctx context.Context, name string) error

	// List returns the names of all archived trails.
	List(ctx context.Context) ([]string, error)
}
