package blotter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blotterhq/blotter/internal/logging"
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/blotterhq/blotter/pkg/journal"
	"github.com/blotterhq/blotter/pkg/ports"
)

// Version is the release version reported by the CLI and adapters.
var Version = "0.3.0"

// ErrNoArchive is returned by Archive when no archive store is configured.
var ErrNoArchive = errors.New("no archive store configured")

// Desk is the high-level entry point for the blotter library. It couples a
// journal with observability hooks, a structured logger, and an optional
// trail archive. The portfolio stays caller-owned and is passed explicitly
// to every mutating call, exactly as with the underlying journal.
type Desk struct {
	journal *journal.Journal
	hooks   domain.JournalHooks
	logger  *slog.Logger
	archive ports.ArchiveStore
}

// Option defines a functional option for configuring the Desk.
type Option func(*Desk)

// WithHooks registers observability hooks.
func WithHooks(hooks domain.JournalHooks) Option {
	return func(d *Desk) {
		d.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Desk) {
		d.logger = logger
	}
}

// WithArchive sets the store used by Archive to persist frozen trails.
func WithArchive(store ports.ArchiveStore) Option {
	return func(d *Desk) {
		d.archive = store
	}
}

// New creates a Desk with an empty journal. It runs the dispatch self-check
// first so an unhandled action kind fails construction instead of surfacing
// mid-session.
func New(opts ...Option) (*Desk, error) {
	if err := domain.SelfCheck(); err != nil {
		return nil, fmt.Errorf("dispatch self-check failed: %w", err)
	}

	d := &Desk{
		journal: journal.New(),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Execute applies an action to the portfolio and records it in the journal.
func (d *Desk) Execute(ctx context.Context, a domain.TradeAction, p *domain.Portfolio) error {
	if err := d.journal.Execute(a, p); err != nil {
		d.logger.WarnContext(ctx, "action rejected", "action", a.String(), "err", err)
		d.emit(ctx, d.hooks.OnRejected, domain.EventRejected, a, err)
		return err
	}
	d.logger.InfoContext(ctx, "action executed", "action", a.String(), "trail_len", d.journal.Len())
	d.emit(ctx, d.hooks.OnExecute, domain.EventExecute, a, nil)
	return nil
}

// Undo reverses the most recent action. Returns (false, nil) when the trail
// is empty.
func (d *Desk) Undo(ctx context.Context, p *domain.Portfolio) (bool, error) {
	entries := d.journal.Entries()
	ok, err := d.journal.Undo(p)
	if err != nil {
		d.logger.WarnContext(ctx, "undo rejected", "err", err)
		d.emit(ctx, d.hooks.OnRejected, domain.EventRejected, entries[len(entries)-1], err)
		return false, err
	}
	if !ok {
		d.logger.DebugContext(ctx, "nothing to undo")
		return false, nil
	}
	d.logger.InfoContext(ctx, "action undone", "action", entries[len(entries)-1].String())
	d.emit(ctx, d.hooks.OnUndo, domain.EventUndo, entries[len(entries)-1], nil)
	return true, nil
}

// Redo re-applies the most recently undone action. Returns (false, nil) when
// there is nothing to redo.
func (d *Desk) Redo(ctx context.Context, p *domain.Portfolio) (bool, error) {
	ok, err := d.journal.Redo(p)
	if err != nil {
		d.logger.WarnContext(ctx, "redo rejected", "err", err)
		d.emit(ctx, d.hooks.OnRejected, domain.EventRejected, domain.TradeAction{}, err)
		return false, err
	}
	if !ok {
		d.logger.DebugContext(ctx, "nothing to redo")
		return false, nil
	}
	entries := d.journal.Entries()
	d.logger.InfoContext(ctx, "action redone", "action", entries[len(entries)-1].String())
	d.emit(ctx, d.hooks.OnRedo, domain.EventRedo, entries[len(entries)-1], nil)
	return true, nil
}

// Snapshot returns a fully independent copy of the journal at this instant.
func (d *Desk) Snapshot(ctx context.Context) *journal.Journal {
	snap := d.journal.Snapshot()
	d.logger.InfoContext(ctx, "journal snapshot taken", "trail_len", snap.Len())
	d.emit(ctx, d.hooks.OnSnapshot, domain.EventSnapshot, domain.TradeAction{}, nil)
	return snap
}

// Archive snapshots the journal and persists the frozen trail under a name.
func (d *Desk) Archive(ctx context.Context, name string) error {
	if d.archive == nil {
		return ErrNoArchive
	}
	snap := d.Snapshot(ctx)
	if err := d.archive.Save(ctx, name, snap.Entries()); err != nil {
		return fmt.Errorf("failed to archive trail %q: %w", name, err)
	}
	d.logger.InfoContext(ctx, "trail archived", "name", name, "trail_len", snap.Len())
	return nil
}

// Trail returns the audit trail in application order.
func (d *Desk) Trail() []domain.TradeAction {
	return d.journal.Entries()
}

// Len returns the number of actions currently applied.
func (d *Desk) Len() int {
	return d.journal.Len()
}

// Pending returns the number of undone actions eligible for redo.
func (d *Desk) Pending() int {
	return d.journal.Pending()
}

func (d *Desk) emit(ctx context.Context, hook func(context.Context, *domain.JournalEvent), typ domain.EventType, a domain.TradeAction, err error) {
	if hook == nil {
		return
	}
	hook(ctx, &domain.JournalEvent{
		Timestamp: time.Now(),
		Type:      typ,
		Action:    a,
		TrailLen:  d.journal.Len(),
		Err:       err,
	})
}
