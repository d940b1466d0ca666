package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventExecute  EventType = "execute"
	EventUndo     EventType = "undo"
	EventRedo     EventType = "redo"
	EventSnapshot EventType = "snapshot"
	EventRejected EventType = "rejected"
)

// JournalEvent describes one journal operation for observers.
type JournalEvent struct {
	Timestamp time.Time   `json:"timestamp"`
	Type      EventType   `json:"type"`
	Action    TradeAction `json:"action,omitempty"`
	TrailLen  int         `json:"trail_len"`
	Err       error       `json:"-"`
}

// JournalHooks defines callbacks for journal observability. Nil hooks are
// skipped; hooks must not mutate the portfolio or the journal.
type JournalHooks struct {
	OnExecute  func(context.Context, *JournalEvent)
	OnUndo     func(context.Context, *JournalEvent)
	OnRedo     func(context.Context, *JournalEvent)
	OnSnapshot func(context.Context, *JournalEvent)
	OnRejected func(context.Context, *JournalEvent)
}
