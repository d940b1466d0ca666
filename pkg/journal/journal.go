package journal

import (
	"github.com/blotterhq/blotter/pkg/domain"
)

// Journal is the undoable action log. It owns two ordered sequences of
// actions: done (currently reflected in the receiver, oldest first) and
// undone (reversed and eligible for redo, most-recently-undone last).
//
// The journal never owns the portfolio: the receiver is supplied by the
// caller on every operation and may be shared with other code between
// operations. The journal performs no internal locking; callers using one
// journal/portfolio pair from multiple goroutines must serialize externally.
type Journal struct {
	done   []domain.TradeAction
	undone []domain.TradeAction
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{}
}

// Execute applies an action to the portfolio and records it. On success the
// action is appended to the done sequence and the undone sequence is cleared:
// redo history does not survive a new branch. If the portfolio rejects the
// mutation, both sequences are left exactly as they were and the rejection
// is returned.
func (j *Journal) Execute(a domain.TradeAction, p *domain.Portfolio) error {
	if err := domain.Apply(a, p); err != nil {
		return err
	}
	j.done = append(j.done, a)
	j.undone = j.undone[:0]
	return nil
}

// Undo reverses the most recent done action against the portfolio and moves
// it onto the undone sequence. It returns (false, nil) when there is nothing
// to undo; that is an expected boundary, not an error. If the compensating
// mutation is rejected by the portfolio, the sequences are left untouched
// and the rejection is returned.
func (j *Journal) Undo(p *domain.Portfolio) (bool, error) {
	if len(j.done) == 0 {
		return false, nil
	}
	a := j.done[len(j.done)-1]
	if err := domain.Invert(a, p); err != nil {
		return false, err
	}
	j.done = j.done[:len(j.done)-1]
	j.undone = append(j.undone, a)
	return true, nil
}

// Redo re-applies the most recently undone action and moves it back onto the
// done sequence. It returns (false, nil) when there is nothing to redo. If
// the portfolio rejects the mutation, the sequences are left untouched and
// the rejection is returned.
func (j *Journal) Redo(p *domain.Portfolio) (bool, error) {
	if len(j.undone) == 0 {
		return false, nil
	}
	a := j.undone[len(j.undone)-1]
	if err := domain.Apply(a, p); err != nil {
		return false, err
	}
	j.undone = j.undone[:len(j.undone)-1]
	j.done = append(j.done, a)
	return true, nil
}

// Snapshot returns a new journal whose sequences are element-wise
// independent copies of the current ones. The returned journal shares no
// mutable storage with the source: operations on either side are never
// observable through the other. Actions are immutable value data, so copying
// the slice containers is a total copy.
func (j *Journal) Snapshot() *Journal {
	snap := &Journal{
		done:   make([]domain.TradeAction, len(j.done)),
		undone: make([]domain.TradeAction, len(j.undone)),
	}
	copy(snap.done, j.done)
	copy(snap.undone, j.undone)
	return snap
}

// Len returns the number of actions in the done sequence: the size of the
// currently-applied audit trail.
func (j *Journal) Len() int {
	return len(j.done)
}

// Entries returns a copy of the done sequence in application order, for
// rendering or archiving the audit trail.
func (j *Journal) Entries() []domain.TradeAction {
	out := make([]domain.TradeAction, len(j.done))
	copy(out, j.done)
	return out
}

// Pending returns the number of undone actions eligible for redo.
func (j *Journal) Pending() int {
	return len(j.undone)
}

// Replay applies every done action, in order, to a portfolio. Run against a
// freshly initialized portfolio it reproduces the observable state the live
// receiver held when the trail was recorded; this is the correctness
// contract behind both undo/redo and snapshot-plus-replay.
func (j *Journal) Replay(p *domain.Portfolio) error {
	for _, a := range j.done {
		if err := domain.Apply(a, p); err != nil {
			return err
		}
	}
	return nil
}
