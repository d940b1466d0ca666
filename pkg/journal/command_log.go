package journal

import (
	"github.com/blotterhq/blotter/pkg/domain"
	"github.com/blotterhq/blotter/pkg/ports"
)

// CommandLog mirrors the Journal protocol over the open-set ports.Command
// interface. It exists for callers that need action kinds this module does
// not know about; everything else should prefer Journal and the closed
// domain.TradeAction set, which gets exhaustiveness checking for free.
type CommandLog struct {
	done   []ports.Command
	undone []ports.Command
}

// NewCommandLog creates an empty open-set log.
func NewCommandLog() *CommandLog {
	return &CommandLog{}
}

// Execute applies a command and records it, clearing redo history. The
// command is not recorded if the portfolio rejects the mutation.
func (l *CommandLog) Execute(cmd ports.Command, p *domain.Portfolio) error {
	if err := cmd.Apply(p); err != nil {
		return err
	}
	l.done = append(l.done, cmd)
	l.undone = l.undone[:0]
	return nil
}

// Undo reverses the most recent command. Returns (false, nil) on an empty
// log.
func (l *CommandLog) Undo(p *domain.Portfolio) (bool, error) {
	if len(l.done) == 0 {
		return false, nil
	}
	cmd := l.done[len(l.done)-1]
	if err := cmd.Invert(p); err != nil {
		return false, err
	}
	l.done = l.done[:len(l.done)-1]
	l.undone = append(l.undone, cmd)
	return true, nil
}

// Redo re-applies the most recently undone command. Returns (false, nil) on
// an empty redo sequence.
func (l *CommandLog) Redo(p *domain.Portfolio) (bool, error) {
	if len(l.undone) == 0 {
		return false, nil
	}
	cmd := l.undone[len(l.undone)-1]
	if err := cmd.Apply(p); err != nil {
		return false, err
	}
	l.undone = l.undone[:len(l.undone)-1]
	l.done = append(l.done, cmd)
	return true, nil
}

// Snapshot deep-copies the log. Commands are not guaranteed to be value
// types, so each element is cloned through its own Clone capability rather
// than copied by assignment.
func (l *CommandLog) Snapshot() *CommandLog {
	snap := &CommandLog{
		done:   make([]ports.Command, len(l.done)),
		undone: make([]ports.Command, len(l.undone)),
	}
	for i, cmd := range l.done {
		snap.done[i] = cmd.Clone()
	}
	for i, cmd := range l.undone {
		snap.undone[i] = cmd.Clone()
	}
	return snap
}

// Len returns the number of recorded commands.
func (l *CommandLog) Len() int {
	return len(l.done)
}

// Descriptions returns the audit trail as human-readable lines, in
// application order.
func (l *CommandLog) Descriptions() []string {
	out := make([]string, len(l.done))
	for i, cmd := range l.done {
		out[i] = cmd.Describe()
	}
	return out
}
