/*
Package journal implements the undoable action log at the heart of blotter.

A Journal owns two ordered sequences of trade actions: done (the audit trail
currently reflected in the receiver) and undone (reversed actions eligible
for redo). The receiver is passed explicitly to every operation and is never
stored inside the journal or inside any action.

Invariants:

  - Undo always reverses the tail of done; redo always re-applies the tail of undone.
  - Executing a new action after an undo discards the entire redo history.
  - No action is ever recorded unless its mutation actually succeeded against
    the receiver, so replaying done onto a fresh receiver reproduces the live
    receiver's observable state exactly.
  - Snapshot produces a fully independent copy: later operations on either
    journal are never observable through the other.
*/
package journal
