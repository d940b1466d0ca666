/*
Package domain contains the core domain models for the blotter journal.

It defines the closed set of trade actions, the dispatch functions that apply
and invert them, and the Portfolio receiver they mutate. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - TradeAction: Immutable data describing one reversible mutation request.
  - Apply / Invert: Forward and compensating dispatch over the closed action set.
  - Portfolio: The caller-owned receiver, exposing only primitive adjust/query operations.
  - JournalHooks: Callbacks for observing journal operations.
*/
package domain
