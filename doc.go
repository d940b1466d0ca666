/*
Package blotter is an undoable trade journal: an action log that records
reversible mutations against a caller-owned portfolio, supports undo and
redo, and can be snapshotted into an independent, frozen audit trail.

# Concept

Actions are pure data. They never hold a reference to the portfolio they
mutate; the portfolio is passed explicitly to every execute, undo, and redo
call. This keeps actions relocatable and trivially serializable, and it makes
snapshotting the journal a plain value copy with no aliasing hazards. The
core logic is decoupled from adapters (archive storage, HTTP, MCP, CLI)
following Hexagonal Architecture.

# Key Features

  - LIFO undo/redo with strict branch invalidation: a new action after an
    undo discards the redo history.
  - Snapshots are total, eager copies; activity on the live journal is never
    observable through a snapshot, and vice versa.
  - The journal only records mutations that actually succeeded against the
    portfolio, so replaying the trail onto a fresh portfolio reproduces the
    live state exactly.
  - A startup self-check verifies every action kind is handled by both the
    forward and compensating dispatch.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/blotterhq/blotter"
		"github.com/blotterhq/blotter/pkg/domain"
	)

	func main() {
		desk, err := blotter.New()
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		portfolio := domain.NewPortfolio(1_000_000)

		if err := desk.Execute(ctx, domain.Buy("AAPL", 100, 185.50), portfolio); err != nil {
			log.Fatal(err)
		}

		desk.Undo(ctx, portfolio)
		desk.Redo(ctx, portfolio)

		frozen := desk.Snapshot(ctx)
		_ = frozen // independent of all later desk activity
	}
*/
package blotter
