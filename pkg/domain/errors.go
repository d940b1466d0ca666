package domain

import "errors"

// ErrUnknownActionKind is returned when dispatch meets a discriminant it has
// no handler for. This is a programming error, not a runtime condition:
// SelfCheck turns it into a startup failure before any journal exists.
var ErrUnknownActionKind = errors.New("unknown action kind")

// ErrInvalidAction is returned when an action's parameters are malformed
// (empty symbol, non-positive quantity or price).
var ErrInvalidAction = errors.New("invalid action")

// ErrInsufficientCash is returned when a mutation would drive the cash
// balance negative.
var ErrInsufficientCash = errors.New("insufficient cash")

// ErrInsufficientPosition is returned when a mutation would drive a position
// negative (short positions are rejected).
var ErrInsufficientPosition = errors.New("insufficient position")

// ErrTrailNotFound is returned when an archived trail cannot be found in a
// store.
var ErrTrailNotFound = errors.New("trail not found")
