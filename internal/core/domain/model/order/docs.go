// Package order provides domain entities and business logic for restaurant
// order management within the core domain model.
//
// The package implements the Order aggregate root, which owns its lines and
// controls the fulfillment lifecycle. Money amounts are represented with
// decimal arithmetic; each line carries the unit price snapshotted from the
// catalog at creation time, and the order total is always derived from its
// lines, never set directly.
//
// Status models the fulfillment state machine: pending -> confirmed ->
// preparing -> ready -> delivered, with cancellation allowed from any
// non-terminal state. Transitions are forward-only and single-step.
package order
