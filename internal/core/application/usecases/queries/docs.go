// Package queries contains read-only operations that retrieve system state.
// Implements the Query pattern for read operations in the CQRS architecture.
//
// Query handlers read straight from the database with raw SQL and return
// dedicated response structs, never domain aggregates. They do not take part
// in transactions and must not modify state.
package queries
