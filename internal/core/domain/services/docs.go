// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the restaurant system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderPricer: A domain service that resolves a cart against the catalog
//     and produces priced order lines with snapshot prices
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
