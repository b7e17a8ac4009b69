// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the packaging system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ContainerAggregator: derives the container list from product allocations
//   - TransferService: moves allocations between containers with logging
//   - ReversalService: undoes transfers and cancels containers
//   - ProgressService: derives order progress and evaluates stage gates
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
