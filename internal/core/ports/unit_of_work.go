package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository instance bound to the current transaction.
	OrderRepository() OrderRepository

	// ProductRepository returns a ProductRepository instance bound to the current transaction.
	ProductRepository() ProductRepository

	// ContainerRepository returns a ContainerRepository instance bound to the current transaction.
	ContainerRepository() ContainerRepository

	// MovementRepository returns a MovementRepository instance bound to the current transaction.
	MovementRepository() MovementRepository

	// SequenceRepository returns a SequenceRepository instance bound to the current transaction.
	SequenceRepository() SequenceRepository
}
