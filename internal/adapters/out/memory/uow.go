package memory

import (
	"context"
	"errors"

	"packtrack/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when Begin was
// never called or the transaction already finished.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances bound to a store.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for in-memory unit of work instances.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance carries its own working copy of the session
// state once Begin is called.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork implements the Unit of Work pattern over the in-memory store.
// Begin takes the store lock and deep-copies the committed state; repository
// operations mutate only the copy. Commit swaps the copy in as the new
// committed state, Rollback discards it. Holding the lock from Begin to
// Commit serializes concurrent commands, which is the intended consistency
// model for a single-session store.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.ProductRepository().Update(ctx, product); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
type UnitOfWork struct {
	store   *Store
	working *state
}

// Begin starts a new transaction by copying the committed state.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.working != nil {
		return nil
	}

	uow.store.mu.Lock()
	uow.working = uow.store.committed.clone()
	return nil
}

// Commit publishes the working copy as the new committed state.
// After commit, the transaction is closed and cannot be reused.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.working == nil {
		return ErrNoActiveTransaction
	}

	uow.store.committed = uow.working
	uow.working = nil
	uow.store.mu.Unlock()
	return nil
}

// Rollback discards the working copy. The committed state is untouched.
// Calling Rollback after Commit is a no-op, so handlers can defer it
// unconditionally.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.working == nil {
		return ErrNoActiveTransaction
	}

	uow.working = nil
	uow.store.mu.Unlock()
	return nil
}

// OrderRepository returns an OrderRepository bound to the working copy.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{uow: uow}
}

// ProductRepository returns a ProductRepository bound to the working copy.
func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return &productRepository{uow: uow}
}

// ContainerRepository returns a ContainerRepository bound to the working copy.
func (uow *UnitOfWork) ContainerRepository() ports.ContainerRepository {
	return &containerRepository{uow: uow}
}

// MovementRepository returns a MovementRepository bound to the working copy.
func (uow *UnitOfWork) MovementRepository() ports.MovementRepository {
	return &movementRepository{uow: uow}
}

// SequenceRepository returns a SequenceRepository bound to the working copy.
func (uow *UnitOfWork) SequenceRepository() ports.SequenceRepository {
	return &sequenceRepository{uow: uow}
}

// state returns the state repositories should operate on. Repositories
// outside a transaction read the committed state directly, matching how the
// query side behaves.
func (uow *UnitOfWork) state() *state {
	if uow.working != nil {
		return uow.working
	}
	return uow.store.committed
}
