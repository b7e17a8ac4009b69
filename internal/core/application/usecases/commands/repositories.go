// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// mutation through the domain model, and a container recompute before commit.
package commands

import (
	"context"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/core/domain/services"
	"packtrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// ContainerRepoFactory provides access to the container repository within a transaction.
	ContainerRepoFactory interface {
		ContainerRepository() ports.ContainerRepository
	}

	// MovementRepoFactory provides access to the movement repository within a transaction.
	MovementRepoFactory interface {
		MovementRepository() ports.MovementRepository
	}

	// SequenceRepoFactory provides access to the sequence repository within a transaction.
	SequenceRepoFactory interface {
		SequenceRepository() ports.SequenceRepository
	}

	// UoW manages transactions across all aggregates of the packing session.
	// Every mutating command runs against a UoW so a failed operation leaves
	// no partial state behind.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   productRepo := uow.ProductRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		ContainerRepoFactory
		MovementRepoFactory
		SequenceRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// recompute rebuilds the order's container list from the current allocations
// and stores it, together with the ledger, inside the running transaction.
// Every mutating handler calls this before committing so reads never observe
// a container list that disagrees with the allocations.
func recompute(ctx context.Context, uow UoW, orderNo string) error {
	products, err := uow.ProductRepository().GetAllByOrder(ctx, orderNo)
	if err != nil {
		return err
	}
	previous, err := uow.ContainerRepository().GetAllByOrder(ctx, orderNo)
	if err != nil {
		return err
	}
	ledger, err := uow.MovementRepository().Get(ctx, orderNo)
	if err != nil {
		return err
	}

	containers, err := services.NewContainerAggregator().Recompute(orderNo, products, previous, ledger)
	if err != nil {
		return err
	}

	if err := uow.ContainerRepository().ReplaceAll(ctx, orderNo, containers); err != nil {
		return err
	}
	return uow.MovementRepository().Update(ctx, orderNo, ledger)
}

// recordContainerType stamps the requested type on a freshly derived
// container. The code alone cannot express every type (bags share the pallet
// prefix), so the explicit choice is persisted and carried forward by
// InheritFrom on later recomputes.
func recordContainerType(ctx context.Context, uow UoW, code string, t kernel.ContainerType) error {
	containerRepo := uow.ContainerRepository()
	c, err := containerRepo.Get(ctx, code)
	if err != nil {
		return err
	}
	if err = c.SetType(t); err != nil {
		return err
	}
	return containerRepo.Update(ctx, c)
}
