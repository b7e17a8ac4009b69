package commands

import (
	"context"
)

// RemoveAllocationCommandHandler handles allocation removal. The emptied
// container is retained as a tombstone by the recompute, never deleted here.
type RemoveAllocationCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveAllocationCommandHandler creates a handler for allocation removal.
func NewRemoveAllocationCommandHandler(uowFactory UoWFactory) RemoveAllocationCommandHandler {
	return RemoveAllocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveAllocationCommandHandler) Handle(ctx context.Context, cmd RemoveAllocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	product, err := productRepo.Get(ctx, cmd.ProductCode())
	if err != nil {
		return err
	}

	product.RemoveAllocation(cmd.ContainerCode())

	if err = productRepo.Update(ctx, product); err != nil {
		return err
	}

	if err = recompute(ctx, uow, cmd.OrderNo()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
