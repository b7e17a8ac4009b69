package commands

import (
	"context"
)

// EditAllocationCommandHandler handles allocation quantity edits. The domain
// clamps the requested quantity; a clamped result of zero removes the
// allocation, and the container list is recomputed either way.
type EditAllocationCommandHandler struct {
	uowFactory UoWFactory
}

// NewEditAllocationCommandHandler creates a handler for allocation edits.
func NewEditAllocationCommandHandler(uowFactory UoWFactory) EditAllocationCommandHandler {
	return EditAllocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command.
func (h *EditAllocationCommandHandler) Handle(ctx context.Context, cmd EditAllocationCommand) error {
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

	product.SetAllocationQuantity(cmd.ContainerCode(), cmd.NewQuantity())

	if err = productRepo.Update(ctx, product); err != nil {
		return err
	}

	if err = recompute(ctx, uow, cmd.OrderNo()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
