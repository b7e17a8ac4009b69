package commands

import (
	"context"
)

// ApproveTransferCommandHandler handles shipment transfer approval for a
// single product. No recompute is needed: approval does not touch
// allocations.
type ApproveTransferCommandHandler struct {
	uowFactory UoWFactory
}

// NewApproveTransferCommandHandler creates a handler for transfer approval.
func NewApproveTransferCommandHandler(uowFactory UoWFactory) ApproveTransferCommandHandler {
	return ApproveTransferCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
func (h *ApproveTransferCommandHandler) Handle(ctx context.Context, cmd ApproveTransferCommand) error {
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

	if err = product.ApproveShipmentTransfer(); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
