package commands

import (
	"context"

	"packtrack/internal/core/domain/services"
)

// CancelContainerCommandHandler handles container cancellation. The reversal
// service redistributes the cancelled container's quantities; the container
// is then removed from the list before the recompute, so it does not come
// back as a tombstone.
type CancelContainerCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelContainerCommandHandler creates a handler for container cancellation.
func NewCancelContainerCommandHandler(uowFactory UoWFactory) CancelContainerCommandHandler {
	return CancelContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelContainerCommandHandler) Handle(ctx context.Context, cmd CancelContainerCommand) error {
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

	// the container must exist before anything is redistributed
	if _, err := uow.ContainerRepository().Get(ctx, cmd.ContainerCode()); err != nil {
		return err
	}

	products, err := uow.ProductRepository().GetAllByOrder(ctx, cmd.OrderNo())
	if err != nil {
		return err
	}
	ledger, err := uow.MovementRepository().Get(ctx, cmd.OrderNo())
	if err != nil {
		return err
	}

	reversal := services.NewReversalService()
	if err = reversal.CancelContainer(cmd.ContainerCode(), products, ledger); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	for _, p := range products {
		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}
	if err = uow.MovementRepository().Update(ctx, cmd.OrderNo(), ledger); err != nil {
		return err
	}
	if err = uow.ContainerRepository().Remove(ctx, cmd.OrderNo(), cmd.ContainerCode()); err != nil {
		return err
	}

	if err = recompute(ctx, uow, cmd.OrderNo()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
