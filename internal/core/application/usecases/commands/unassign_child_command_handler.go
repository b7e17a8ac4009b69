package commands

import (
	"context"

	"packtrack/internal/core/domain/services"
)

// UnassignChildCommandHandler handles pulling a child container back out of
// its parent. The reversal service restores the logged quantities (or falls
// back to the whole parent allocation for a single unlogged child) and
// purges the child's movement history.
type UnassignChildCommandHandler struct {
	uowFactory UoWFactory
}

// NewUnassignChildCommandHandler creates a handler for child unassignment.
func NewUnassignChildCommandHandler(uowFactory UoWFactory) UnassignChildCommandHandler {
	return UnassignChildCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unassignment command.
func (h *UnassignChildCommandHandler) Handle(ctx context.Context, cmd UnassignChildCommand) error {
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

	products, err := uow.ProductRepository().GetAllByOrder(ctx, cmd.OrderNo())
	if err != nil {
		return err
	}
	ledger, err := uow.MovementRepository().Get(ctx, cmd.OrderNo())
	if err != nil {
		return err
	}

	reversal := services.NewReversalService()
	if err = reversal.UnassignChild(cmd.ParentCode(), cmd.ChildCode(), products, ledger); err != nil {
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

	if err = recompute(ctx, uow, cmd.OrderNo()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
