package commands

import (
	"context"
)

// NavigateStageCommandHandler handles stage navigation for an order.
type NavigateStageCommandHandler struct {
	uowFactory UoWFactory
}

// NewNavigateStageCommandHandler creates a handler for stage navigation.
func NewNavigateStageCommandHandler(uowFactory UoWFactory) NavigateStageCommandHandler {
	return NavigateStageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the navigation command.
func (h *NavigateStageCommandHandler) Handle(ctx context.Context, cmd NavigateStageCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderNo())
	if err != nil {
		return err
	}

	if err = o.Navigate(cmd.Stage()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
