package commands

import (
	"context"
	"fmt"

	"packtrack/internal/core/domain/services"
	"packtrack/internal/pkg/errs"
)

// SealContainerCommandHandler handles container sealing. The gate is
// global: while any product of the order still has unallocated quantity, no
// container may be sealed.
type SealContainerCommandHandler struct {
	uowFactory UoWFactory
}

// NewSealContainerCommandHandler creates a handler for container sealing.
func NewSealContainerCommandHandler(uowFactory UoWFactory) SealContainerCommandHandler {
	return SealContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the seal command.
func (h *SealContainerCommandHandler) Handle(ctx context.Context, cmd SealContainerCommand) error {
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

	if !services.NewProgressService().CanSeal(products) {
		return errs.NewValueIsInvalidErrorWithCause("seal is not allowed",
			fmt.Errorf("order %s still has unallocated quantity", cmd.OrderNo()))
	}

	containerRepo := uow.ContainerRepository()
	target, err := containerRepo.Get(ctx, cmd.ContainerCode())
	if err != nil {
		return err
	}

	if err = target.Seal(); err != nil {
		return err
	}
	if cmd.Supervisor() != "" {
		target.SetSupervisor(cmd.Supervisor())
	}

	if err = containerRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
