package commands

import (
	"context"
	"fmt"

	"packtrack/internal/core/domain/model/container"
	"packtrack/internal/core/domain/services"
	"packtrack/internal/pkg/errs"
)

// DeliverContainerCommandHandler handles on-site delivery. The gate requires
// loading to be complete unless test mode relaxes it; the receipt is built
// from the command and recorded on the container.
type DeliverContainerCommandHandler struct {
	uowFactory UoWFactory
	testMode   bool
}

// NewDeliverContainerCommandHandler creates a handler for container delivery.
func NewDeliverContainerCommandHandler(uowFactory UoWFactory, testMode bool) DeliverContainerCommandHandler {
	return DeliverContainerCommandHandler{
		uowFactory: uowFactory,
		testMode:   testMode,
	}
}

// Handle processes the delivery command.
func (h *DeliverContainerCommandHandler) Handle(ctx context.Context, cmd DeliverContainerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	receipt, err := container.NewDeliveryReceipt(cmd.Receiver(), cmd.Date(), cmd.Place(), cmd.Note())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	containers, err := uow.ContainerRepository().GetAllByOrder(ctx, cmd.OrderNo())
	if err != nil {
		return err
	}

	if !services.NewProgressService().CanDeliver(containers, h.testMode) {
		return errs.NewValueIsInvalidErrorWithCause("delivery is not allowed",
			fmt.Errorf("loading for order %s is not complete", cmd.OrderNo()))
	}

	containerRepo := uow.ContainerRepository()
	target, err := containerRepo.Get(ctx, cmd.ContainerCode())
	if err != nil {
		return err
	}

	if err = target.Deliver(receipt); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
