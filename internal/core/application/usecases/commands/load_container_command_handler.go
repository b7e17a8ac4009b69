package commands

import (
	"context"
	"fmt"

	"packtrack/internal/core/domain/services"
	"packtrack/internal/pkg/errs"
)

// LoadContainerCommandHandler handles container loading. Test mode bypasses
// the shipment-packaging gate, mirroring the panel's escape hatch for dry
// runs.
type LoadContainerCommandHandler struct {
	uowFactory UoWFactory
	testMode   bool
}

// NewLoadContainerCommandHandler creates a handler for container loading.
func NewLoadContainerCommandHandler(uowFactory UoWFactory, testMode bool) LoadContainerCommandHandler {
	return LoadContainerCommandHandler{
		uowFactory: uowFactory,
		testMode:   testMode,
	}
}

// Handle processes the load command.
func (h *LoadContainerCommandHandler) Handle(ctx context.Context, cmd LoadContainerCommand) error {
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
	containers, err := uow.ContainerRepository().GetAllByOrder(ctx, cmd.OrderNo())
	if err != nil {
		return err
	}

	if !services.NewProgressService().CanLoad(products, containers, h.testMode) {
		return errs.NewValueIsInvalidErrorWithCause("loading is not allowed",
			fmt.Errorf("shipment packaging for order %s is not complete", cmd.OrderNo()))
	}

	containerRepo := uow.ContainerRepository()
	target, err := containerRepo.Get(ctx, cmd.ContainerCode())
	if err != nil {
		return err
	}

	if err = target.Load(cmd.VehicleType(), cmd.VehicleNo(), cmd.DriverName()); err != nil {
		return err
	}

	if err = containerRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
