package commands

import (
	"context"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/core/domain/services"
)

// TransferContainersCommandHandler handles container transfers. The transfer
// service conserves per-product totals and logs every moved quantity; the
// recompute then rebuilds the list with the sources retained as tombstones
// under the destination.
type TransferContainersCommandHandler struct {
	uowFactory UoWFactory
}

// NewTransferContainersCommandHandler creates a handler for container transfers.
func NewTransferContainersCommandHandler(uowFactory UoWFactory) TransferContainersCommandHandler {
	return TransferContainersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transfer command.
//
// A new destination container draws a fresh code from the sequence
// repository, same as a new assignment target, so numbers stay monotonic
// and are never reused.
func (h *TransferContainersCommandHandler) Handle(ctx context.Context, cmd TransferContainersCommand) error {
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

	destination := cmd.Destination()
	created := destination == ""
	if created {
		t := cmd.NewDestinationType()
		seq, err := uow.SequenceRepository().Next(ctx, t.Prefix())
		if err != nil {
			return err
		}
		destination = kernel.FormatContainerCode(t, seq)
	}

	transfer := services.NewTransferService()
	if err = transfer.Transfer(products, cmd.Sources(), destination, ledger); err != nil {
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

	if created {
		if err = recordContainerType(ctx, uow, destination, cmd.NewDestinationType()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
