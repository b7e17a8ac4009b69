package commands

import (
	"context"

	"packtrack/internal/core/domain/model/kernel"
)

// AssignProductCommandHandler handles the business logic for product
// allocation. Resolves or creates the target container code, applies the
// allocation on the product aggregate and recomputes the container list.
//
// Example:
//
//	handler := NewAssignProductCommandHandler(uowFactory)
//	cmd, _ := NewAssignProductCommand("ORD-1", "PRD-1", 6, "", kernel.Pallet, "", "John", "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignProductCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignProductCommandHandler creates a handler for product allocation.
// Requires a UoWFactory for transactional persistence.
func NewAssignProductCommandHandler(uowFactory UoWFactory) AssignProductCommandHandler {
	return AssignProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the allocation command.
//
// For a new container target a fresh code is drawn from the sequence
// repository: generic codes use the type prefix as key, station capsules use
// the station-scoped key, so numbers stay monotonic and are never reused.
// Domain validation failures (quantity below one, over-allocation) roll the
// transaction back untouched.
func (h *AssignProductCommandHandler) Handle(ctx context.Context, cmd AssignProductCommand) error {
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

	target := cmd.ContainerCode()
	created := target == ""
	if created {
		target, err = h.nextContainerCode(ctx, uow, cmd)
		if err != nil {
			return err
		}
	}

	if err = product.Assign(target, cmd.Quantity(), cmd.Packer(), cmd.SubPackagingType()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, product); err != nil {
		return err
	}

	if err = recompute(ctx, uow, cmd.OrderNo()); err != nil {
		return err
	}

	if created {
		if err = recordContainerType(ctx, uow, target, cmd.NewContainerType()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *AssignProductCommandHandler) nextContainerCode(
	ctx context.Context,
	uow UoW,
	cmd AssignProductCommand,
) (string, error) {
	t := cmd.NewContainerType()

	if cmd.StationCode() != "" && t.IsCapsule() {
		key := cmd.StationCode() + "-" + t.Prefix()
		seq, err := uow.SequenceRepository().Next(ctx, key)
		if err != nil {
			return "", err
		}
		return kernel.FormatStationCode(cmd.StationCode(), t, seq), nil
	}

	seq, err := uow.SequenceRepository().Next(ctx, t.Prefix())
	if err != nil {
		return "", err
	}
	return kernel.FormatContainerCode(t, seq), nil
}
