package services

import (
	"errors"
	"fmt"

	"packtrack/internal/core/domain/model/movement"
	"packtrack/internal/core/domain/model/product"
	"packtrack/internal/pkg/errs"
)

// ErrNothingToTransfer is returned when none of the source containers holds
// an allocation for any product, so a transfer would be a no-op.
var ErrNothingToTransfer = errors.New("nothing to transfer")

// TransferService is a domain service that moves allocations between
// containers: every allocation on the source containers is removed and
// merged into one allocation on the destination, per product.
//
// Business rules:
//   - The per-product allocated total is conserved exactly
//   - Each moved (product, source, quantity) is logged under the destination
//     so reversals can restore quantities to where they came from
//   - Source containers become children of the destination
//   - A container cannot be transferred into itself
type TransferService struct{}

// NewTransferService creates a new TransferService instance.
func NewTransferService() TransferService {
	return TransferService{}
}

// Transfer moves all allocations on the source containers into the
// destination container.
//
// Parameters:
//   - products: all products of the order
//   - sources: source container codes
//   - destination: destination container code
//   - ledger: movement log, updated with the moved entries and relations
//
// Returns ErrNothingToTransfer when the sources hold no allocations, and a
// validation error for a missing destination or a self-transfer.
func (TransferService) Transfer(
	products []*product.Product,
	sources []string,
	destination string,
	ledger *movement.Ledger,
) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination container")
	}
	if len(sources) == 0 {
		return errs.NewValueIsRequiredError("source containers")
	}
	for _, src := range sources {
		if src == destination {
			return errs.NewValueIsInvalidErrorWithCause("transfer is invalid",
				fmt.Errorf("container %s cannot be transferred into itself", src))
		}
	}

	moved := false
	for _, p := range products {
		for _, src := range sources {
			qty, ok := p.DropAllocation(src)
			if !ok || qty <= 0 {
				continue
			}
			p.Credit(destination, qty, "")
			ledger.Record(destination, p.Code(), src, qty)
			moved = true
		}
	}
	if !moved {
		return ErrNothingToTransfer
	}

	for _, src := range sources {
		ledger.AttachChild(destination, src)
	}
	return nil
}
