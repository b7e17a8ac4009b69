package services

import (
	"math"

	"packtrack/internal/core/domain/model/movement"
	"packtrack/internal/core/domain/model/product"
	"packtrack/internal/pkg/errs"
)

// ReversalService is a domain service that undoes container transfers:
// pulling one child back out of its parent, or cancelling a container
// entirely and redistributing what it held.
//
// Business rules:
//   - Reversals restore quantities to the containers they were logged from;
//     the even split is a fallback for pre-log history only
//   - The per-product allocated total is conserved except for quantities
//     explicitly returned to the product's free pool
//   - Cancelling a container is the only operation that removes one
type ReversalService struct{}

// NewReversalService creates a new ReversalService instance.
func NewReversalService() ReversalService {
	return ReversalService{}
}

// UnassignChild returns the child container's logged quantities from the
// parent back to the child and detaches it.
//
// Per product, the amount moved back is the logged contribution of the
// child. When nothing was logged for a product (pre-log history), the
// parent's whole allocation of it moves back instead. The child's log
// entries are purged afterwards.
func (ReversalService) UnassignChild(
	parent, child string,
	products []*product.Product,
	ledger *movement.Ledger,
) error {
	if parent == "" || child == "" {
		return errs.NewValueIsRequiredError("parent and child containers")
	}

	for _, p := range products {
		movedBack := 0.0
		for _, e := range ledger.EntriesFor(parent, p.Code()) {
			if e.Child != child {
				continue
			}
			returned := p.Debit(parent, e.Quantity)
			p.Credit(child, returned, "")
			movedBack += returned
		}

		if movedBack == 0 {
			if qty, ok := p.DropAllocation(parent); ok {
				p.Credit(child, qty, "")
			}
		}
	}

	ledger.PurgeChild(child)
	return nil
}

// CancelContainer removes the container's allocations, redistributing each
// product's quantity:
//   - with log entries, exactly back to the originating children; any
//     quantity beyond the logged total returns to the product's free pool
//   - with children but no log, split evenly: everyone gets floor(q/n), and
//     the remainder goes one unit at a time to the children in order
//   - with no children, back to the product's free pool
//
// The container's log, relations and archived total are discarded; the
// caller removes the container from the list.
func (ReversalService) CancelContainer(
	code string,
	products []*product.Product,
	ledger *movement.Ledger,
) error {
	if code == "" {
		return errs.NewValueIsRequiredError("container code")
	}

	children := ledger.ChildrenOf(code)

	for _, p := range products {
		qty, ok := p.DropAllocation(code)
		if !ok || qty <= 0 {
			continue
		}

		if entries := ledger.EntriesFor(code, p.Code()); len(entries) > 0 {
			rest := qty
			for _, e := range entries {
				back := math.Min(e.Quantity, rest)
				p.Credit(e.Child, back, "")
				rest -= back
			}
			if rest > 0 {
				p.ReturnToPool(rest)
			}
			continue
		}

		if len(children) > 0 {
			n := float64(len(children))
			base := math.Floor(qty / n)
			rest := qty - base*n
			for _, child := range children {
				share := base
				if rest > 0 {
					unit := math.Min(1, rest)
					share += unit
					rest -= unit
				}
				p.Credit(child, share, "")
			}
			continue
		}

		p.ReturnToPool(qty)
	}

	ledger.DropParent(code)
	ledger.PurgeChild(code)
	ledger.DropArchive(code)
	return nil
}
