package product

import (
	"errors"
	"fmt"
	"math"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// quantityEpsilon absorbs float drift from parsed multiplicative
// expressions when comparing quantities.
const quantityEpsilon = 1e-9

// Product is the aggregate root of the allocation ledger: the authoritative
// record of how much of a product's produced quantity is assigned to which
// container. Every derived view (container list, print projections,
// completion flags) is recomputed from the allocations held here.
//
// Product maintains these invariants:
//   - remaining quantity is always total minus the sum of allocation
//     quantities, and never negative
//   - at most one allocation per container; assignments merge
//   - stored allocations always carry a positive quantity
//
// The shipment-depot quantity tracks how much of the product is still
// waiting in the shipment depot: assignments consume it, and when it reaches
// zero the shipment transfer is considered complete for the product.
type Product struct {
	// code is the unique product identifier within the session
	code string

	// stockCode is the external stock code used for display; falls back to code
	stockCode string

	name    string
	unit    string
	station string

	// total is the produced quantity, possibly entered as an expression
	total kernel.Quantity

	// depot is the shipment-depot quantity still to be consumed by assignments
	depot kernel.Quantity

	// transferApproved marks the shipment transfer as confirmed
	transferApproved bool

	allocations []Allocation

	isConstructed bool
}

// NewProduct creates a Product with validation. The shipment-depot quantity
// starts equal to the produced quantity so the shipment stage always begins
// with the full amount to move forward.
//
// Parameters:
//   - code: unique product code (required)
//   - stockCode: external stock code for display (optional, falls back to code)
//   - name: display name (required)
//   - total: produced quantity
//   - unit: unit of measure ("Pcs", "M", "LT", ...)
//   - station: originating production station name
func NewProduct(code, stockCode, name string, total kernel.Quantity, unit, station string) (*Product, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("product code")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("product name")
	}
	if total.Value() < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("total quantity is invalid",
			fmt.Errorf("%v is not a valid produced quantity", total.Value()))
	}

	return &Product{
		code:          code,
		stockCode:     stockCode,
		name:          name,
		unit:          unit,
		station:       station,
		total:         total,
		depot:         total,
		allocations:   nil,
		isConstructed: true,
	}, nil
}

// Validate ensures the Product was constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// Code returns the unique product code.
func (p *Product) Code() string { return p.code }

// StockCode returns the external stock code, or empty when none was recorded.
func (p *Product) StockCode() string { return p.stockCode }

// DisplayCode returns the stock code when present, otherwise the product code.
func (p *Product) DisplayCode() string {
	if p.stockCode != "" {
		return p.stockCode
	}
	return p.code
}

// Name returns the product display name.
func (p *Product) Name() string { return p.name }

// Unit returns the unit of measure.
func (p *Product) Unit() string { return p.unit }

// Station returns the originating station name.
func (p *Product) Station() string { return p.station }

// Total returns the produced quantity.
func (p *Product) Total() kernel.Quantity { return p.total }

// DepotQuantity returns the shipment-depot quantity still to be consumed.
func (p *Product) DepotQuantity() kernel.Quantity { return p.depot }

// TransferApproved reports whether the shipment transfer was confirmed.
func (p *Product) TransferApproved() bool { return p.transferApproved }

// Allocations returns a copy of the current allocations in insertion order.
func (p *Product) Allocations() []Allocation {
	out := make([]Allocation, len(p.allocations))
	copy(out, p.allocations)
	return out
}

// AllocationTo returns the allocation to the given container, when present.
func (p *Product) AllocationTo(containerCode string) (Allocation, bool) {
	for _, a := range p.allocations {
		if a.containerCode == containerCode {
			return a, true
		}
	}
	return Allocation{}, false
}

// AllocatedTotal returns the sum of all allocation quantities.
func (p *Product) AllocatedTotal() float64 {
	var sum float64
	for _, a := range p.allocations {
		sum += a.quantity
	}
	return sum
}

// Remaining returns the unallocated quantity: total minus the sum of
// allocations, floored at zero against float drift.
func (p *Product) Remaining() float64 {
	r := p.total.Value() - p.AllocatedTotal()
	if r < quantityEpsilon {
		return 0
	}
	return r
}

// FullyAllocated reports whether the whole produced quantity has been
// distributed into containers.
func (p *Product) FullyAllocated() bool {
	return p.total.Value() > 0 && p.Remaining() == 0
}

// CanApproveTransfer reports whether the shipment transfer may be confirmed:
// the depot must hold at least the produced quantity and the transfer must
// not already be approved.
func (p *Product) CanApproveTransfer() bool {
	return p.total.Value() > 0 &&
		p.depot.Value() >= p.total.Value()-quantityEpsilon &&
		!p.transferApproved
}

// PackagingReady reports whether shipment packaging may start for the
// product: the transfer is approved and the depot still covers the produced
// quantity.
func (p *Product) PackagingReady() bool {
	return p.transferApproved &&
		p.total.Value() > 0 &&
		p.depot.Value() >= p.total.Value()-quantityEpsilon
}

// ShipmentConsumed reports whether the product's shipment-depot quantity has
// been fully consumed with the transfer approved. Products with no produced
// quantity count as consumed.
func (p *Product) ShipmentConsumed() bool {
	if p.total.Value() <= 0 {
		return true
	}
	return p.transferApproved && p.depot.IsZero()
}

// ApproveShipmentTransfer confirms the shipment transfer for the product.
//
// Returns a validation error when the transfer is already approved or the
// depot quantity does not cover the produced quantity.
func (p *Product) ApproveShipmentTransfer() error {
	if p.transferApproved {
		return errs.NewValueIsInvalidErrorWithCause("transfer approval is invalid",
			fmt.Errorf("transfer for product %s is already approved", p.code))
	}
	if !p.CanApproveTransfer() {
		return errs.NewValueIsInvalidErrorWithCause("transfer approval is invalid",
			fmt.Errorf("shipment depot quantity %s does not cover produced quantity %s",
				p.depot.Text(), p.total.Text()))
	}
	p.transferApproved = true
	return nil
}

// Assign allocates quantity to the given container.
//
// Validation rules:
//   - the target container code is required
//   - quantity must be at least 1
//   - quantity must not exceed the remaining unallocated quantity
//
// On success an existing allocation to the container is increased (packer
// and sub-packaging type override the stored values only when provided),
// otherwise a new allocation is appended. The shipment-depot quantity is
// consumed by the assigned amount, and when it reaches zero the transfer is
// marked approved.
func (p *Product) Assign(containerCode string, quantity float64, packer, subPackagingType string) error {
	if containerCode == "" {
		return errs.NewValueIsRequiredError("target container")
	}
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("assign quantity", quantity, 1, p.Remaining())
	}
	if quantity > p.Remaining()+quantityEpsilon {
		return errs.NewValueIsOutOfRangeError("assign quantity", quantity, 1, p.Remaining())
	}

	p.credit(containerCode, quantity, packer, subPackagingType)

	p.depot = p.depot.Sub(quantity)
	if p.depot.IsZero() {
		p.transferApproved = true
	}
	return nil
}

// SetAllocationQuantity sets the allocation to the given container to
// newQuantity, clamped to [0, total - sum(other allocations)]. A clamped
// result of zero removes the allocation. Returns the applied quantity.
func (p *Product) SetAllocationQuantity(containerCode string, newQuantity float64) float64 {
	var prev Allocation
	others := make([]Allocation, 0, len(p.allocations))
	for _, a := range p.allocations {
		if a.containerCode == containerCode {
			prev = a
			continue
		}
		others = append(others, a)
	}

	var othersSum float64
	for _, a := range others {
		othersSum += a.quantity
	}
	maxAllowed := p.total.Value() - othersSum

	applied := math.Min(math.Max(newQuantity, 0), maxAllowed)
	if applied < quantityEpsilon {
		p.allocations = others
		return 0
	}

	prev.containerCode = containerCode
	prev.quantity = applied
	p.allocations = append(others, prev)
	return applied
}

// RemoveAllocation deletes the allocation to the given container outright.
func (p *Product) RemoveAllocation(containerCode string) {
	next := p.allocations[:0]
	for _, a := range p.allocations {
		if a.containerCode != containerCode {
			next = append(next, a)
		}
	}
	p.allocations = next
}

// Credit merges quantity into the allocation for the given container without
// checking the remaining pool. It is used by transfers and reversals, where
// the per-product aggregate is conserved by construction. Non-positive
// amounts are ignored.
func (p *Product) Credit(containerCode string, quantity float64, packer string) {
	if quantity <= 0 {
		return
	}
	p.credit(containerCode, quantity, packer, "")
}

// Debit reduces the allocation to the given container by amount, removing it
// when it reaches zero. Returns the amount actually removed.
func (p *Product) Debit(containerCode string, amount float64) float64 {
	for i, a := range p.allocations {
		if a.containerCode != containerCode {
			continue
		}
		removed := math.Min(amount, a.quantity)
		rest := a.quantity - removed
		if rest < quantityEpsilon {
			p.allocations = append(p.allocations[:i], p.allocations[i+1:]...)
			return a.quantity
		}
		p.allocations[i].quantity = rest
		return removed
	}
	return 0
}

// DropAllocation removes the allocation to the given container entirely and
// returns the quantity it held.
func (p *Product) DropAllocation(containerCode string) (float64, bool) {
	for i, a := range p.allocations {
		if a.containerCode == containerCode {
			p.allocations = append(p.allocations[:i], p.allocations[i+1:]...)
			return a.quantity, true
		}
	}
	return 0, false
}

// ReturnToPool gives quantity back to the product's free (remaining) pool by
// restoring the shipment-depot quantity it had consumed. Used when a
// cancelled container had no children to receive the quantity.
func (p *Product) ReturnToPool(quantity float64) {
	if quantity <= 0 {
		return
	}
	p.depot = kernel.NewQuantity(p.depot.Value() + quantity)
}

// LastPacker returns the most recently recorded packer across allocations.
func (p *Product) LastPacker() string {
	for i := len(p.allocations) - 1; i >= 0; i-- {
		if p.allocations[i].packer != "" {
			return p.allocations[i].packer
		}
	}
	return ""
}

// LastSubPackagingType returns the most recently recorded sub-packaging type.
func (p *Product) LastSubPackagingType() string {
	for i := len(p.allocations) - 1; i >= 0; i-- {
		if p.allocations[i].subPackagingType != "" {
			return p.allocations[i].subPackagingType
		}
	}
	return ""
}

// Clone returns a deep copy of the product. Used by the in-memory unit of
// work to snapshot state before a command runs.
func (p *Product) Clone() *Product {
	cp := *p
	cp.allocations = make([]Allocation, len(p.allocations))
	copy(cp.allocations, p.allocations)
	return &cp
}

func (p *Product) credit(containerCode string, quantity float64, packer, subPackagingType string) {
	for i, a := range p.allocations {
		if a.containerCode != containerCode {
			continue
		}
		p.allocations[i].quantity += quantity
		if packer != "" {
			p.allocations[i].packer = packer
		}
		if subPackagingType != "" {
			p.allocations[i].subPackagingType = subPackagingType
		}
		return
	}
	p.allocations = append(p.allocations, Allocation{
		containerCode:    containerCode,
		quantity:         quantity,
		packer:           packer,
		subPackagingType: subPackagingType,
	})
}
