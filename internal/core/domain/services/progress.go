package services

import (
	"packtrack/internal/core/domain/model/container"
	"packtrack/internal/core/domain/model/product"
)

// Progress is the derived completion label of an order, computed from the
// products and containers on every read. It is never stored.
type Progress int

const (
	// ProgressUnknown represents an invalid or undefined progress value.
	ProgressUnknown Progress = iota

	// Checklist: allocation is still in progress.
	Checklist

	// AllocationComplete: every product's remaining quantity is zero.
	AllocationComplete

	// ShipmentPackagingComplete: every product's shipment-depot quantity is
	// consumed with the transfer approved, and at least one container holds
	// a nonzero quantity.
	ShipmentPackagingComplete

	// LoadingComplete: every eligible container is loaded or delivered.
	LoadingComplete

	// FieldDeliveryComplete: every eligible container is delivered with a
	// confirmed receipt.
	FieldDeliveryComplete
)

// String returns the human-readable name of the progress label.
func (p Progress) String() string {
	switch p {
	case Checklist:
		return "Checklist"
	case AllocationComplete:
		return "AllocationComplete"
	case ShipmentPackagingComplete:
		return "ShipmentPackagingComplete"
	case LoadingComplete:
		return "LoadingComplete"
	case FieldDeliveryComplete:
		return "FieldDeliveryComplete"
	default:
		return "Unknown"
	}
}

// ProgressService derives order progress and evaluates the gates that
// stage actions check before running.
//
// The progress rules are ordered, first match wins:
//  1. all eligible containers delivered with confirmed receipts
//  2. all eligible containers loaded or delivered
//  3. all products shipment-consumed and at least one nonzero container
//  4. all products fully allocated
//  5. otherwise, checklist
//
// Eligible containers are the non-empty ones: tombstones kept for history
// never hold an order back.
type ProgressService struct{}

// NewProgressService creates a new ProgressService instance.
func NewProgressService() ProgressService {
	return ProgressService{}
}

// Derive computes the order's progress label.
func (s ProgressService) Derive(products []*product.Product, containers []*container.Container) Progress {
	switch {
	case s.DeliveryComplete(containers):
		return FieldDeliveryComplete
	case s.LoadingComplete(containers):
		return LoadingComplete
	case s.ShipmentPackagingComplete(products, containers):
		return ShipmentPackagingComplete
	case s.AllocationComplete(products):
		return AllocationComplete
	default:
		return Checklist
	}
}

// AllocationComplete reports whether every product's produced quantity is
// fully allocated. Orders without any produced quantity are never complete.
func (ProgressService) AllocationComplete(products []*product.Product) bool {
	anyProduced := false
	for _, p := range products {
		if p.Total().Value() <= 0 {
			continue
		}
		anyProduced = true
		if p.Remaining() > 0 {
			return false
		}
	}
	return anyProduced
}

// ShipmentPackagingComplete reports whether every product's shipment-depot
// quantity is consumed with the transfer approved, and at least one
// container holds a nonzero quantity.
func (ProgressService) ShipmentPackagingComplete(products []*product.Product, containers []*container.Container) bool {
	anyProduced := false
	for _, p := range products {
		if p.Total().Value() > 0 {
			anyProduced = true
		}
		if !p.ShipmentConsumed() {
			return false
		}
	}
	if !anyProduced {
		return false
	}
	for _, c := range containers {
		if c.Quantity() > 0 {
			return true
		}
	}
	return false
}

// LoadingComplete reports whether every eligible container is loaded or
// delivered.
func (ProgressService) LoadingComplete(containers []*container.Container) bool {
	any := false
	for _, c := range containers {
		if c.IsEmpty() {
			continue
		}
		any = true
		if c.Status() != container.Loaded && c.Status() != container.Delivered {
			return false
		}
	}
	return any
}

// DeliveryComplete reports whether every eligible container is delivered
// with a confirmed receipt.
func (ProgressService) DeliveryComplete(containers []*container.Container) bool {
	any := false
	for _, c := range containers {
		if c.IsEmpty() {
			continue
		}
		any = true
		if c.Status() != container.Delivered {
			return false
		}
		if c.Receipt() == nil || !c.Receipt().Confirmed() {
			return false
		}
	}
	return any
}

// CanSeal reports whether any container may be sealed: the gate is global,
// every product must be fully allocated.
func (s ProgressService) CanSeal(products []*product.Product) bool {
	return s.AllocationComplete(products)
}

// CanLoad reports whether containers may be loaded: shipment packaging must
// be complete, unless test mode relaxes the gate.
func (s ProgressService) CanLoad(products []*product.Product, containers []*container.Container, testMode bool) bool {
	return testMode || s.ShipmentPackagingComplete(products, containers)
}

// CanDeliver reports whether containers may be delivered: loading must be
// complete, unless test mode relaxes the gate.
func (s ProgressService) CanDeliver(containers []*container.Container, testMode bool) bool {
	return testMode || s.LoadingComplete(containers)
}
