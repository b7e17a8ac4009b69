package container

import (
	"errors"
	"slices"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/pkg/errs"
)

var (
	// ErrContainerIsNotConstructed is returned when a Container instance was
	// not created through a constructor.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")
)

// Container is an aggregate derived from the allocation ledger: it describes
// one physical packaging unit (pallet, crate, box or bag), the products it
// holds, its lifecycle status and its parent/child relations.
//
// The content fields (product codes, quantity, sub-packaging types) are
// recomputed from allocations after every mutating operation; the lifecycle
// fields (status, children, supervisor, vehicle, receipt) are sticky and
// survive recomputation.
type Container struct {
	code          string
	containerType kernel.ContainerType
	orderNo       string

	// derived content, rebuilt from allocations on every recompute
	productCodes      []string
	quantity          float64
	subPackagingTypes []string

	// sticky lifecycle state
	status      Status
	children    []string
	supervisor  string
	vehicleType string
	vehicleNo   string
	driverName  string
	receipt     *DeliveryReceipt

	isConstructed bool
}

// NewContainer creates a Container with validation. The container type is
// inferred from the code (prefix letter, or the letter after the station
// dash for station-scoped codes).
func NewContainer(code, orderNo string) (*Container, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("container code")
	}
	return &Container{
		code:          code,
		containerType: kernel.InferContainerType(code),
		orderNo:       orderNo,
		status:        Preparing,
		isConstructed: true,
	}, nil
}

// Validate ensures the Container was constructed through NewContainer.
func (c *Container) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrContainerIsNotConstructed
	}
	return nil
}

// Code returns the container code.
func (c *Container) Code() string { return c.code }

// Type returns the container type.
func (c *Container) Type() kernel.ContainerType { return c.containerType }

// SetType records an explicit container type, overriding the one inferred
// from the code. Bags share the "P" prefix with pallets, so a bag created
// without a station prefix can only be told apart by this record.
func (c *Container) SetType(t kernel.ContainerType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.containerType = t
	return nil
}

// OrderNo returns the order the container belongs to.
func (c *Container) OrderNo() string { return c.orderNo }

// ProductCodes returns a copy of the product codes held by the container,
// in first-assignment order.
func (c *Container) ProductCodes() []string {
	return slices.Clone(c.productCodes)
}

// Quantity returns the total quantity across all held allocations.
func (c *Container) Quantity() float64 { return c.quantity }

// SubPackagingTypes returns the distinct sub-packaging types recorded for
// the container's allocations.
func (c *Container) SubPackagingTypes() []string {
	return slices.Clone(c.subPackagingTypes)
}

// Status returns the container's lifecycle status.
func (c *Container) Status() Status { return c.status }

// Children returns a copy of the child container codes attached by transfer.
func (c *Container) Children() []string {
	return slices.Clone(c.children)
}

// Supervisor returns the recorded supervisor name.
func (c *Container) Supervisor() string { return c.supervisor }

// VehicleType returns the vehicle type recorded at loading.
func (c *Container) VehicleType() string { return c.vehicleType }

// VehicleNo returns the vehicle plate recorded at loading.
func (c *Container) VehicleNo() string { return c.vehicleNo }

// DriverName returns the driver name recorded at loading.
func (c *Container) DriverName() string { return c.driverName }

// Receipt returns the delivery receipt, or nil when not yet delivered.
func (c *Container) Receipt() *DeliveryReceipt { return c.receipt }

// IsEmpty reports whether the container holds no allocations.
func (c *Container) IsEmpty() bool {
	return len(c.productCodes) == 0 && c.quantity == 0
}

// IsTombstone reports whether the container is empty but kept alive because
// transfer history still references it.
func (c *Container) IsTombstone() bool {
	return c.IsEmpty() && len(c.children) > 0
}

// SetContent replaces the derived content fields. The recompute service
// calls this with the aggregate of the current allocations.
func (c *Container) SetContent(productCodes []string, quantity float64, subPackagingTypes []string) {
	c.productCodes = slices.Clone(productCodes)
	c.quantity = quantity
	c.subPackagingTypes = slices.Clone(subPackagingTypes)
}

// InheritFrom carries the recorded type and the sticky lifecycle state over
// from the previous derivation of the same container. When the content changed while the
// container was sealed, the status reverts to Preparing so the seal always
// reflects the content it was applied to.
func (c *Container) InheritFrom(prev *Container) {
	if prev == nil {
		return
	}
	c.containerType = prev.containerType
	c.status = prev.status
	c.children = slices.Clone(prev.children)
	c.supervisor = prev.supervisor
	c.vehicleType = prev.vehicleType
	c.vehicleNo = prev.vehicleNo
	c.driverName = prev.driverName
	c.receipt = prev.receipt

	if prev.status == Sealed && c.contentDiffers(prev) {
		c.status = Preparing
	}
}

func (c *Container) contentDiffers(prev *Container) bool {
	return c.quantity != prev.quantity || !slices.Equal(c.productCodes, prev.productCodes)
}

// SetSupervisor records the supervisor name.
func (c *Container) SetSupervisor(name string) {
	c.supervisor = name
}

// SetChildren replaces the attached child codes. The movement ledger owns
// the parent/child relation; the recompute service pushes it here so views
// read it off the container.
func (c *Container) SetChildren(codes []string) {
	c.children = slices.Clone(codes)
}

// HasChild reports whether the given code is attached as a child.
func (c *Container) HasChild(code string) bool {
	return slices.Contains(c.children, code)
}

// Seal closes the container. Only valid while Preparing.
func (c *Container) Seal() error {
	status, err := c.status.Seal()
	if err != nil {
		return err
	}
	c.status = status
	return nil
}

// Reopen reverts a sealed container to Preparing.
func (c *Container) Reopen() error {
	status, err := c.status.Reopen()
	if err != nil {
		return err
	}
	c.status = status
	return nil
}

// Load records the vehicle assignment and marks the container loaded.
//
// Parameters:
//   - vehicleType: kind of vehicle ("Truck", "Van", ...)
//   - vehicleNo: vehicle plate (required)
//   - driverName: driver name
func (c *Container) Load(vehicleType, vehicleNo, driverName string) error {
	if vehicleNo == "" {
		return errs.NewValueIsRequiredError("vehicle plate")
	}
	status, err := c.status.Load()
	if err != nil {
		return err
	}
	c.status = status
	c.vehicleType = vehicleType
	c.vehicleNo = vehicleNo
	c.driverName = driverName
	return nil
}

// Deliver records the delivery receipt and marks the container delivered.
func (c *Container) Deliver(receipt DeliveryReceipt) error {
	status, err := c.status.Deliver()
	if err != nil {
		return err
	}
	c.status = status
	c.receipt = &receipt
	return nil
}

// Clone returns a deep copy of the container. Used by the in-memory unit of
// work to snapshot state before a command runs.
func (c *Container) Clone() *Container {
	cp := *c
	cp.productCodes = slices.Clone(c.productCodes)
	cp.subPackagingTypes = slices.Clone(c.subPackagingTypes)
	cp.children = slices.Clone(c.children)
	if c.receipt != nil {
		r := *c.receipt
		cp.receipt = &r
	}
	return &cp
}
