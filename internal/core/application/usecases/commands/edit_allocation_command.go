package commands

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var (
	ErrEditAllocationCommandIsNotConstructed = errors.New(
		"EditAllocationCommand must be created via NewEditAllocationCommand constructor",
	)
	ErrContainerCodeIsRequired = errors.New("container code is required")
)

// EditAllocationCommand represents a request to change the quantity of an
// existing allocation. The new quantity is clamped by the domain to what the
// product's total and its other allocations allow; zero removes the
// allocation.
type EditAllocationCommand struct { //nolint:recvcheck //using for validation
	orderNo       string
	productCode   string
	containerCode string
	newQuantity   float64

	guard guard.ConstructorGuard
}

// NewEditAllocationCommand creates a command to change an allocation's
// quantity. Negative quantities are accepted and clamp to zero.
func NewEditAllocationCommand(orderNo, productCode, containerCode string, newQuantity float64) (EditAllocationCommand, error) {
	cmd := EditAllocationCommand{
		newQuantity: newQuantity,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNo(orderNo),
		cmd.setProductCode(productCode),
		cmd.setContainerCode(containerCode),
	); err != nil {
		return EditAllocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditAllocationCommand) Validate() error {
	return c.guard.Validate(ErrEditAllocationCommandIsNotConstructed)
}

// OrderNo returns the order number.
func (c EditAllocationCommand) OrderNo() string { return c.orderNo }

// ProductCode returns the product whose allocation changes.
func (c EditAllocationCommand) ProductCode() string { return c.productCode }

// ContainerCode returns the container the allocation targets.
func (c EditAllocationCommand) ContainerCode() string { return c.containerCode }

// NewQuantity returns the requested quantity before clamping.
func (c EditAllocationCommand) NewQuantity() float64 { return c.newQuantity }

func (c *EditAllocationCommand) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *EditAllocationCommand) setProductCode(code string) error {
	if code == "" {
		return ErrProductCodeIsRequired
	}
	c.productCode = code
	return nil
}

func (c *EditAllocationCommand) setContainerCode(code string) error {
	if code == "" {
		return ErrContainerCodeIsRequired
	}
	c.containerCode = code
	return nil
}
