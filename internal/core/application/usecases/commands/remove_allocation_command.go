package commands

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var ErrRemoveAllocationCommandIsNotConstructed = errors.New(
	"RemoveAllocationCommand must be created via NewRemoveAllocationCommand constructor",
)

// RemoveAllocationCommand represents a request to delete a product's
// allocation to a container outright, returning the quantity to the
// product's remaining pool.
type RemoveAllocationCommand struct { //nolint:recvcheck //using for validation
	orderNo       string
	productCode   string
	containerCode string

	guard guard.ConstructorGuard
}

// NewRemoveAllocationCommand creates a command to delete an allocation.
func NewRemoveAllocationCommand(orderNo, productCode, containerCode string) (RemoveAllocationCommand, error) {
	cmd := RemoveAllocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNo(orderNo),
		cmd.setProductCode(productCode),
		cmd.setContainerCode(containerCode),
	); err != nil {
		return RemoveAllocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAllocationCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAllocationCommandIsNotConstructed)
}

// OrderNo returns the order number.
func (c RemoveAllocationCommand) OrderNo() string { return c.orderNo }

// ProductCode returns the product whose allocation is removed.
func (c RemoveAllocationCommand) ProductCode() string { return c.productCode }

// ContainerCode returns the container the allocation targets.
func (c RemoveAllocationCommand) ContainerCode() string { return c.containerCode }

func (c *RemoveAllocationCommand) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *RemoveAllocationCommand) setProductCode(code string) error {
	if code == "" {
		return ErrProductCodeIsRequired
	}
	c.productCode = code
	return nil
}

func (c *RemoveAllocationCommand) setContainerCode(code string) error {
	if code == "" {
		return ErrContainerCodeIsRequired
	}
	c.containerCode = code
	return nil
}
