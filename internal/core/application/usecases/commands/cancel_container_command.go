package commands

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var ErrCancelContainerCommandIsNotConstructed = errors.New(
	"CancelContainerCommand must be created via NewCancelContainerCommand constructor",
)

// CancelContainerCommand represents a request to cancel a container: its
// allocations are redistributed back to the containers they came from (or
// the product pool) and the container is removed from the list. This is the
// only operation that deletes a container.
type CancelContainerCommand struct { //nolint:recvcheck //using for validation
	orderNo       string
	containerCode string

	guard guard.ConstructorGuard
}

// NewCancelContainerCommand creates a command to cancel a container.
func NewCancelContainerCommand(orderNo, containerCode string) (CancelContainerCommand, error) {
	cmd := CancelContainerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNo(orderNo),
		cmd.setContainerCode(containerCode),
	); err != nil {
		return CancelContainerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelContainerCommand) Validate() error {
	return c.guard.Validate(ErrCancelContainerCommandIsNotConstructed)
}

// OrderNo returns the order number.
func (c CancelContainerCommand) OrderNo() string { return c.orderNo }

// ContainerCode returns the container to cancel.
func (c CancelContainerCommand) ContainerCode() string { return c.containerCode }

func (c *CancelContainerCommand) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *CancelContainerCommand) setContainerCode(code string) error {
	if code == "" {
		return ErrContainerCodeIsRequired
	}
	c.containerCode = code
	return nil
}
