package commands

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var ErrSealContainerCommandIsNotConstructed = errors.New(
	"SealContainerCommand must be created via NewSealContainerCommand constructor",
)

// SealContainerCommand represents a request to seal a container. Sealing is
// gated globally: every product of the order must be fully allocated first.
type SealContainerCommand struct { //nolint:recvcheck //using for validation
	orderNo       string
	containerCode string
	supervisor    string

	guard guard.ConstructorGuard
}

// NewSealContainerCommand creates a command to seal a container. The
// supervisor name is optional and recorded on the container when given.
func NewSealContainerCommand(orderNo, containerCode, supervisor string) (SealContainerCommand, error) {
	cmd := SealContainerCommand{
		supervisor: supervisor,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNo(orderNo),
		cmd.setContainerCode(containerCode),
	); err != nil {
		return SealContainerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SealContainerCommand) Validate() error {
	return c.guard.Validate(ErrSealContainerCommandIsNotConstructed)
}

// OrderNo returns the order number.
func (c SealContainerCommand) OrderNo() string { return c.orderNo }

// ContainerCode returns the container to seal.
func (c SealContainerCommand) ContainerCode() string { return c.containerCode }

// Supervisor returns the supervisor name to record, or empty.
func (c SealContainerCommand) Supervisor() string { return c.supervisor }

func (c *SealContainerCommand) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *SealContainerCommand) setContainerCode(code string) error {
	if code == "" {
		return ErrContainerCodeIsRequired
	}
	c.containerCode = code
	return nil
}
