package commands

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var (
	ErrUnassignChildCommandIsNotConstructed = errors.New(
		"UnassignChildCommand must be created via NewUnassignChildCommand constructor",
	)
	ErrParentCodeIsRequired = errors.New("parent container code is required")
	ErrChildCodeIsRequired  = errors.New("child container code is required")
)

// UnassignChildCommand represents a request to pull one child container back
// out of its parent, restoring the quantities the child contributed.
type UnassignChildCommand struct { //nolint:recvcheck //using for validation
	orderNo    string
	parentCode string
	childCode  string

	guard guard.ConstructorGuard
}

// NewUnassignChildCommand creates a command to unassign a child container.
func NewUnassignChildCommand(orderNo, parentCode, childCode string) (UnassignChildCommand, error) {
	cmd := UnassignChildCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNo(orderNo),
		cmd.setParentCode(parentCode),
		cmd.setChildCode(childCode),
	); err != nil {
		return UnassignChildCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignChildCommand) Validate() error {
	return c.guard.Validate(ErrUnassignChildCommandIsNotConstructed)
}

// OrderNo returns the order number.
func (c UnassignChildCommand) OrderNo() string { return c.orderNo }

// ParentCode returns the parent container code.
func (c UnassignChildCommand) ParentCode() string { return c.parentCode }

// ChildCode returns the child container code.
func (c UnassignChildCommand) ChildCode() string { return c.childCode }

func (c *UnassignChildCommand) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *UnassignChildCommand) setParentCode(code string) error {
	if code == "" {
		return ErrParentCodeIsRequired
	}
	c.parentCode = code
	return nil
}

func (c *UnassignChildCommand) setChildCode(code string) error {
	if code == "" {
		return ErrChildCodeIsRequired
	}
	c.childCode = code
	return nil
}
