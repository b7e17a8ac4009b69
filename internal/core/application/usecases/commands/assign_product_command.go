package commands

import (
	"errors"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/pkg/guard"
)

var (
	ErrAssignProductCommandIsNotConstructed = errors.New(
		"AssignProductCommand must be created via NewAssignProductCommand constructor",
	)
	ErrOrderNoIsRequired     = errors.New("order number is required")
	ErrProductCodeIsRequired = errors.New("product code is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
	ErrTargetIsRequired      = errors.New("either a target container or a new container type is required")
)

// AssignProductCommand represents a request to allocate a quantity of a
// product into a container. The target is either an existing container code
// or a new container of the given type, optionally scoped to a station for
// capsule codes.
//
// Example:
//
//	cmd, err := NewAssignProductCommand("ORD-1", "PRD-1", 6, "", kernel.Pallet, "", "John", "")
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//
//	handler := NewAssignProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to assign: %w", err)
//	}
type AssignProductCommand struct { //nolint:recvcheck //using for validation
	orderNo          string
	productCode      string
	quantity         float64
	containerCode    string
	newContainerType kernel.ContainerType
	stationCode      string
	packer           string
	subPackagingType string

	guard guard.ConstructorGuard
}

// NewAssignProductCommand creates a command to allocate product quantity.
//
// Either containerCode (an existing container) or newContainerType must be
// given; stationCode scopes a new capsule's code to a station. Quantity must
// be positive; the stricter minimum-of-one rule is enforced by the domain.
func NewAssignProductCommand(
	orderNo, productCode string,
	quantity float64,
	containerCode string,
	newContainerType kernel.ContainerType,
	stationCode, packer, subPackagingType string,
) (AssignProductCommand, error) {
	cmd := AssignProductCommand{
		stationCode:      stationCode,
		packer:           packer,
		subPackagingType: subPackagingType,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNo(orderNo),
		cmd.setProductCode(productCode),
		cmd.setQuantity(quantity),
		cmd.setTarget(containerCode, newContainerType),
	); err != nil {
		return AssignProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignProductCommand) Validate() error {
	return c.guard.Validate(ErrAssignProductCommandIsNotConstructed)
}

// OrderNo returns the order number.
func (c AssignProductCommand) OrderNo() string { return c.orderNo }

// ProductCode returns the product to allocate from.
func (c AssignProductCommand) ProductCode() string { return c.productCode }

// Quantity returns the quantity to allocate.
func (c AssignProductCommand) Quantity() float64 { return c.quantity }

// ContainerCode returns the existing target container code, or empty when a
// new container is requested.
func (c AssignProductCommand) ContainerCode() string { return c.containerCode }

// NewContainerType returns the type of the new container to create, or
// TypeUnknown when targeting an existing container.
func (c AssignProductCommand) NewContainerType() kernel.ContainerType { return c.newContainerType }

// StationCode returns the station scope for a new capsule code, or empty.
func (c AssignProductCommand) StationCode() string { return c.stationCode }

// Packer returns the packer name to record on the allocation.
func (c AssignProductCommand) Packer() string { return c.packer }

// SubPackagingType returns the sub-packaging type to record.
func (c AssignProductCommand) SubPackagingType() string { return c.subPackagingType }

func (c *AssignProductCommand) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *AssignProductCommand) setProductCode(code string) error {
	if code == "" {
		return ErrProductCodeIsRequired
	}
	c.productCode = code
	return nil
}

func (c *AssignProductCommand) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}

func (c *AssignProductCommand) setTarget(containerCode string, newType kernel.ContainerType) error {
	if containerCode == "" && newType.Validate() != nil {
		return ErrTargetIsRequired
	}
	c.containerCode = containerCode
	c.newContainerType = newType
	return nil
}
