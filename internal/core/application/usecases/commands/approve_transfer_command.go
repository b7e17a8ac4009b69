package commands

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var ErrApproveTransferCommandIsNotConstructed = errors.New(
	"ApproveTransferCommand must be created via NewApproveTransferCommand constructor",
)

// ApproveTransferCommand represents a request to confirm a product's
// shipment transfer. Approval requires the shipment depot to still hold the
// whole produced quantity.
type ApproveTransferCommand struct { //nolint:recvcheck //using for validation
	orderNo     string
	productCode string

	guard guard.ConstructorGuard
}

// NewApproveTransferCommand creates a command to approve a shipment transfer.
func NewApproveTransferCommand(orderNo, productCode string) (ApproveTransferCommand, error) {
	cmd := ApproveTransferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNo(orderNo),
		cmd.setProductCode(productCode),
	); err != nil {
		return ApproveTransferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveTransferCommand) Validate() error {
	return c.guard.Validate(ErrApproveTransferCommandIsNotConstructed)
}

// OrderNo returns the order number.
func (c ApproveTransferCommand) OrderNo() string { return c.orderNo }

// ProductCode returns the product whose transfer is approved.
func (c ApproveTransferCommand) ProductCode() string { return c.productCode }

func (c *ApproveTransferCommand) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *ApproveTransferCommand) setProductCode(code string) error {
	if code == "" {
		return ErrProductCodeIsRequired
	}
	c.productCode = code
	return nil
}
