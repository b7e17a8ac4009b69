package commands

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var (
	ErrDeliverContainerCommandIsNotConstructed = errors.New(
		"DeliverContainerCommand must be created via NewDeliverContainerCommand constructor",
	)
	ErrReceiverIsRequired     = errors.New("receiver name is required")
	ErrDeliveryDateIsRequired = errors.New("delivery date is required")
)

// DeliverContainerCommand represents a request to record a container's
// delivery on site, including the receipt. Receiver and date are mandatory.
type DeliverContainerCommand struct { //nolint:recvcheck //using for validation
	orderNo       string
	containerCode string
	receiver      string
	date          string
	place         string
	note          string

	guard guard.ConstructorGuard
}

// NewDeliverContainerCommand creates a command to deliver a container.
func NewDeliverContainerCommand(orderNo, containerCode, receiver, date, place, note string) (DeliverContainerCommand, error) {
	cmd := DeliverContainerCommand{
		place: place,
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNo(orderNo),
		cmd.setContainerCode(containerCode),
		cmd.setReceiver(receiver),
		cmd.setDate(date),
	); err != nil {
		return DeliverContainerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverContainerCommand) Validate() error {
	return c.guard.Validate(ErrDeliverContainerCommandIsNotConstructed)
}

// OrderNo returns the order number.
func (c DeliverContainerCommand) OrderNo() string { return c.orderNo }

// ContainerCode returns the container to deliver.
func (c DeliverContainerCommand) ContainerCode() string { return c.containerCode }

// Receiver returns the name of the person accepting the delivery.
func (c DeliverContainerCommand) Receiver() string { return c.receiver }

// Date returns the delivery date as entered.
func (c DeliverContainerCommand) Date() string { return c.date }

// Place returns the delivery location.
func (c DeliverContainerCommand) Place() string { return c.place }

// Note returns the free-form remark.
func (c DeliverContainerCommand) Note() string { return c.note }

func (c *DeliverContainerCommand) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *DeliverContainerCommand) setContainerCode(code string) error {
	if code == "" {
		return ErrContainerCodeIsRequired
	}
	c.containerCode = code
	return nil
}

func (c *DeliverContainerCommand) setReceiver(receiver string) error {
	if receiver == "" {
		return ErrReceiverIsRequired
	}
	c.receiver = receiver
	return nil
}

func (c *DeliverContainerCommand) setDate(date string) error {
	if date == "" {
		return ErrDeliveryDateIsRequired
	}
	c.date = date
	return nil
}
