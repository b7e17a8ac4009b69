package commands

import (
	"errors"
	"slices"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/pkg/guard"
)

var (
	ErrTransferContainersCommandIsNotConstructed = errors.New(
		"TransferContainersCommand must be created via NewTransferContainersCommand constructor",
	)
	ErrSourcesAreRequired    = errors.New("at least one source container is required")
	ErrDestinationIsRequired = errors.New(
		"either a destination container or a new destination type is required",
	)
	ErrDestinationIsASource = errors.New("destination cannot be one of the sources")
)

// TransferContainersCommand represents a request to move every allocation on
// the source containers into the destination container, logging each moved
// quantity so the transfer can be reversed exactly. The destination is either
// an existing container code or a new container of the given type.
type TransferContainersCommand struct { //nolint:recvcheck //using for validation
	orderNo            string
	sources            []string
	destination        string
	newDestinationType kernel.ContainerType

	guard guard.ConstructorGuard
}

// NewTransferContainersCommand creates a command to transfer containers.
// Either destination (an existing container) or newDestinationType must be
// given.
func NewTransferContainersCommand(
	orderNo string,
	sources []string,
	destination string,
	newDestinationType kernel.ContainerType,
) (TransferContainersCommand, error) {
	cmd := TransferContainersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNo(orderNo),
		cmd.setSources(sources),
		cmd.setDestination(destination, newDestinationType),
	); err != nil {
		return TransferContainersCommand{}, err
	}

	if cmd.destination != "" && slices.Contains(cmd.sources, cmd.destination) {
		return TransferContainersCommand{}, ErrDestinationIsASource
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferContainersCommand) Validate() error {
	return c.guard.Validate(ErrTransferContainersCommandIsNotConstructed)
}

// OrderNo returns the order number.
func (c TransferContainersCommand) OrderNo() string { return c.orderNo }

// Sources returns the source container codes.
func (c TransferContainersCommand) Sources() []string { return slices.Clone(c.sources) }

// Destination returns the existing destination container code, or empty when
// a new container is requested.
func (c TransferContainersCommand) Destination() string { return c.destination }

// NewDestinationType returns the type of the new destination container to
// create, or TypeUnknown when targeting an existing container.
func (c TransferContainersCommand) NewDestinationType() kernel.ContainerType {
	return c.newDestinationType
}

func (c *TransferContainersCommand) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *TransferContainersCommand) setSources(sources []string) error {
	if len(sources) == 0 {
		return ErrSourcesAreRequired
	}
	c.sources = slices.Clone(sources)
	return nil
}

func (c *TransferContainersCommand) setDestination(destination string, newType kernel.ContainerType) error {
	if destination == "" && newType.Validate() != nil {
		return ErrDestinationIsRequired
	}
	c.destination = destination
	c.newDestinationType = newType
	return nil
}
