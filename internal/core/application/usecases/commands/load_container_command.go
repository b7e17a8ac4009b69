package commands

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var (
	ErrLoadContainerCommandIsNotConstructed = errors.New(
		"LoadContainerCommand must be created via NewLoadContainerCommand constructor",
	)
	ErrVehicleNoIsRequired = errors.New("vehicle plate is required")
)

// LoadContainerCommand represents a request to load a container onto a
// vehicle. Loading is gated on shipment packaging being complete unless test
// mode relaxes the gate.
type LoadContainerCommand struct { //nolint:recvcheck //using for validation
	orderNo       string
	containerCode string
	vehicleType   string
	vehicleNo     string
	driverName    string

	guard guard.ConstructorGuard
}

// NewLoadContainerCommand creates a command to load a container.
func NewLoadContainerCommand(orderNo, containerCode, vehicleType, vehicleNo, driverName string) (LoadContainerCommand, error) {
	cmd := LoadContainerCommand{
		vehicleType: vehicleType,
		driverName:  driverName,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderNo(orderNo),
		cmd.setContainerCode(containerCode),
		cmd.setVehicleNo(vehicleNo),
	); err != nil {
		return LoadContainerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoadContainerCommand) Validate() error {
	return c.guard.Validate(ErrLoadContainerCommandIsNotConstructed)
}

// OrderNo returns the order number.
func (c LoadContainerCommand) OrderNo() string { return c.orderNo }

// ContainerCode returns the container to load.
func (c LoadContainerCommand) ContainerCode() string { return c.containerCode }

// VehicleType returns the vehicle type.
func (c LoadContainerCommand) VehicleType() string { return c.vehicleType }

// VehicleNo returns the vehicle plate.
func (c LoadContainerCommand) VehicleNo() string { return c.vehicleNo }

// DriverName returns the driver name.
func (c LoadContainerCommand) DriverName() string { return c.driverName }

func (c *LoadContainerCommand) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}
	c.orderNo = orderNo
	return nil
}

func (c *LoadContainerCommand) setContainerCode(code string) error {
	if code == "" {
		return ErrContainerCodeIsRequired
	}
	c.containerCode = code
	return nil
}

func (c *LoadContainerCommand) setVehicleNo(vehicleNo string) error {
	if vehicleNo == "" {
		return ErrVehicleNoIsRequired
	}
	c.vehicleNo = vehicleNo
	return nil
}
