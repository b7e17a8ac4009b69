package order

import (
	"errors"
	"slices"

	"packtrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a manufacturing order whose produced products are being
// packed and shipped. It carries the order's identity and descriptive
// metadata, the list of production stations feeding it, and the workflow
// stage the packing panel is currently focused on.
//
// Order follows these invariants:
//   - Must have a non-empty order number
//   - The stage pointer is always a valid Stage
//   - Can only be created through the NewOrder constructor
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// orderNo is the unique order number
	orderNo string

	name     string
	project  string
	customer string

	// orderDate and deliveryDate are kept as entered
	orderDate    string
	deliveryDate string

	// supervisor is the default shipment supervisor for the order
	supervisor string

	// stage is the panel's current workflow stage
	stage Stage

	stations []Station

	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only
// way to create a valid Order, ensuring all business invariants are
// maintained.
//
// Parameters:
//   - orderNo: unique order number (required)
//   - name: order display name (required)
//   - project: project the order belongs to
//   - customer: customer name
//
// The order starts at the Packaging stage with no stations attached.
func NewOrder(orderNo, name, project, customer string) (*Order, error) {
	if orderNo == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("order name")
	}

	return &Order{
		orderNo:       orderNo,
		name:          name,
		project:       project,
		customer:      customer,
		stage:         Packaging,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// OrderNo returns the unique order number.
func (o *Order) OrderNo() string { return o.orderNo }

// Name returns the order display name.
func (o *Order) Name() string { return o.name }

// Project returns the project the order belongs to.
func (o *Order) Project() string { return o.project }

// Customer returns the customer name.
func (o *Order) Customer() string { return o.customer }

// OrderDate returns the order date as entered.
func (o *Order) OrderDate() string { return o.orderDate }

// DeliveryDate returns the planned delivery date as entered.
func (o *Order) DeliveryDate() string { return o.deliveryDate }

// Supervisor returns the default shipment supervisor.
func (o *Order) Supervisor() string { return o.supervisor }

// Stage returns the panel's current workflow stage.
func (o *Order) Stage() Stage { return o.stage }

// Stations returns a copy of the production stations feeding the order.
func (o *Order) Stations() []Station { return slices.Clone(o.stations) }

// StationByName returns the station with the given display name, when present.
func (o *Order) StationByName(name string) (Station, bool) {
	for _, s := range o.stations {
		if s.name == name {
			return s, true
		}
	}
	return Station{}, false
}

// StationByCode returns the station with the given short code, when present.
func (o *Order) StationByCode(code string) (Station, bool) {
	for _, s := range o.stations {
		if s.code == code {
			return s, true
		}
	}
	return Station{}, false
}

// SetDates records the order and planned delivery dates.
func (o *Order) SetDates(orderDate, deliveryDate string) {
	o.orderDate = orderDate
	o.deliveryDate = deliveryDate
}

// SetSupervisor records the default shipment supervisor.
func (o *Order) SetSupervisor(name string) {
	o.supervisor = name
}

// AddStation attaches a production station to the order. A station with the
// same name replaces the existing entry.
func (o *Order) AddStation(station Station) {
	for i, s := range o.stations {
		if s.name == station.name {
			o.stations[i] = station
			return
		}
	}
	o.stations = append(o.stations, station)
}

// Navigate moves the panel's stage pointer. Any valid stage may be targeted;
// the stage is a navigation aid, and stage-specific actions enforce their own
// gates.
//
// Returns:
//   - nil on successful navigation
//   - error if the target stage is invalid
func (o *Order) Navigate(stage Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	o.stage = stage
	return nil
}

// Clone returns a deep copy of the order. Used by the in-memory unit of work
// to snapshot state before a command runs.
func (o *Order) Clone() *Order {
	cp := *o
	cp.stations = slices.Clone(o.stations)
	return &cp
}
