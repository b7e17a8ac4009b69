package queries

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var ErrGetShipmentGroupsQueryIsNotConstructed = errors.New(
	"GetShipmentGroupsQuery must be created via NewGetShipmentGroupsQuery constructor",
)

// GetShipmentGroupsQuery retrieves the shipment view of an order: every
// top-level container (pallet or crate) with its child capsules, vehicle
// assignment and receipt, for the loading and delivery stages.
type GetShipmentGroupsQuery struct {
	orderNo string

	guard guard.ConstructorGuard
}

// NewGetShipmentGroupsQuery creates a query for an order's shipment groups.
func NewGetShipmentGroupsQuery(orderNo string) (GetShipmentGroupsQuery, error) {
	if orderNo == "" {
		return GetShipmentGroupsQuery{}, ErrOrderNoIsRequired
	}
	return GetShipmentGroupsQuery{orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentGroupsQueryIsNotConstructed)
}

// OrderNo returns the order number.
func (q GetShipmentGroupsQuery) OrderNo() string { return q.orderNo }

// GetShipmentGroupsQueryResponse is one top-level container with its
// children in the shipment read model.
type GetShipmentGroupsQueryResponse struct {
	ContainerCode string
	Type          string
	Status        string
	Quantity      float64
	Supervisor    string
	VehicleType   string
	VehicleNo     string
	DriverName    string
	Receipt       *ReceiptInfo
	Children      []CapsuleSummary
	Lines         []ContainerLine
}
