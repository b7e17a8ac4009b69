package queries

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var ErrGetContainersQueryIsNotConstructed = errors.New(
	"GetContainersQuery must be created via NewGetContainersQuery constructor",
)

// GetContainersQuery retrieves an order's container list with lifecycle
// state and, per container, the line items it holds.
type GetContainersQuery struct {
	orderNo string

	guard guard.ConstructorGuard
}

// NewGetContainersQuery creates a query for an order's containers.
func NewGetContainersQuery(orderNo string) (GetContainersQuery, error) {
	if orderNo == "" {
		return GetContainersQuery{}, ErrOrderNoIsRequired
	}
	return GetContainersQuery{orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetContainersQuery) Validate() error {
	return q.guard.Validate(ErrGetContainersQueryIsNotConstructed)
}

// OrderNo returns the order number.
func (q GetContainersQuery) OrderNo() string { return q.orderNo }

// ContainerLine is one product line inside a container.
type ContainerLine struct {
	ProductCode      string
	DisplayCode      string
	Name             string
	Unit             string
	Quantity         float64
	Packer           string
	SubPackagingType string
}

// ReceiptInfo is the recorded delivery receipt in the read model.
type ReceiptInfo struct {
	Receiver  string
	Date      string
	Place     string
	Note      string
	Confirmed bool
}

// GetContainersQueryResponse is one container in the read model.
type GetContainersQueryResponse struct {
	Code              string
	Type              string
	Status            string
	Quantity          float64
	ProductCodes      []string
	SubPackagingTypes []string
	Children          []string
	Supervisor        string
	VehicleType       string
	VehicleNo         string
	DriverName        string
	Receipt           *ReceiptInfo
	Lines             []ContainerLine
}
