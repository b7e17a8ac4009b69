package queries

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery retrieves an order's header for the panel: metadata,
// the stage pointer, the derived progress label and the headline counts.
type GetOrderSummaryQuery struct {
	orderNo string

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for an order's summary.
func NewGetOrderSummaryQuery(orderNo string) (GetOrderSummaryQuery, error) {
	if orderNo == "" {
		return GetOrderSummaryQuery{}, ErrOrderNoIsRequired
	}
	return GetOrderSummaryQuery{orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderNo returns the order number.
func (q GetOrderSummaryQuery) OrderNo() string { return q.orderNo }

// StationInfo is one production station in the read model.
type StationInfo struct {
	Name   string
	Code   string
	Packer string
}

// GetOrderSummaryQueryResponse is the order header read model.
type GetOrderSummaryQueryResponse struct {
	OrderNo      string
	Name         string
	Project      string
	Customer     string
	OrderDate    string
	DeliveryDate string
	Supervisor   string
	Stage        string
	StageOrdinal int
	Progress     string
	Stations     []StationInfo

	ProductCount   int
	FullyAllocated int
	PalletCount    int
	CrateCount     int
	CapsuleCount   int
	DeliveredCount int
}
