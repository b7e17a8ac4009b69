package queries

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var (
	ErrGetStationPrintQueryIsNotConstructed = errors.New(
		"GetStationPrintQuery must be created via NewGetStationPrintQuery constructor",
	)
	ErrStationCodeIsRequired = errors.New("station code is required")
)

// GetStationPrintQuery retrieves a station's print data: its products with
// totals and remaining amounts, and the station's capsules.
type GetStationPrintQuery struct {
	orderNo     string
	stationCode string

	guard guard.ConstructorGuard
}

// NewGetStationPrintQuery creates a query for a station's print data.
func NewGetStationPrintQuery(orderNo, stationCode string) (GetStationPrintQuery, error) {
	if orderNo == "" {
		return GetStationPrintQuery{}, ErrOrderNoIsRequired
	}
	if stationCode == "" {
		return GetStationPrintQuery{}, ErrStationCodeIsRequired
	}
	return GetStationPrintQuery{
		orderNo:     orderNo,
		stationCode: stationCode,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStationPrintQuery) Validate() error {
	return q.guard.Validate(ErrGetStationPrintQueryIsNotConstructed)
}

// OrderNo returns the order number.
func (q GetStationPrintQuery) OrderNo() string { return q.orderNo }

// StationCode returns the station to print.
func (q GetStationPrintQuery) StationCode() string { return q.stationCode }

// StationPrintProduct is one product row on the station print.
type StationPrintProduct struct {
	DisplayCode string
	Name        string
	Unit        string
	Total       float64
	TotalText   string
	Remaining   float64
	Assigned    float64
}

// GetStationPrintQueryResponse is the station print read model.
type GetStationPrintQueryResponse struct {
	OrderNo     string
	OrderName   string
	StationCode string
	StationName string
	Packer      string
	Products    []StationPrintProduct
	Capsules    []CapsuleSummary
	Total       float64
	Complete    bool
}
