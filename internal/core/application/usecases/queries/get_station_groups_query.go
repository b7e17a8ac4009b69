package queries

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var ErrGetStationGroupsQueryIsNotConstructed = errors.New(
	"GetStationGroupsQuery must be created via NewGetStationGroupsQuery constructor",
)

// GetStationGroupsQuery retrieves the station capsule groups of an order:
// boxes and bags grouped by station and type, with inside totals that fall
// back to logged movements and the capsule archive once a capsule has been
// emptied by transfer.
type GetStationGroupsQuery struct {
	orderNo string

	guard guard.ConstructorGuard
}

// NewGetStationGroupsQuery creates a query for an order's capsule groups.
func NewGetStationGroupsQuery(orderNo string) (GetStationGroupsQuery, error) {
	if orderNo == "" {
		return GetStationGroupsQuery{}, ErrOrderNoIsRequired
	}
	return GetStationGroupsQuery{orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStationGroupsQuery) Validate() error {
	return q.guard.Validate(ErrGetStationGroupsQueryIsNotConstructed)
}

// OrderNo returns the order number.
func (q GetStationGroupsQuery) OrderNo() string { return q.orderNo }

// CapsuleSummary is one capsule inside a group. Quantity falls back to the
// logged moved total, then the archive, when the capsule itself is empty;
// FromHistory marks such fallback values.
type CapsuleSummary struct {
	Code        string
	Quantity    float64
	FromHistory bool
	Parent      string
}

// GetStationGroupsQueryResponse is one station capsule group.
type GetStationGroupsQueryResponse struct {
	StationCode string
	StationName string
	Packer      string
	Type        string
	Capsules    []CapsuleSummary
	Total       float64

	// AssignedByProduct sums the group's content per product code,
	// including moved history of emptied capsules.
	AssignedByProduct map[string]float64

	// Remaining is the unallocated total across the station's products.
	Remaining float64

	// Complete reports whether every product of the station is fully
	// allocated.
	Complete bool
}
