package queries

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var (
	ErrGetProductsQueryIsNotConstructed = errors.New(
		"GetProductsQuery must be created via NewGetProductsQuery constructor",
	)
	ErrOrderNoIsRequired = errors.New("order number is required")
)

// GetProductsQuery retrieves the product rows of an order: quantities,
// remaining amounts and the per-container assignment badges the checklist
// renders.
type GetProductsQuery struct {
	orderNo string

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query for an order's product rows.
func NewGetProductsQuery(orderNo string) (GetProductsQuery, error) {
	if orderNo == "" {
		return GetProductsQuery{}, ErrOrderNoIsRequired
	}
	return GetProductsQuery{orderNo: orderNo, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// OrderNo returns the order number.
func (q GetProductsQuery) OrderNo() string { return q.orderNo }

// AssignmentBadge is one container assignment shown on a product row.
type AssignmentBadge struct {
	ContainerCode    string
	Quantity         float64
	Packer           string
	SubPackagingType string
}

// GetProductsQueryResponse is one product row in the read model.
type GetProductsQueryResponse struct {
	Code             string
	DisplayCode      string
	Name             string
	Unit             string
	Station          string
	Total            float64
	TotalText        string
	Remaining        float64
	DepotQuantity    float64
	TransferApproved bool
	PackagingReady   bool
	FullyAllocated   bool
	Assignments      []AssignmentBadge
}
