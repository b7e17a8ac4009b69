package queries

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var (
	ErrGetContainerPrintQueryIsNotConstructed = errors.New(
		"GetContainerPrintQuery must be created via NewGetContainerPrintQuery constructor",
	)
	ErrContainerCodeIsRequired = errors.New("container code is required")
)

// GetContainerPrintQuery retrieves everything a container label or packing
// list print needs: the container row, its lines, child details from the
// movement log, the responsible stations and the order's container counts.
type GetContainerPrintQuery struct {
	orderNo       string
	containerCode string

	guard guard.ConstructorGuard
}

// NewGetContainerPrintQuery creates a query for a container's print data.
func NewGetContainerPrintQuery(orderNo, containerCode string) (GetContainerPrintQuery, error) {
	if orderNo == "" {
		return GetContainerPrintQuery{}, ErrOrderNoIsRequired
	}
	if containerCode == "" {
		return GetContainerPrintQuery{}, ErrContainerCodeIsRequired
	}
	return GetContainerPrintQuery{
		orderNo:       orderNo,
		containerCode: containerCode,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetContainerPrintQuery) Validate() error {
	return q.guard.Validate(ErrGetContainerPrintQueryIsNotConstructed)
}

// OrderNo returns the order number.
func (q GetContainerPrintQuery) OrderNo() string { return q.orderNo }

// ContainerCode returns the container to print.
func (q GetContainerPrintQuery) ContainerCode() string { return q.containerCode }

// GetContainerPrintQueryResponse is the print read model for one container.
type GetContainerPrintQueryResponse struct {
	OrderNo      string
	OrderName    string
	Project      string
	Customer     string
	DeliveryDate string

	Container GetContainersQueryResponse

	// Children resolves the container's child capsules through the
	// movement log with archive fallback.
	Children []CapsuleSummary

	// Responsibles lists the stations (and packers) of the products inside.
	Responsibles []StationInfo

	PalletCount int
	CrateCount  int
}
