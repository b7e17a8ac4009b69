package queries

import (
	"context"

	"packtrack/internal/core/domain/model/container"
	"packtrack/internal/core/domain/model/product"
)

// GetContainersQueryHandler builds the container list read model, joining
// each container with the product allocations it holds.
type GetContainersQueryHandler struct {
	store Store
}

// NewGetContainersQueryHandler creates a handler for container list queries.
func NewGetContainersQueryHandler(store Store) GetContainersQueryHandler {
	return GetContainersQueryHandler{store: store}
}

// Handle executes the query. Containers come back in derivation order,
// tombstones included.
func (h GetContainersQueryHandler) Handle(
	_ context.Context,
	query GetContainersQuery,
) ([]GetContainersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := h.store.Products(query.OrderNo())
	containers := h.store.Containers(query.OrderNo())

	rows := make([]GetContainersQueryResponse, 0, len(containers))
	for _, c := range containers {
		rows = append(rows, buildContainerRow(c, products))
	}
	return rows, nil
}

func buildContainerRow(c *container.Container, products []*product.Product) GetContainersQueryResponse {
	row := GetContainersQueryResponse{
		Code:              c.Code(),
		Type:              c.Type().String(),
		Status:            c.Status().String(),
		Quantity:          c.Quantity(),
		ProductCodes:      c.ProductCodes(),
		SubPackagingTypes: c.SubPackagingTypes(),
		Children:          c.Children(),
		Supervisor:        c.Supervisor(),
		VehicleType:       c.VehicleType(),
		VehicleNo:         c.VehicleNo(),
		DriverName:        c.DriverName(),
		Lines:             containerLines(c.Code(), products),
	}
	if r := c.Receipt(); r != nil {
		row.Receipt = &ReceiptInfo{
			Receiver:  r.Receiver(),
			Date:      r.Date(),
			Place:     r.Place(),
			Note:      r.Note(),
			Confirmed: r.Confirmed(),
		}
	}
	return row
}

// containerLines joins a container code against the products' allocations,
// in product display order.
func containerLines(code string, products []*product.Product) []ContainerLine {
	var lines []ContainerLine
	for _, p := range products {
		a, ok := p.AllocationTo(code)
		if !ok {
			continue
		}
		lines = append(lines, ContainerLine{
			ProductCode:      p.Code(),
			DisplayCode:      p.DisplayCode(),
			Name:             p.Name(),
			Unit:             p.Unit(),
			Quantity:         a.Quantity(),
			Packer:           a.Packer(),
			SubPackagingType: a.SubPackagingType(),
		})
	}
	return lines
}
