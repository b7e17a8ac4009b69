package queries

import (
	"context"
)

// GetProductsQueryHandler builds the product rows for the packing checklist.
type GetProductsQueryHandler struct {
	store Store
}

// NewGetProductsQueryHandler creates a handler for product row queries.
func NewGetProductsQueryHandler(store Store) GetProductsQueryHandler {
	return GetProductsQueryHandler{store: store}
}

// Handle executes the query. Rows come back in the order's display order.
func (h GetProductsQueryHandler) Handle(
	_ context.Context,
	query GetProductsQuery,
) ([]GetProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := h.store.Products(query.OrderNo())
	rows := make([]GetProductsQueryResponse, 0, len(products))

	for _, p := range products {
		row := GetProductsQueryResponse{
			Code:             p.Code(),
			DisplayCode:      p.DisplayCode(),
			Name:             p.Name(),
			Unit:             p.Unit(),
			Station:          p.Station(),
			Total:            p.Total().Value(),
			TotalText:        p.Total().Text(),
			Remaining:        p.Remaining(),
			DepotQuantity:    p.DepotQuantity().Value(),
			TransferApproved: p.TransferApproved(),
			PackagingReady:   p.PackagingReady(),
			FullyAllocated:   p.FullyAllocated(),
		}
		for _, a := range p.Allocations() {
			row.Assignments = append(row.Assignments, AssignmentBadge{
				ContainerCode:    a.ContainerCode(),
				Quantity:         a.Quantity(),
				Packer:           a.Packer(),
				SubPackagingType: a.SubPackagingType(),
			})
		}
		rows = append(rows, row)
	}

	return rows, nil
}
