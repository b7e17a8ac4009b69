package queries

import (
	"context"

	"packtrack/internal/core/domain/model/container"
	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/core/domain/services"
)

// GetOrderSummaryQueryHandler builds the order header read model. Progress
// is derived fresh on every call, never stored.
type GetOrderSummaryQueryHandler struct {
	store Store
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
func NewGetOrderSummaryQueryHandler(store Store) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{store: store}
}

// Handle executes the query.
func (h GetOrderSummaryQueryHandler) Handle(
	_ context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	o, err := h.store.Order(query.OrderNo())
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	products := h.store.Products(query.OrderNo())
	containers := h.store.Containers(query.OrderNo())
	progress := services.NewProgressService().Derive(products, containers)

	resp := GetOrderSummaryQueryResponse{
		OrderNo:      o.OrderNo(),
		Name:         o.Name(),
		Project:      o.Project(),
		Customer:     o.Customer(),
		OrderDate:    o.OrderDate(),
		DeliveryDate: o.DeliveryDate(),
		Supervisor:   o.Supervisor(),
		Stage:        o.Stage().String(),
		StageOrdinal: o.Stage().Ordinal(),
		Progress:     progress.String(),
		ProductCount: len(products),
	}

	for _, s := range o.Stations() {
		resp.Stations = append(resp.Stations, StationInfo{
			Name:   s.Name(),
			Code:   s.Code(),
			Packer: s.Packer(),
		})
	}

	for _, p := range products {
		if p.FullyAllocated() {
			resp.FullyAllocated++
		}
	}

	for _, c := range containers {
		if c.IsEmpty() {
			continue
		}
		switch {
		case c.Type().IsCapsule():
			resp.CapsuleCount++
		case c.Type() == kernel.Crate:
			resp.CrateCount++
		default:
			resp.PalletCount++
		}
		if c.Status() == container.Delivered {
			resp.DeliveredCount++
		}
	}

	return resp, nil
}
