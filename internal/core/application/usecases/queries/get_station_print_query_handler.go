package queries

import (
	"context"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/pkg/errs"
)

// GetStationPrintQueryHandler builds the station print read model.
type GetStationPrintQueryHandler struct {
	store Store
}

// NewGetStationPrintQueryHandler creates a handler for station print queries.
func NewGetStationPrintQueryHandler(store Store) GetStationPrintQueryHandler {
	return GetStationPrintQueryHandler{store: store}
}

// Handle executes the query.
func (h GetStationPrintQueryHandler) Handle(
	_ context.Context,
	query GetStationPrintQuery,
) (GetStationPrintQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStationPrintQueryResponse{}, err
	}

	o, err := h.store.Order(query.OrderNo())
	if err != nil {
		return GetStationPrintQueryResponse{}, err
	}
	station, ok := o.StationByCode(query.StationCode())
	if !ok {
		return GetStationPrintQueryResponse{}, errs.NewObjectNotFoundError("station", query.StationCode())
	}

	products := h.store.Products(query.OrderNo())
	containers := h.store.Containers(query.OrderNo())
	ledger := h.store.Ledger(query.OrderNo())

	resp := GetStationPrintQueryResponse{
		OrderNo:     o.OrderNo(),
		OrderName:   o.Name(),
		StationCode: station.Code(),
		StationName: station.Name(),
		Packer:      station.Packer(),
	}

	anyProduced := false
	allAllocated := true
	for _, p := range products {
		if p.Station() != station.Name() {
			continue
		}
		if p.Total().Value() > 0 {
			anyProduced = true
			if p.Remaining() > 0 {
				allAllocated = false
			}
		}
		resp.Products = append(resp.Products, StationPrintProduct{
			DisplayCode: p.DisplayCode(),
			Name:        p.Name(),
			Unit:        p.Unit(),
			Total:       p.Total().Value(),
			TotalText:   p.Total().Text(),
			Remaining:   p.Remaining(),
			Assigned:    p.AllocatedTotal(),
		})
	}
	resp.Complete = anyProduced && allAllocated

	for _, c := range containers {
		s, t := kernel.CapsuleTypeOf(c.Code())
		if s != station.Code() || t == kernel.TypeUnknown {
			continue
		}
		summary := capsuleSummary(c, ledger)
		resp.Capsules = append(resp.Capsules, summary)
		resp.Total += summary.Quantity
	}

	return resp, nil
}
