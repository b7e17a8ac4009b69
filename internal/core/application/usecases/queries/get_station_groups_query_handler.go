package queries

import (
	"context"

	"packtrack/internal/core/domain/model/container"
	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/core/domain/model/movement"
	"packtrack/internal/core/domain/model/product"
)

// GetStationGroupsQueryHandler builds the station capsule group read model.
// Groups are keyed by (station code, capsule type) and ordered by first
// appearance in the container list.
type GetStationGroupsQueryHandler struct {
	store Store
}

// NewGetStationGroupsQueryHandler creates a handler for capsule group queries.
func NewGetStationGroupsQueryHandler(store Store) GetStationGroupsQueryHandler {
	return GetStationGroupsQueryHandler{store: store}
}

// Handle executes the query.
func (h GetStationGroupsQueryHandler) Handle(
	_ context.Context,
	query GetStationGroupsQuery,
) ([]GetStationGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.store.Order(query.OrderNo())
	if err != nil {
		return nil, err
	}
	products := h.store.Products(query.OrderNo())
	containers := h.store.Containers(query.OrderNo())
	ledger := h.store.Ledger(query.OrderNo())

	type key struct {
		station string
		t       kernel.ContainerType
	}
	grouped := make(map[key]*GetStationGroupsQueryResponse)
	var order []key

	for _, c := range containers {
		station, t := kernel.CapsuleTypeOf(c.Code())
		if station == "" || t == kernel.TypeUnknown {
			continue
		}

		k := key{station: station, t: t}
		group, ok := grouped[k]
		if !ok {
			group = &GetStationGroupsQueryResponse{
				StationCode:       station,
				Type:              t.String(),
				AssignedByProduct: make(map[string]float64),
			}
			if s, found := o.StationByCode(station); found {
				group.StationName = s.Name()
				group.Packer = s.Packer()
			}
			grouped[k] = group
			order = append(order, k)
		}

		summary := capsuleSummary(c, ledger)
		group.Capsules = append(group.Capsules, summary)
		group.Total += summary.Quantity
		accumulateGroupContent(group, c, products, ledger)
	}

	result := make([]GetStationGroupsQueryResponse, 0, len(order))
	for _, k := range order {
		group := grouped[k]
		fillStationCompletion(group, products)
		result = append(result, *group)
	}
	return result, nil
}

// capsuleSummary resolves a capsule's display quantity: live content first,
// then the logged moved total, then the archived value.
func capsuleSummary(c *container.Container, ledger *movement.Ledger) CapsuleSummary {
	summary := CapsuleSummary{Code: c.Code(), Quantity: c.Quantity()}
	if parent, ok := ledger.ParentOf(c.Code()); ok {
		summary.Parent = parent
	}
	if summary.Quantity > 0 {
		return summary
	}

	var moved float64
	for _, qty := range ledger.MovedTotal(c.Code()) {
		moved += qty
	}
	if moved > 0 {
		summary.Quantity = moved
		summary.FromHistory = true
		return summary
	}

	if archived, ok := ledger.ArchivedTotal(c.Code()); ok {
		summary.Quantity = archived
		summary.FromHistory = true
	}
	return summary
}

// accumulateGroupContent adds the capsule's per-product content to the
// group: live allocations, or the movement log for emptied capsules.
func accumulateGroupContent(
	group *GetStationGroupsQueryResponse,
	c *container.Container,
	products []*product.Product,
	ledger *movement.Ledger,
) {
	live := false
	for _, p := range products {
		if a, ok := p.AllocationTo(c.Code()); ok {
			group.AssignedByProduct[p.Code()] += a.Quantity()
			live = true
		}
	}
	if live {
		return
	}
	for productCode, qty := range ledger.MovedTotal(c.Code()) {
		group.AssignedByProduct[productCode] += qty
	}
}

func fillStationCompletion(group *GetStationGroupsQueryResponse, products []*product.Product) {
	anyProduced := false
	for _, p := range products {
		if p.Station() != group.StationName || p.Total().Value() <= 0 {
			continue
		}
		anyProduced = true
		group.Remaining += p.Remaining()
	}
	group.Complete = anyProduced && group.Remaining == 0
}
