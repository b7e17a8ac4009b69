package queries

import (
	"context"
)

// GetShipmentGroupsQueryHandler builds the shipment group read model: the
// order's top-level containers with child details resolved through the
// movement log and the capsule archive.
type GetShipmentGroupsQueryHandler struct {
	store Store
}

// NewGetShipmentGroupsQueryHandler creates a handler for shipment group queries.
func NewGetShipmentGroupsQueryHandler(store Store) GetShipmentGroupsQueryHandler {
	return GetShipmentGroupsQueryHandler{store: store}
}

// Handle executes the query. Only non-empty top-level containers and
// tombstoned parents with children are returned.
func (h GetShipmentGroupsQueryHandler) Handle(
	_ context.Context,
	query GetShipmentGroupsQuery,
) ([]GetShipmentGroupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := h.store.Products(query.OrderNo())
	containers := h.store.Containers(query.OrderNo())
	ledger := h.store.Ledger(query.OrderNo())

	byCode := make(map[string]int, len(containers))
	for i, c := range containers {
		byCode[c.Code()] = i
	}

	var groups []GetShipmentGroupsQueryResponse
	for _, c := range containers {
		if !c.Type().IsTopLevel() {
			continue
		}
		if c.IsEmpty() && len(c.Children()) == 0 {
			continue
		}

		group := GetShipmentGroupsQueryResponse{
			ContainerCode: c.Code(),
			Type:          c.Type().String(),
			Status:        c.Status().String(),
			Quantity:      c.Quantity(),
			Supervisor:    c.Supervisor(),
			VehicleType:   c.VehicleType(),
			VehicleNo:     c.VehicleNo(),
			DriverName:    c.DriverName(),
			Lines:         containerLines(c.Code(), products),
		}
		if r := c.Receipt(); r != nil {
			group.Receipt = &ReceiptInfo{
				Receiver:  r.Receiver(),
				Date:      r.Date(),
				Place:     r.Place(),
				Note:      r.Note(),
				Confirmed: r.Confirmed(),
			}
		}

		for _, childCode := range c.Children() {
			if i, ok := byCode[childCode]; ok {
				group.Children = append(group.Children, capsuleSummary(containers[i], ledger))
				continue
			}
			// child no longer in the list, history only
			summary := CapsuleSummary{Code: childCode, Parent: c.Code(), FromHistory: true}
			if archived, ok := ledger.ArchivedTotal(childCode); ok {
				summary.Quantity = archived
			}
			group.Children = append(group.Children, summary)
		}

		groups = append(groups, group)
	}

	return groups, nil
}
