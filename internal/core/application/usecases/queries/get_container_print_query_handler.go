package queries

import (
	"context"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/pkg/errs"
)

// GetContainerPrintQueryHandler builds the print read model for a single
// container.
type GetContainerPrintQueryHandler struct {
	store Store
}

// NewGetContainerPrintQueryHandler creates a handler for container print queries.
func NewGetContainerPrintQueryHandler(store Store) GetContainerPrintQueryHandler {
	return GetContainerPrintQueryHandler{store: store}
}

// Handle executes the query.
func (h GetContainerPrintQueryHandler) Handle(
	_ context.Context,
	query GetContainerPrintQuery,
) (GetContainerPrintQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetContainerPrintQueryResponse{}, err
	}

	o, err := h.store.Order(query.OrderNo())
	if err != nil {
		return GetContainerPrintQueryResponse{}, err
	}
	products := h.store.Products(query.OrderNo())
	containers := h.store.Containers(query.OrderNo())
	ledger := h.store.Ledger(query.OrderNo())

	resp := GetContainerPrintQueryResponse{
		OrderNo:      o.OrderNo(),
		OrderName:    o.Name(),
		Project:      o.Project(),
		Customer:     o.Customer(),
		DeliveryDate: o.DeliveryDate(),
	}

	found := false
	for _, c := range containers {
		switch {
		case c.Code() == query.ContainerCode():
			found = true
			resp.Container = buildContainerRow(c, products)
			for _, childCode := range c.Children() {
				summary := CapsuleSummary{Code: childCode, Parent: c.Code(), FromHistory: true}
				for _, candidate := range containers {
					if candidate.Code() == childCode {
						summary = capsuleSummary(candidate, ledger)
						break
					}
				}
				if summary.FromHistory && summary.Quantity == 0 {
					if archived, ok := ledger.ArchivedTotal(childCode); ok {
						summary.Quantity = archived
					}
				}
				resp.Children = append(resp.Children, summary)
			}
		case c.IsEmpty():
			continue
		case c.Type() == kernel.Crate:
			resp.CrateCount++
		case c.Type() == kernel.Pallet:
			resp.PalletCount++
		}
	}
	if !found {
		return GetContainerPrintQueryResponse{}, errs.NewObjectNotFoundError("container", query.ContainerCode())
	}

	seen := make(map[string]bool)
	for _, line := range resp.Container.Lines {
		for _, p := range products {
			if p.Code() != line.ProductCode || seen[p.Station()] {
				continue
			}
			seen[p.Station()] = true
			info := StationInfo{Name: p.Station()}
			if s, ok := o.StationByName(p.Station()); ok {
				info.Code = s.Code()
				info.Packer = s.Packer()
			}
			resp.Responsibles = append(resp.Responsibles, info)
		}
	}

	return resp, nil
}
