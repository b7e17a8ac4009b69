// Package labels renders scannable artifacts for the packaging floor:
// JSON label payloads, QR PNGs and print PDFs. Payloads are plain
// projections of the query read models, so a scanner app can reconstruct
// the packed content without talking to the panel.
//
// Renders are fire-and-forget: callers request a render into the keyed
// cache and fetch the PNG later, last write wins. A cron job re-renders
// the cached keys so labels follow the live allocation state.
package labels

import (
	"packtrack/internal/core/application/usecases/queries"
)

// LabelItem is one product line inside a label payload.
type LabelItem struct {
	ProductCode      string  `json:"productCode"`
	Name             string  `json:"name"`
	Quantity         float64 `json:"qty"`
	Unit             string  `json:"unit"`
	Packer           string  `json:"packer,omitempty"`
	SubPackagingType string  `json:"subPackagingType,omitempty"`
}

// ChildLabel is one nested capsule inside a container label payload.
type ChildLabel struct {
	Code        string  `json:"code"`
	Quantity    float64 `json:"total"`
	FromHistory bool    `json:"fromHistory,omitempty"`
}

// ReceiptLabel is the delivery receipt part of a container label payload.
type ReceiptLabel struct {
	Receiver  string `json:"receiver"`
	Date      string `json:"date"`
	Place     string `json:"place,omitempty"`
	Note      string `json:"note,omitempty"`
	Confirmed bool   `json:"confirmed"`
}

// ContainerLabel is the QR payload printed on a single container.
type ContainerLabel struct {
	Type          string        `json:"type"`
	Code          string        `json:"code"`
	OrderNo       string        `json:"order"`
	ContainerType string        `json:"containerType"`
	Status        string        `json:"status"`
	Items         []LabelItem   `json:"items"`
	Children      []ChildLabel  `json:"children,omitempty"`
	Supervisor    string        `json:"supervisor,omitempty"`
	VehicleNo     string        `json:"vehicleNo,omitempty"`
	Receipt       *ReceiptLabel `json:"receipt,omitempty"`
}

// NewContainerLabel builds a container label payload from the container
// print read model.
func NewContainerLabel(data queries.GetContainerPrintQueryResponse) ContainerLabel {
	c := data.Container
	label := ContainerLabel{
		Type:          "container",
		Code:          c.Code,
		OrderNo:       data.OrderNo,
		ContainerType: c.Type,
		Status:        c.Status,
		Items:         labelItems(c.Lines),
		Supervisor:    c.Supervisor,
		VehicleNo:     c.VehicleNo,
	}
	for _, child := range data.Children {
		label.Children = append(label.Children, ChildLabel{
			Code:        child.Code,
			Quantity:    child.Quantity,
			FromHistory: child.FromHistory,
		})
	}
	if c.Receipt != nil {
		label.Receipt = &ReceiptLabel{
			Receiver:  c.Receipt.Receiver,
			Date:      c.Receipt.Date,
			Place:     c.Receipt.Place,
			Note:      c.Receipt.Note,
			Confirmed: c.Receipt.Confirmed,
		}
	}
	return label
}

// OrderContainerRef is one container reference inside an order label.
type OrderContainerRef struct {
	Code string `json:"code"`
	Type string `json:"type"`
}

// OrderLabel is the QR payload covering a whole order.
type OrderLabel struct {
	Type       string              `json:"type"`
	OrderNo    string              `json:"order"`
	Customer   string              `json:"customer,omitempty"`
	Items      []LabelItem         `json:"items"`
	Containers []OrderContainerRef `json:"containers"`
}

// NewOrderLabel builds an order label payload from the summary and
// container read models. Tombstones carry no content and are skipped.
func NewOrderLabel(
	summary queries.GetOrderSummaryQueryResponse,
	products []queries.GetProductsQueryResponse,
	containers []queries.GetContainersQueryResponse,
) OrderLabel {
	label := OrderLabel{
		Type:     "order",
		OrderNo:  summary.OrderNo,
		Customer: summary.Customer,
	}
	for _, p := range products {
		label.Items = append(label.Items, LabelItem{
			ProductCode: p.DisplayCode,
			Name:        p.Name,
			Quantity:    p.Total,
			Unit:        p.Unit,
		})
	}
	for _, c := range containers {
		if c.Quantity <= 0 {
			continue
		}
		label.Containers = append(label.Containers, OrderContainerRef{Code: c.Code, Type: c.Type})
	}
	return label
}

// StationLabel is the QR payload for a station's packing list.
type StationLabel struct {
	Type        string       `json:"type"`
	OrderNo     string       `json:"order"`
	StationCode string       `json:"station"`
	StationName string       `json:"stationName"`
	Packer      string       `json:"packer,omitempty"`
	Items       []LabelItem  `json:"items"`
	Capsules    []ChildLabel `json:"capsules,omitempty"`
	Complete    bool         `json:"complete"`
}

// NewStationLabel builds a station label payload from the station print
// read model.
func NewStationLabel(data queries.GetStationPrintQueryResponse) StationLabel {
	label := StationLabel{
		Type:        "station",
		OrderNo:     data.OrderNo,
		StationCode: data.StationCode,
		StationName: data.StationName,
		Packer:      data.Packer,
		Complete:    data.Complete,
	}
	for _, p := range data.Products {
		label.Items = append(label.Items, LabelItem{
			ProductCode: p.DisplayCode,
			Name:        p.Name,
			Quantity:    p.Total,
			Unit:        p.Unit,
		})
	}
	for _, capsule := range data.Capsules {
		label.Capsules = append(label.Capsules, ChildLabel{
			Code:        capsule.Code,
			Quantity:    capsule.Quantity,
			FromHistory: capsule.FromHistory,
		})
	}
	return label
}

// GroupLabel is the QR payload for a station capsule group.
type GroupLabel struct {
	Type        string             `json:"type"`
	OrderNo     string             `json:"order"`
	StationCode string             `json:"station"`
	GroupType   string             `json:"groupType"`
	Capsules    []ChildLabel       `json:"capsules"`
	Assigned    map[string]float64 `json:"assigned,omitempty"`
	Total       float64            `json:"total"`
}

// NewGroupLabel builds a group label payload from one station group read
// model entry.
func NewGroupLabel(orderNo string, group queries.GetStationGroupsQueryResponse) GroupLabel {
	label := GroupLabel{
		Type:        "group",
		OrderNo:     orderNo,
		StationCode: group.StationCode,
		GroupType:   group.Type,
		Assigned:    group.AssignedByProduct,
		Total:       group.Total,
	}
	for _, capsule := range group.Capsules {
		label.Capsules = append(label.Capsules, ChildLabel{
			Code:        capsule.Code,
			Quantity:    capsule.Quantity,
			FromHistory: capsule.FromHistory,
		})
	}
	return label
}

// ProductLabel is the QR payload for a single shipment line item.
type ProductLabel struct {
	Type        string  `json:"type"`
	Scope       string  `json:"scope"`
	OrderNo     string  `json:"order"`
	Customer    string  `json:"customer,omitempty"`
	ProductCode string  `json:"productCode"`
	Name        string  `json:"productName"`
	Quantity    float64 `json:"qty"`
	Unit        string  `json:"unit"`
	Packer      string  `json:"packer,omitempty"`
	ContainerNo string  `json:"containerNo,omitempty"`
}

// NewProductLabel builds a single-product label payload from one product
// row. The container is the product's most recent assignment target.
func NewProductLabel(orderNo, customer string, row queries.GetProductsQueryResponse) ProductLabel {
	label := ProductLabel{
		Type:        "label",
		Scope:       "shipment-item",
		OrderNo:     orderNo,
		Customer:    customer,
		ProductCode: row.DisplayCode,
		Name:        row.Name,
		Quantity:    row.Total,
		Unit:        row.Unit,
	}
	if n := len(row.Assignments); n > 0 {
		last := row.Assignments[n-1]
		label.ContainerNo = last.ContainerCode
		label.Packer = last.Packer
	}
	return label
}

func labelItems(lines []queries.ContainerLine) []LabelItem {
	items := make([]LabelItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, LabelItem{
			ProductCode:      line.DisplayCode,
			Name:             line.Name,
			Quantity:         line.Quantity,
			Unit:             line.Unit,
			Packer:           line.Packer,
			SubPackagingType: line.SubPackagingType,
		})
	}
	return items
}
