package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"packtrack/internal/adapters/out/memory"
	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/core/domain/model/product"
)

// seedFile mirrors the JSON layout of a snapshot seed file.
type seedFile struct {
	Orders []seedOrder `json:"orders"`
}

type seedOrder struct {
	OrderNo      string        `json:"orderNo"`
	Name         string        `json:"name"`
	Project      string        `json:"project"`
	Customer     string        `json:"customer"`
	OrderDate    string        `json:"orderDate"`
	DeliveryDate string        `json:"deliveryDate"`
	Supervisor   string        `json:"supervisor"`
	Stations     []seedStation `json:"stations"`
	Products     []seedProduct `json:"products"`
}

type seedStation struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Packer string `json:"packer"`
}

type seedProduct struct {
	Code      string `json:"code"`
	StockCode string `json:"stockCode"`
	Name      string `json:"name"`
	TotalText string `json:"totalText"`
	Unit      string `json:"unit"`
	Station   string `json:"station"`
}

// LoadSnapshot builds the store seed. An empty path yields the built-in
// demo snapshot.
func LoadSnapshot(path string) (memory.Snapshot, error) {
	if path == "" {
		return demoSnapshot()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return memory.Snapshot{}, fmt.Errorf("read snapshot file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return memory.Snapshot{}, fmt.Errorf("parse snapshot file: %w", err)
	}
	return buildSnapshot(seed)
}

func buildSnapshot(seed seedFile) (memory.Snapshot, error) {
	snapshot := memory.Snapshot{Products: make(map[string][]*product.Product)}

	for _, so := range seed.Orders {
		o, err := order.NewOrder(so.OrderNo, so.Name, so.Project, so.Customer)
		if err != nil {
			return memory.Snapshot{}, fmt.Errorf("order %s: %w", so.OrderNo, err)
		}
		o.SetDates(so.OrderDate, so.DeliveryDate)
		o.SetSupervisor(so.Supervisor)

		for _, ss := range so.Stations {
			station, err := order.NewStation(ss.Name, ss.Code, ss.Packer)
			if err != nil {
				return memory.Snapshot{}, fmt.Errorf("station %s: %w", ss.Code, err)
			}
			o.AddStation(station)
		}
		snapshot.Orders = append(snapshot.Orders, o)

		for _, sp := range so.Products {
			p, err := product.NewProduct(sp.Code, sp.StockCode, sp.Name,
				kernel.NewQuantityFromText(sp.TotalText), sp.Unit, sp.Station)
			if err != nil {
				return memory.Snapshot{}, fmt.Errorf("product %s: %w", sp.Code, err)
			}
			snapshot.Products[so.OrderNo] = append(snapshot.Products[so.OrderNo], p)
		}
	}

	return snapshot, nil
}

// demoSnapshot is the fixture order used when no seed file is configured.
func demoSnapshot() (memory.Snapshot, error) {
	return buildSnapshot(seedFile{Orders: []seedOrder{{
		OrderNo:      "ORD-2026-014",
		Name:         "Control cabinet line 3",
		Project:      "North plant retrofit",
		Customer:     "Hartwell Industrial",
		OrderDate:    "2026-08-03",
		DeliveryDate: "2026-09-15",
		Supervisor:   "D. Okafor",
		Stations: []seedStation{
			{Name: "Warehouse", Code: "DEP", Packer: "J. Miller"},
			{Name: "Cutting", Code: "CUT", Packer: "A. Chen"},
			{Name: "Paint", Code: "PNT", Packer: "S. Novak"},
			{Name: "Machining", Code: "MCH", Packer: "R. Alvarez"},
			{Name: "Assembly", Code: "ASM", Packer: "K. Tanaka"},
			{Name: "Electrical", Code: "ELE", Packer: "M. Haddad"},
		},
		Products: []seedProduct{
			{Code: "PRD-001", StockCode: "HW-4410", Name: "Cabinet frame, welded", TotalText: "12", Unit: "pcs", Station: "Machining"},
			{Code: "PRD-002", StockCode: "HW-4411", Name: "Side panel, powder coated", TotalText: "24", Unit: "pcs", Station: "Paint"},
			{Code: "PRD-003", StockCode: "HW-4412", Name: "Mounting plate", TotalText: "12", Unit: "pcs", Station: "Cutting"},
			{Code: "PRD-004", StockCode: "HW-4413", Name: "Busbar set", TotalText: "12*3", Unit: "pcs", Station: "Electrical"},
			{Code: "PRD-005", StockCode: "HW-4414", Name: "Door assembly with lock", TotalText: "12", Unit: "pcs", Station: "Assembly"},
			{Code: "PRD-006", StockCode: "HW-4415", Name: "Cable duct, 2m", TotalText: "48", Unit: "pcs", Station: "Warehouse"},
			{Code: "PRD-007", StockCode: "HW-4416", Name: "Terminal block strip", TotalText: "12*8", Unit: "pcs", Station: "Electrical"},
			{Code: "PRD-008", StockCode: "HW-4417", Name: "Gland plate, drilled", TotalText: "12", Unit: "pcs", Station: "Machining"},
		},
	}}})
}
