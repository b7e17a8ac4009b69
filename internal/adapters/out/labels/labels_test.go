package labels_test

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"packtrack/internal/adapters/out/labels"
	"packtrack/internal/core/application/usecases/queries"
)

func containerPrintFixture() queries.GetContainerPrintQueryResponse {
	return queries.GetContainerPrintQueryResponse{
		OrderNo:      "ORD-1",
		OrderName:    "Control cabinets",
		Customer:     "Acme",
		DeliveryDate: "2026-09-15",
		Container: queries.GetContainersQueryResponse{
			Code:     "P001",
			Type:     "Pallet",
			Status:   "Sealed",
			Quantity: 7,
			Lines: []queries.ContainerLine{
				{ProductCode: "PRD-1", DisplayCode: "STK-1", Name: "bracket", Unit: "pcs", Quantity: 4, Packer: "J. Miller"},
				{ProductCode: "PRD-2", DisplayCode: "STK-2", Name: "panel", Unit: "pcs", Quantity: 3},
			},
		},
		Children: []queries.CapsuleSummary{
			{Code: "ASM-K001", Quantity: 4},
			{Code: "ASM-K002", Quantity: 3, FromHistory: true},
		},
	}
}

func TestNewContainerLabel(t *testing.T) {
	label := labels.NewContainerLabel(containerPrintFixture())

	assert.Equal(t, "container", label.Type)
	assert.Equal(t, "P001", label.Code)
	assert.Equal(t, "ORD-1", label.OrderNo)
	require.Len(t, label.Items, 2)
	assert.Equal(t, "STK-1", label.Items[0].ProductCode)
	require.Len(t, label.Children, 2)
	assert.True(t, label.Children[1].FromHistory)
	assert.Nil(t, label.Receipt)
}

func TestNewOrderLabel_SkipsEmptyContainers(t *testing.T) {
	label := labels.NewOrderLabel(
		queries.GetOrderSummaryQueryResponse{OrderNo: "ORD-1", Customer: "Acme"},
		[]queries.GetProductsQueryResponse{{DisplayCode: "STK-1", Name: "bracket", Total: 10, Unit: "pcs"}},
		[]queries.GetContainersQueryResponse{
			{Code: "P001", Type: "Pallet", Quantity: 7},
			{Code: "K001", Type: "Box", Quantity: 0},
		},
	)

	require.Len(t, label.Containers, 1)
	assert.Equal(t, "P001", label.Containers[0].Code)
	require.Len(t, label.Items, 1)
	assert.InDelta(t, 10, label.Items[0].Quantity, 1e-9)
}

func TestNewGroupLabel(t *testing.T) {
	label := labels.NewGroupLabel("ORD-1", queries.GetStationGroupsQueryResponse{
		StationCode: "ASM",
		Type:        "Box",
		Total:       10,
		Capsules: []queries.CapsuleSummary{
			{Code: "ASM-K001", Quantity: 10, FromHistory: true, Parent: "P001"},
		},
		AssignedByProduct: map[string]float64{"PRD-1": 4, "PRD-2": 6},
	})

	assert.Equal(t, "group", label.Type)
	assert.Equal(t, "ASM", label.StationCode)
	assert.Equal(t, "Box", label.GroupType)
	require.Len(t, label.Capsules, 1)
	assert.True(t, label.Capsules[0].FromHistory)
	assert.InDelta(t, 4, label.Assigned["PRD-1"], 1e-9)
}

func TestNewProductLabel_UsesLastAssignment(t *testing.T) {
	row := queries.GetProductsQueryResponse{
		DisplayCode: "STK-1",
		Name:        "bracket",
		Total:       10,
		Unit:        "pcs",
		Assignments: []queries.AssignmentBadge{
			{ContainerCode: "K001", Quantity: 4, Packer: "J. Miller"},
			{ContainerCode: "P001", Quantity: 6, Packer: "A. Chen"},
		},
	}

	label := labels.NewProductLabel("ORD-1", "Acme", row)

	assert.Equal(t, "label", label.Type)
	assert.Equal(t, "P001", label.ContainerNo)
	assert.Equal(t, "A. Chen", label.Packer)
}

func TestRenderQRPNG(t *testing.T) {
	data, err := labels.RenderQRPNG(labels.NewContainerLabel(containerPrintFixture()))
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), data[:4])
}

func TestRenderQRPNG_PayloadIsValidJSON(t *testing.T) {
	raw, err := json.Marshal(labels.NewContainerLabel(containerPrintFixture()))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "container", decoded["type"])
}

func TestRenderContainerLabelPDF(t *testing.T) {
	data, err := labels.RenderContainerLabelPDF(containerPrintFixture())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data[:4])
}

func TestRenderPackingListPDF(t *testing.T) {
	data, err := labels.RenderPackingListPDF(
		queries.GetOrderSummaryQueryResponse{OrderNo: "ORD-1", Name: "Control cabinets", Customer: "Acme"},
		[]queries.GetContainersQueryResponse{containerPrintFixture().Container},
	)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data[:4])
}

func TestCache_RequestAndGet(t *testing.T) {
	cache := labels.NewCache(slog.Default())

	cache.Request("order:ORD-1", func() ([]byte, error) {
		return []byte("png"), nil
	})

	require.Eventually(t, func() bool {
		_, ok := cache.Get("order:ORD-1")
		return ok
	}, time.Second, 5*time.Millisecond)

	r, ok := cache.Get("order:ORD-1")
	require.True(t, ok)
	assert.Equal(t, []byte("png"), r.Data)
	assert.False(t, r.RenderedAt.IsZero())
}

func TestCache_RefreshRerendersKnownKeys(t *testing.T) {
	cache := labels.NewCache(slog.Default())

	version := []byte("v1")
	cache.Request("order:ORD-1", func() ([]byte, error) {
		return version, nil
	})

	require.Eventually(t, func() bool {
		_, ok := cache.Get("order:ORD-1")
		return ok
	}, time.Second, 5*time.Millisecond)

	version = []byte("v2")
	cache.Refresh()

	r, ok := cache.Get("order:ORD-1")
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), r.Data)
	assert.Contains(t, cache.Keys(), "order:ORD-1")
}
