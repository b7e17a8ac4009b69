package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"packtrack/internal/adapters/out/memory"
	"packtrack/internal/core/application/usecases/commands"
	"packtrack/internal/core/application/usecases/queries"
	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/core/domain/model/product"
)

type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW { return f() }

// QueryHandlersTestSuite runs every query handler against a store populated
// through the real command handlers, so the read models are asserted on the
// same state the panel would observe.
type QueryHandlersTestSuite struct {
	suite.Suite
	store   *memory.Store
	factory commands.UoWFactory
}

func (s *QueryHandlersTestSuite) SetupTest() {
	o, err := order.NewOrder("ORD-1", "Control cabinet line 3", "North plant retrofit", "Hartwell Industrial")
	s.Require().NoError(err)
	o.SetDates("2026-08-03", "2026-09-15")
	o.SetSupervisor("D. Okafor")

	assembly, err := order.NewStation("Assembly", "ASM", "K. Tanaka")
	s.Require().NoError(err)
	o.AddStation(assembly)
	cutting, err := order.NewStation("Cutting", "CUT", "A. Chen")
	s.Require().NoError(err)
	o.AddStation(cutting)

	mk := func(code string, total float64, station string) *product.Product {
		p, err := product.NewProduct(code, "STK-"+code, "part "+code,
			kernel.NewQuantity(total), "pcs", station)
		s.Require().NoError(err)
		return p
	}

	s.store = memory.NewStore(memory.Snapshot{
		Orders: []*order.Order{o},
		Products: map[string][]*product.Product{"ORD-1": {
			mk("PRD-1", 10, "Assembly"),
			mk("PRD-2", 6, "Assembly"),
			mk("PRD-3", 4, "Cutting"),
		}},
	})
	uowFactory := memory.NewUnitOfWorkFactory(s.store)
	s.factory = uowFactoryFunc(func() commands.UoW { return uowFactory.Create() })

	// 4 of PRD-1 and all of PRD-2 go into a station box, the rest of PRD-1
	// onto a pallet; the box is then transferred onto the pallet so the
	// read models have to resolve its content from the movement log.
	s.assign("PRD-1", 4, "", kernel.Box, "ASM")
	s.assign("PRD-1", 6, "P001", kernel.TypeUnknown, "")
	s.assign("PRD-2", 6, "ASM-K001", kernel.TypeUnknown, "")
	s.transfer([]string{"ASM-K001"}, "P001")
}

func (s *QueryHandlersTestSuite) assign(productCode string, qty float64, containerCode string, newType kernel.ContainerType, stationCode string) {
	handler := commands.NewAssignProductCommandHandler(s.factory)
	cmd, err := commands.NewAssignProductCommand("ORD-1", productCode, qty,
		containerCode, newType, stationCode, "K. Tanaka", "")
	s.Require().NoError(err)
	s.Require().NoError(handler.Handle(context.Background(), cmd))
}

func (s *QueryHandlersTestSuite) transfer(sources []string, destination string) {
	handler := commands.NewTransferContainersCommandHandler(s.factory)
	cmd, err := commands.NewTransferContainersCommand("ORD-1", sources, destination, kernel.TypeUnknown)
	s.Require().NoError(err)
	s.Require().NoError(handler.Handle(context.Background(), cmd))
}

func (s *QueryHandlersTestSuite) TestGetProducts() {
	handler := queries.NewGetProductsQueryHandler(s.store)
	query, err := queries.NewGetProductsQuery("ORD-1")
	s.Require().NoError(err)

	rows, err := handler.Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Require().Len(rows, 3)

	s.Equal("PRD-1", rows[0].Code)
	s.True(rows[0].FullyAllocated)
	s.True(rows[0].TransferApproved)
	s.InDelta(0, rows[0].Remaining, 1e-9)
	s.Require().Len(rows[0].Assignments, 1)
	s.Equal("P001", rows[0].Assignments[0].ContainerCode)
	s.InDelta(10, rows[0].Assignments[0].Quantity, 1e-9)

	s.Equal("PRD-3", rows[2].Code)
	s.False(rows[2].FullyAllocated)
	s.InDelta(4, rows[2].Remaining, 1e-9)
	s.Empty(rows[2].Assignments)
}

func (s *QueryHandlersTestSuite) TestGetContainers() {
	handler := queries.NewGetContainersQueryHandler(s.store)
	query, err := queries.NewGetContainersQuery("ORD-1")
	s.Require().NoError(err)

	containers, err := handler.Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Require().Len(containers, 2)

	pallet := containers[0]
	s.Equal("P001", pallet.Code)
	s.InDelta(16, pallet.Quantity, 1e-9)
	s.Equal([]string{"ASM-K001"}, pallet.Children)
	s.Require().Len(pallet.Lines, 2)
	s.Equal("PRD-1", pallet.Lines[0].ProductCode)
	s.InDelta(10, pallet.Lines[0].Quantity, 1e-9)
	s.Equal("PRD-2", pallet.Lines[1].ProductCode)
	s.InDelta(6, pallet.Lines[1].Quantity, 1e-9)

	// the emptied box survives as a tombstone
	box := containers[1]
	s.Equal("ASM-K001", box.Code)
	s.InDelta(0, box.Quantity, 1e-9)
	s.Empty(box.Lines)
}

func (s *QueryHandlersTestSuite) TestGetOrderSummary() {
	handler := queries.NewGetOrderSummaryQueryHandler(s.store)
	query, err := queries.NewGetOrderSummaryQuery("ORD-1")
	s.Require().NoError(err)

	summary, err := handler.Handle(context.Background(), query)
	s.Require().NoError(err)

	s.Equal("ORD-1", summary.OrderNo)
	s.Equal("Hartwell Industrial", summary.Customer)
	s.Equal("D. Okafor", summary.Supervisor)
	s.Equal(order.Packaging.String(), summary.Stage)
	s.NotEmpty(summary.Progress)
	s.Len(summary.Stations, 2)

	s.Equal(3, summary.ProductCount)
	s.Equal(2, summary.FullyAllocated)
	s.Equal(1, summary.PalletCount)
	s.Equal(0, summary.CrateCount)
	s.Equal(0, summary.CapsuleCount, "emptied capsules are not counted")
	s.Equal(0, summary.DeliveredCount)
}

func (s *QueryHandlersTestSuite) TestGetStationGroups() {
	handler := queries.NewGetStationGroupsQueryHandler(s.store)
	query, err := queries.NewGetStationGroupsQuery("ORD-1")
	s.Require().NoError(err)

	groups, err := handler.Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Require().Len(groups, 1)

	group := groups[0]
	s.Equal("ASM", group.StationCode)
	s.Equal("Assembly", group.StationName)
	s.Equal("K. Tanaka", group.Packer)
	s.Equal(kernel.Box.String(), group.Type)

	// the box is empty, its content comes from the movement log
	s.Require().Len(group.Capsules, 1)
	s.Equal("ASM-K001", group.Capsules[0].Code)
	s.InDelta(10, group.Capsules[0].Quantity, 1e-9)
	s.True(group.Capsules[0].FromHistory)
	s.Equal("P001", group.Capsules[0].Parent)

	s.InDelta(10, group.Total, 1e-9)
	s.InDelta(4, group.AssignedByProduct["PRD-1"], 1e-9)
	s.InDelta(6, group.AssignedByProduct["PRD-2"], 1e-9)
	s.InDelta(0, group.Remaining, 1e-9)
	s.True(group.Complete)
}

func (s *QueryHandlersTestSuite) TestGetShipmentGroups() {
	handler := queries.NewGetShipmentGroupsQueryHandler(s.store)
	query, err := queries.NewGetShipmentGroupsQuery("ORD-1")
	s.Require().NoError(err)

	groups, err := handler.Handle(context.Background(), query)
	s.Require().NoError(err)
	s.Require().Len(groups, 1)

	group := groups[0]
	s.Equal("P001", group.ContainerCode)
	s.InDelta(16, group.Quantity, 1e-9)
	s.Require().Len(group.Children, 1)
	s.Equal("ASM-K001", group.Children[0].Code)
	s.InDelta(10, group.Children[0].Quantity, 1e-9)
	s.True(group.Children[0].FromHistory)
	s.Len(group.Lines, 2)
}

func (s *QueryHandlersTestSuite) TestGetContainerPrint() {
	handler := queries.NewGetContainerPrintQueryHandler(s.store)
	query, err := queries.NewGetContainerPrintQuery("ORD-1", "P001")
	s.Require().NoError(err)

	data, err := handler.Handle(context.Background(), query)
	s.Require().NoError(err)

	s.Equal("Hartwell Industrial", data.Customer)
	s.Equal("2026-09-15", data.DeliveryDate)
	s.Equal("P001", data.Container.Code)
	s.Require().Len(data.Children, 1)
	s.Equal("ASM-K001", data.Children[0].Code)
}

func (s *QueryHandlersTestSuite) TestGetContainerPrint_UnknownContainer() {
	handler := queries.NewGetContainerPrintQueryHandler(s.store)
	query, err := queries.NewGetContainerPrintQuery("ORD-1", "P099")
	s.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	s.Require().Error(err)
}

func (s *QueryHandlersTestSuite) TestGetStationPrint() {
	handler := queries.NewGetStationPrintQueryHandler(s.store)
	query, err := queries.NewGetStationPrintQuery("ORD-1", "ASM")
	s.Require().NoError(err)

	data, err := handler.Handle(context.Background(), query)
	s.Require().NoError(err)

	s.Equal("Assembly", data.StationName)
	s.Equal("K. Tanaka", data.Packer)
	s.Require().Len(data.Products, 2)
	s.InDelta(10, data.Products[0].Assigned, 1e-9)
	s.InDelta(0, data.Products[0].Remaining, 1e-9)
	s.Require().Len(data.Capsules, 1)
	s.InDelta(10, data.Total, 1e-9)
	s.True(data.Complete)
}

func (s *QueryHandlersTestSuite) TestUnconstructedQueriesAreRejected() {
	ctx := context.Background()

	_, err := queries.NewGetProductsQueryHandler(s.store).Handle(ctx, queries.GetProductsQuery{})
	s.Require().ErrorIs(err, queries.ErrGetProductsQueryIsNotConstructed)

	_, err = queries.NewGetOrderSummaryQueryHandler(s.store).Handle(ctx, queries.GetOrderSummaryQuery{})
	s.Require().ErrorIs(err, queries.ErrGetOrderSummaryQueryIsNotConstructed)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
