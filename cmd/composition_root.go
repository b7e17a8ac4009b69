package cmd

import (
	"log/slog"

	"packtrack/internal/adapters/in/http"
	"packtrack/internal/adapters/out/labels"
	"packtrack/internal/adapters/out/memory"
	"packtrack/internal/core/application/usecases/commands"
	"packtrack/internal/core/application/usecases/queries"
	"packtrack/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	labelCache *labels.Cache
}

func NewCompositionRoot(config Config, store *memory.Store, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		labelCache: labels.NewCache(logger),
	}
}

func (c *CompositionRoot) LabelCache() *labels.Cache {
	return c.labelCache
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.labelCache, c.config.LabelRefreshSchedule, logger)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		AssignProduct:      c.CreateAssignProductCommandHandler(),
		EditAllocation:     c.CreateEditAllocationCommandHandler(),
		RemoveAllocation:   c.CreateRemoveAllocationCommandHandler(),
		TransferContainers: c.CreateTransferContainersCommandHandler(),
		UnassignChild:      c.CreateUnassignChildCommandHandler(),
		CancelContainer:    c.CreateCancelContainerCommandHandler(),
		ApproveTransfer:    c.CreateApproveTransferCommandHandler(),
		SealContainer:      c.CreateSealContainerCommandHandler(),
		LoadContainer:      c.CreateLoadContainerCommandHandler(),
		DeliverContainer:   c.CreateDeliverContainerCommandHandler(),
		NavigateStage:      c.CreateNavigateStageCommandHandler(),

		GetOrderSummary:   c.CreateGetOrderSummaryQueryHandler(),
		GetProducts:       c.CreateGetProductsQueryHandler(),
		GetContainers:     c.CreateGetContainersQueryHandler(),
		GetStationGroups:  c.CreateGetStationGroupsQueryHandler(),
		GetShipmentGroups: c.CreateGetShipmentGroupsQueryHandler(),
		GetContainerPrint: c.CreateGetContainerPrintQueryHandler(),
		GetStationPrint:   c.CreateGetStationPrintQueryHandler(),
	}, c.labelCache)
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAssignProductCommandHandler() commands.AssignProductCommandHandler {
	return commands.NewAssignProductCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateEditAllocationCommandHandler() commands.EditAllocationCommandHandler {
	return commands.NewEditAllocationCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateRemoveAllocationCommandHandler() commands.RemoveAllocationCommandHandler {
	return commands.NewRemoveAllocationCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateTransferContainersCommandHandler() commands.TransferContainersCommandHandler {
	return commands.NewTransferContainersCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateUnassignChildCommandHandler() commands.UnassignChildCommandHandler {
	return commands.NewUnassignChildCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateCancelContainerCommandHandler() commands.CancelContainerCommandHandler {
	return commands.NewCancelContainerCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateApproveTransferCommandHandler() commands.ApproveTransferCommandHandler {
	return commands.NewApproveTransferCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateSealContainerCommandHandler() commands.SealContainerCommandHandler {
	return commands.NewSealContainerCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateLoadContainerCommandHandler() commands.LoadContainerCommandHandler {
	return commands.NewLoadContainerCommandHandler(c.uow(), c.config.TestMode)
}

func (c *CompositionRoot) CreateDeliverContainerCommandHandler() commands.DeliverContainerCommandHandler {
	return commands.NewDeliverContainerCommandHandler(c.uow(), c.config.TestMode)
}

func (c *CompositionRoot) CreateNavigateStageCommandHandler() commands.NavigateStageCommandHandler {
	return commands.NewNavigateStageCommandHandler(c.uow())
}

func (c *CompositionRoot) CreateGetOrderSummaryQueryHandler() queries.GetOrderSummaryQueryHandler {
	return queries.NewGetOrderSummaryQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetContainersQueryHandler() queries.GetContainersQueryHandler {
	return queries.NewGetContainersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetStationGroupsQueryHandler() queries.GetStationGroupsQueryHandler {
	return queries.NewGetStationGroupsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetShipmentGroupsQueryHandler() queries.GetShipmentGroupsQueryHandler {
	return queries.NewGetShipmentGroupsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetContainerPrintQueryHandler() queries.GetContainerPrintQueryHandler {
	return queries.NewGetContainerPrintQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetStationPrintQueryHandler() queries.GetStationPrintQueryHandler {
	return queries.NewGetStationPrintQueryHandler(c.store)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
