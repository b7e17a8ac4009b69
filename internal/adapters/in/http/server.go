// Package http exposes the packaging panel over JSON endpoints: one route
// per command and query, plus the label render endpoints backed by the
// keyed render cache.
package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"packtrack/internal/adapters/out/labels"
	"packtrack/internal/core/application/usecases/commands"
	"packtrack/internal/core/application/usecases/queries"
	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/pkg/errs"
)

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	assignProductHandler      commands.AssignProductCommandHandler
	editAllocationHandler     commands.EditAllocationCommandHandler
	removeAllocationHandler   commands.RemoveAllocationCommandHandler
	transferContainersHandler commands.TransferContainersCommandHandler
	unassignChildHandler      commands.UnassignChildCommandHandler
	cancelContainerHandler    commands.CancelContainerCommandHandler
	approveTransferHandler    commands.ApproveTransferCommandHandler
	sealContainerHandler      commands.SealContainerCommandHandler
	loadContainerHandler      commands.LoadContainerCommandHandler
	deliverContainerHandler   commands.DeliverContainerCommandHandler
	navigateStageHandler      commands.NavigateStageCommandHandler

	// Query handlers
	getOrderSummaryHandler    queries.GetOrderSummaryQueryHandler
	getProductsHandler        queries.GetProductsQueryHandler
	getContainersHandler      queries.GetContainersQueryHandler
	getStationGroupsHandler   queries.GetStationGroupsQueryHandler
	getShipmentGroupsHandler  queries.GetShipmentGroupsQueryHandler
	getContainerPrintHandler  queries.GetContainerPrintQueryHandler
	getStationPrintHandler    queries.GetStationPrintQueryHandler

	labelCache *labels.Cache
}

// Handlers bundles everything the server dispatches to.
type Handlers struct {
	AssignProduct      commands.AssignProductCommandHandler
	EditAllocation     commands.EditAllocationCommandHandler
	RemoveAllocation   commands.RemoveAllocationCommandHandler
	TransferContainers commands.TransferContainersCommandHandler
	UnassignChild      commands.UnassignChildCommandHandler
	CancelContainer    commands.CancelContainerCommandHandler
	ApproveTransfer    commands.ApproveTransferCommandHandler
	SealContainer      commands.SealContainerCommandHandler
	LoadContainer      commands.LoadContainerCommandHandler
	DeliverContainer   commands.DeliverContainerCommandHandler
	NavigateStage      commands.NavigateStageCommandHandler

	GetOrderSummary   queries.GetOrderSummaryQueryHandler
	GetProducts       queries.GetProductsQueryHandler
	GetContainers     queries.GetContainersQueryHandler
	GetStationGroups  queries.GetStationGroupsQueryHandler
	GetShipmentGroups queries.GetShipmentGroupsQueryHandler
	GetContainerPrint queries.GetContainerPrintQueryHandler
	GetStationPrint   queries.GetStationPrintQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the label render cache.
func NewServer(h Handlers, labelCache *labels.Cache) *Server {
	return &Server{
		assignProductHandler:      h.AssignProduct,
		editAllocationHandler:     h.EditAllocation,
		removeAllocationHandler:   h.RemoveAllocation,
		transferContainersHandler: h.TransferContainers,
		unassignChildHandler:      h.UnassignChild,
		cancelContainerHandler:    h.CancelContainer,
		approveTransferHandler:    h.ApproveTransfer,
		sealContainerHandler:      h.SealContainer,
		loadContainerHandler:      h.LoadContainer,
		deliverContainerHandler:   h.DeliverContainer,
		navigateStageHandler:      h.NavigateStage,
		getOrderSummaryHandler:    h.GetOrderSummary,
		getProductsHandler:        h.GetProducts,
		getContainersHandler:      h.GetContainers,
		getStationGroupsHandler:   h.GetStationGroups,
		getShipmentGroupsHandler:  h.GetShipmentGroups,
		getContainerPrintHandler:  h.GetContainerPrint,
		getStationPrintHandler:    h.GetStationPrint,
		labelCache:                labelCache,
	}
}

// RegisterRoutes wires every endpoint into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders/:orderNo/assignments", s.AssignProduct)
	api.PUT("/orders/:orderNo/assignments", s.EditAllocation)
	api.DELETE("/orders/:orderNo/assignments", s.RemoveAllocation)
	api.POST("/orders/:orderNo/transfers", s.TransferContainers)
	api.POST("/orders/:orderNo/unassignments", s.UnassignChild)
	api.DELETE("/orders/:orderNo/containers/:code", s.CancelContainer)
	api.POST("/orders/:orderNo/products/:code/approve-transfer", s.ApproveTransfer)
	api.POST("/orders/:orderNo/containers/:code/seal", s.SealContainer)
	api.POST("/orders/:orderNo/containers/:code/load", s.LoadContainer)
	api.POST("/orders/:orderNo/containers/:code/deliver", s.DeliverContainer)
	api.POST("/orders/:orderNo/stage", s.NavigateStage)

	api.GET("/orders/:orderNo/summary", s.GetOrderSummary)
	api.GET("/orders/:orderNo/products", s.GetProducts)
	api.GET("/orders/:orderNo/containers", s.GetContainers)
	api.GET("/orders/:orderNo/station-groups", s.GetStationGroups)
	api.GET("/orders/:orderNo/shipment-groups", s.GetShipmentGroups)
	api.GET("/orders/:orderNo/containers/:code/print", s.GetContainerPrint)
	api.GET("/orders/:orderNo/stations/:code/print", s.GetStationPrint)

	api.POST("/orders/:orderNo/labels/container/:code", s.RequestContainerLabel)
	api.POST("/orders/:orderNo/labels/order", s.RequestOrderLabel)
	api.POST("/orders/:orderNo/labels/station/:code", s.RequestStationLabel)
	api.POST("/orders/:orderNo/labels/group/:code", s.RequestGroupLabel)
	api.POST("/orders/:orderNo/labels/product/:code", s.RequestProductLabel)
	api.GET("/labels/:key", s.GetLabel)
}

// AssignProduct handles POST /api/v1/orders/:orderNo/assignments.
func (s *Server) AssignProduct(ctx echo.Context) error {
	var body struct {
		ProductCode      string  `json:"productCode"`
		Quantity         float64 `json:"quantity"`
		ContainerCode    string  `json:"containerCode"`
		NewContainerType string  `json:"newContainerType"`
		StationCode      string  `json:"stationCode"`
		Packer           string  `json:"packer"`
		SubPackagingType string  `json:"subPackagingType"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newType := kernel.TypeUnknown
	if body.NewContainerType != "" {
		t, err := kernel.ParseContainerType(body.NewContainerType)
		if err != nil {
			return badRequest(ctx, "Invalid container type: "+body.NewContainerType)
		}
		newType = t
	}

	cmd, err := commands.NewAssignProductCommand(
		ctx.Param("orderNo"), body.ProductCode, body.Quantity,
		body.ContainerCode, newType,
		body.StationCode, body.Packer, body.SubPackagingType,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.assignProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// EditAllocation handles PUT /api/v1/orders/:orderNo/assignments.
func (s *Server) EditAllocation(ctx echo.Context) error {
	var body struct {
		ProductCode   string  `json:"productCode"`
		ContainerCode string  `json:"containerCode"`
		Quantity      float64 `json:"quantity"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewEditAllocationCommand(ctx.Param("orderNo"), body.ProductCode, body.ContainerCode, body.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.editAllocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RemoveAllocation handles DELETE /api/v1/orders/:orderNo/assignments.
func (s *Server) RemoveAllocation(ctx echo.Context) error {
	var body struct {
		ProductCode   string `json:"productCode"`
		ContainerCode string `json:"containerCode"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRemoveAllocationCommand(ctx.Param("orderNo"), body.ProductCode, body.ContainerCode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.removeAllocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// TransferContainers handles POST /api/v1/orders/:orderNo/transfers.
func (s *Server) TransferContainers(ctx echo.Context) error {
	var body struct {
		Sources            []string `json:"sources"`
		Destination        string   `json:"destination"`
		NewDestinationType string   `json:"newDestinationType"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newType := kernel.TypeUnknown
	if body.NewDestinationType != "" {
		t, err := kernel.ParseContainerType(body.NewDestinationType)
		if err != nil {
			return badRequest(ctx, "Invalid container type: "+body.NewDestinationType)
		}
		newType = t
	}

	cmd, err := commands.NewTransferContainersCommand(ctx.Param("orderNo"), body.Sources, body.Destination, newType)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.transferContainersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UnassignChild handles POST /api/v1/orders/:orderNo/unassignments.
func (s *Server) UnassignChild(ctx echo.Context) error {
	var body struct {
		ParentCode string `json:"parentCode"`
		ChildCode  string `json:"childCode"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUnassignChildCommand(ctx.Param("orderNo"), body.ParentCode, body.ChildCode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.unassignChildHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelContainer handles DELETE /api/v1/orders/:orderNo/containers/:code.
func (s *Server) CancelContainer(ctx echo.Context) error {
	cmd, err := commands.NewCancelContainerCommand(ctx.Param("orderNo"), ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.cancelContainerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ApproveTransfer handles POST /api/v1/orders/:orderNo/products/:code/approve-transfer.
func (s *Server) ApproveTransfer(ctx echo.Context) error {
	cmd, err := commands.NewApproveTransferCommand(ctx.Param("orderNo"), ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.approveTransferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// SealContainer handles POST /api/v1/orders/:orderNo/containers/:code/seal.
func (s *Server) SealContainer(ctx echo.Context) error {
	var body struct {
		Supervisor string `json:"supervisor"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSealContainerCommand(ctx.Param("orderNo"), ctx.Param("code"), body.Supervisor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.sealContainerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// LoadContainer handles POST /api/v1/orders/:orderNo/containers/:code/load.
func (s *Server) LoadContainer(ctx echo.Context) error {
	var body struct {
		VehicleType string `json:"vehicleType"`
		VehicleNo   string `json:"vehicleNo"`
		DriverName  string `json:"driverName"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLoadContainerCommand(ctx.Param("orderNo"), ctx.Param("code"),
		body.VehicleType, body.VehicleNo, body.DriverName)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.loadContainerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeliverContainer handles POST /api/v1/orders/:orderNo/containers/:code/deliver.
func (s *Server) DeliverContainer(ctx echo.Context) error {
	var body struct {
		Receiver string `json:"receiver"`
		Date     string `json:"date"`
		Place    string `json:"place"`
		Note     string `json:"note"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDeliverContainerCommand(ctx.Param("orderNo"), ctx.Param("code"),
		body.Receiver, body.Date, body.Place, body.Note)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.deliverContainerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// NavigateStage handles POST /api/v1/orders/:orderNo/stage.
func (s *Server) NavigateStage(ctx echo.Context) error {
	var body struct {
		Stage string `json:"stage"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stage, err := order.ParseStage(body.Stage)
	if err != nil {
		return badRequest(ctx, "Invalid stage: "+body.Stage)
	}

	cmd, err := commands.NewNavigateStageCommand(ctx.Param("orderNo"), stage)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.navigateStageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderSummary handles GET /api/v1/orders/:orderNo/summary.
func (s *Server) GetOrderSummary(ctx echo.Context) error {
	query, err := queries.NewGetOrderSummaryQuery(ctx.Param("orderNo"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetProducts handles GET /api/v1/orders/:orderNo/products.
func (s *Server) GetProducts(ctx echo.Context) error {
	query, err := queries.NewGetProductsQuery(ctx.Param("orderNo"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetContainers handles GET /api/v1/orders/:orderNo/containers.
func (s *Server) GetContainers(ctx echo.Context) error {
	query, err := queries.NewGetContainersQuery(ctx.Param("orderNo"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getContainersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStationGroups handles GET /api/v1/orders/:orderNo/station-groups.
func (s *Server) GetStationGroups(ctx echo.Context) error {
	query, err := queries.NewGetStationGroupsQuery(ctx.Param("orderNo"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getStationGroupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentGroups handles GET /api/v1/orders/:orderNo/shipment-groups.
func (s *Server) GetShipmentGroups(ctx echo.Context) error {
	query, err := queries.NewGetShipmentGroupsQuery(ctx.Param("orderNo"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getShipmentGroupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetContainerPrint handles GET /api/v1/orders/:orderNo/containers/:code/print.
func (s *Server) GetContainerPrint(ctx echo.Context) error {
	query, err := queries.NewGetContainerPrintQuery(ctx.Param("orderNo"), ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getContainerPrintHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStationPrint handles GET /api/v1/orders/:orderNo/stations/:code/print.
func (s *Server) GetStationPrint(ctx echo.Context) error {
	query, err := queries.NewGetStationPrintQuery(ctx.Param("orderNo"), ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getStationPrintHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// labelRequestResponse is returned by the label request endpoints.
type labelRequestResponse struct {
	Key       string `json:"key"`
	RequestID string `json:"requestId"`
}

// RequestContainerLabel handles POST /api/v1/orders/:orderNo/labels/container/:code.
// Renders the container QR label, or the label PDF when format=pdf.
func (s *Server) RequestContainerLabel(ctx echo.Context) error {
	orderNo := ctx.Param("orderNo")
	code := ctx.Param("code")

	query, err := queries.NewGetContainerPrintQuery(orderNo, code)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	// Fail fast before scheduling if the container does not exist.
	if _, err := s.getContainerPrintHandler.Handle(ctx.Request().Context(), query); err != nil {
		return queryError(ctx, err)
	}

	format := ctx.QueryParam("format")
	key := "container:" + code + ":qr"
	render := func() ([]byte, error) {
		data, err := s.getContainerPrintHandler.Handle(context.Background(), query)
		if err != nil {
			return nil, err
		}
		return labels.RenderQRPNG(labels.NewContainerLabel(data))
	}
	if format == "pdf" {
		key = "container:" + code + ":pdf"
		render = func() ([]byte, error) {
			data, err := s.getContainerPrintHandler.Handle(context.Background(), query)
			if err != nil {
				return nil, err
			}
			return labels.RenderContainerLabelPDF(data)
		}
	}

	id := s.labelCache.Request(key, render)
	return ctx.JSON(http.StatusAccepted, labelRequestResponse{Key: key, RequestID: id.String()})
}

// RequestOrderLabel handles POST /api/v1/orders/:orderNo/labels/order.
// Renders the order QR label, or the packing list when format=pdf.
func (s *Server) RequestOrderLabel(ctx echo.Context) error {
	orderNo := ctx.Param("orderNo")

	summaryQuery, err := queries.NewGetOrderSummaryQuery(orderNo)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if _, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), summaryQuery); err != nil {
		return queryError(ctx, err)
	}
	productsQuery, err := queries.NewGetProductsQuery(orderNo)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	containersQuery, err := queries.NewGetContainersQuery(orderNo)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	format := ctx.QueryParam("format")
	key := "order:" + orderNo + ":qr"
	render := func() ([]byte, error) {
		summary, err := s.getOrderSummaryHandler.Handle(context.Background(), summaryQuery)
		if err != nil {
			return nil, err
		}
		products, err := s.getProductsHandler.Handle(context.Background(), productsQuery)
		if err != nil {
			return nil, err
		}
		containers, err := s.getContainersHandler.Handle(context.Background(), containersQuery)
		if err != nil {
			return nil, err
		}
		return labels.RenderQRPNG(labels.NewOrderLabel(summary, products, containers))
	}
	if format == "pdf" {
		key = "order:" + orderNo + ":pdf"
		render = func() ([]byte, error) {
			summary, err := s.getOrderSummaryHandler.Handle(context.Background(), summaryQuery)
			if err != nil {
				return nil, err
			}
			containers, err := s.getContainersHandler.Handle(context.Background(), containersQuery)
			if err != nil {
				return nil, err
			}
			return labels.RenderPackingListPDF(summary, containers)
		}
	}

	id := s.labelCache.Request(key, render)
	return ctx.JSON(http.StatusAccepted, labelRequestResponse{Key: key, RequestID: id.String()})
}

// RequestStationLabel handles POST /api/v1/orders/:orderNo/labels/station/:code.
func (s *Server) RequestStationLabel(ctx echo.Context) error {
	query, err := queries.NewGetStationPrintQuery(ctx.Param("orderNo"), ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	if _, err := s.getStationPrintHandler.Handle(ctx.Request().Context(), query); err != nil {
		return queryError(ctx, err)
	}

	key := "station:" + ctx.Param("code") + ":qr"
	id := s.labelCache.Request(key, func() ([]byte, error) {
		data, err := s.getStationPrintHandler.Handle(context.Background(), query)
		if err != nil {
			return nil, err
		}
		return labels.RenderQRPNG(labels.NewStationLabel(data))
	})
	return ctx.JSON(http.StatusAccepted, labelRequestResponse{Key: key, RequestID: id.String()})
}

// RequestGroupLabel handles POST /api/v1/orders/:orderNo/labels/group/:code.
// The group is addressed by station code plus an optional type query param
// when a station has both boxes and bags.
func (s *Server) RequestGroupLabel(ctx echo.Context) error {
	orderNo := ctx.Param("orderNo")
	stationCode := ctx.Param("code")
	groupType := ctx.QueryParam("type")

	query, err := queries.NewGetStationGroupsQuery(orderNo)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	findGroup := func(groups []queries.GetStationGroupsQueryResponse) (queries.GetStationGroupsQueryResponse, bool) {
		for _, g := range groups {
			if g.StationCode != stationCode {
				continue
			}
			if groupType != "" && g.Type != groupType {
				continue
			}
			return g, true
		}
		return queries.GetStationGroupsQueryResponse{}, false
	}

	groups, err := s.getStationGroupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queryError(ctx, err)
	}
	if _, ok := findGroup(groups); !ok {
		return queryError(ctx, errs.NewObjectNotFoundError("capsule group", stationCode))
	}

	key := "group:" + orderNo + ":" + stationCode
	if groupType != "" {
		key += ":" + groupType
	}
	key += ":qr"
	id := s.labelCache.Request(key, func() ([]byte, error) {
		groups, err := s.getStationGroupsHandler.Handle(context.Background(), query)
		if err != nil {
			return nil, err
		}
		group, ok := findGroup(groups)
		if !ok {
			return nil, errs.NewObjectNotFoundError("capsule group", stationCode)
		}
		return labels.RenderQRPNG(labels.NewGroupLabel(orderNo, group))
	})
	return ctx.JSON(http.StatusAccepted, labelRequestResponse{Key: key, RequestID: id.String()})
}

// RequestProductLabel handles POST /api/v1/orders/:orderNo/labels/product/:code.
func (s *Server) RequestProductLabel(ctx echo.Context) error {
	orderNo := ctx.Param("orderNo")
	productCode := ctx.Param("code")

	summaryQuery, err := queries.NewGetOrderSummaryQuery(orderNo)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	productsQuery, err := queries.NewGetProductsQuery(orderNo)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	findRow := func(rows []queries.GetProductsQueryResponse) (queries.GetProductsQueryResponse, bool) {
		for _, row := range rows {
			if row.Code == productCode {
				return row, true
			}
		}
		return queries.GetProductsQueryResponse{}, false
	}

	rows, err := s.getProductsHandler.Handle(ctx.Request().Context(), productsQuery)
	if err != nil {
		return queryError(ctx, err)
	}
	if _, ok := findRow(rows); !ok {
		return queryError(ctx, errs.NewObjectNotFoundError("product", productCode))
	}

	key := "product:" + orderNo + ":" + productCode + ":qr"
	id := s.labelCache.Request(key, func() ([]byte, error) {
		summary, err := s.getOrderSummaryHandler.Handle(context.Background(), summaryQuery)
		if err != nil {
			return nil, err
		}
		rows, err := s.getProductsHandler.Handle(context.Background(), productsQuery)
		if err != nil {
			return nil, err
		}
		row, ok := findRow(rows)
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", productCode)
		}
		return labels.RenderQRPNG(labels.NewProductLabel(orderNo, summary.Customer, row))
	})
	return ctx.JSON(http.StatusAccepted, labelRequestResponse{Key: key, RequestID: id.String()})
}

// GetLabel handles GET /api/v1/labels/:key - serves the latest finished
// render for the key. Returns 404 until the first render completes.
func (s *Server) GetLabel(ctx echo.Context) error {
	render, ok := s.labelCache.Get(ctx.Param("key"))
	if !ok {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Label is not rendered yet",
		})
	}

	contentType := "image/png"
	if bytes.HasPrefix(render.Data, []byte("%PDF")) {
		contentType = "application/pdf"
	}
	return ctx.Blob(http.StatusOK, contentType, render.Data)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// commandError maps a command handler failure to a response: missing
// aggregates are 404, violated business rules are 409.
func commandError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
	}
	return ctx.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: err.Error()})
}

func queryError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
	}
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}
