// Package http adapts the generated HTTP contract onto the application use
// cases. The adapter owns three concerns: translating wire payloads into
// guarded commands and queries, mapping the domain error taxonomy onto HTTP
// status codes, and bridging the change feed onto server-sent events.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gasline/internal/core/application/usecases/commands"
	"gasline/internal/core/application/usecases/queries"
	"gasline/internal/core/domain/model/driver"
	"gasline/internal/core/domain/model/kernel"
	"gasline/internal/core/domain/model/order"
	"gasline/internal/core/ports"
	"gasline/internal/feed"
	"gasline/internal/generated/servers"
	"gasline/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the generated ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	approveOrderHandler   commands.ApproveOrderCommandHandler
	assignDriverHandler   commands.AssignDriverCommandHandler
	progressOrderHandler  commands.ProgressOrderCommandHandler
	registerDriverHandler commands.RegisterDriverCommandHandler

	// Query handlers
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler
	dispatchOrdersHandler queries.ListDispatchOrdersQueryHandler
	driverOrdersHandler   queries.GetDriverOrdersQueryHandler
	dashboardHandler      queries.GetDashboardStatsQueryHandler

	orderFeed *feed.Feed
}

// NewServer creates a new HTTP server with the required command and query
// handlers plus the change feed backing the watch stream.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	progressOrderHandler commands.ProgressOrderCommandHandler,
	registerDriverHandler commands.RegisterDriverCommandHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	dispatchOrdersHandler queries.ListDispatchOrdersQueryHandler,
	driverOrdersHandler queries.GetDriverOrdersQueryHandler,
	dashboardHandler queries.GetDashboardStatsQueryHandler,
	orderFeed *feed.Feed,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		approveOrderHandler:   approveOrderHandler,
		assignDriverHandler:   assignDriverHandler,
		progressOrderHandler:  progressOrderHandler,
		registerDriverHandler: registerDriverHandler,
		customerOrdersHandler: customerOrdersHandler,
		dispatchOrdersHandler: dispatchOrdersHandler,
		driverOrdersHandler:   driverOrdersHandler,
		dashboardHandler:      dashboardHandler,
		orderFeed:             orderFeed,
	}
}

// actorFrom builds the domain actor from the identity-provider headers.
// The role claim is trusted as-is; unknown roles fail here.
func actorFrom(id openapi_types.UUID, role string) (kernel.Actor, error) {
	actorID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.Actor{}, err
	}

	actorRole, err := kernel.RoleFromString(role)
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(actorID, actorRole)
}

// statusCodeFor maps the domain error taxonomy onto HTTP status codes.
// Precondition failures and lost races are conflicts: the caller must
// re-read and retry against fresh state or abort.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, commands.ErrDriverNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrActorNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, commands.ErrAssignmentConflict),
		errors.Is(err, ports.ErrConcurrencyConflict),
		errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, order.ErrOrderNotAssignable),
		errors.Is(err, driver.ErrDriverIsBusy):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func writeErrorWith(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

// orderToAPI converts a domain order aggregate to its wire representation.
func orderToAPI(o *order.Order) servers.Order {
	customer := o.Customer()
	destination := o.Destination()

	items := make([]servers.OrderItem, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		items = append(items, servers.OrderItem{
			ProductId:  item.ProductID(),
			Name:       item.Name(),
			UnitWeight: item.UnitWeight(),
			UnitPrice:  item.UnitPrice(),
		})
	}

	resp := servers.Order{
		Id:            o.ID().Bytes(),
		Status:        o.Status().String(),
		AdminApproved: o.AdminApproved(),
		Amount:        o.Amount(),
		Customer: servers.Customer{
			Id:      customer.ID().Bytes(),
			Name:    customer.Name(),
			Phone:   customer.Phone(),
			Address: customer.Address(),
		},
		Items: items,
		Destination: servers.GeoPoint{
			Lat:     destination.Latitude(),
			Lng:     destination.Longitude(),
			Address: destination.Address(),
		},
		CreatedAt: o.CreatedAt(),
	}

	if d := o.Driver(); d != nil {
		resp.Driver = &servers.DriverContact{
			Id:    d.ID().Bytes(),
			Name:  d.Name(),
			Phone: d.Phone(),
		}
	}

	return resp
}

// viewToAPI converts an order read model to its wire representation.
func viewToAPI(view queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, servers.OrderItem{
			ProductId:  item.ProductID,
			Name:       item.Name,
			UnitWeight: item.UnitWeight,
			UnitPrice:  item.UnitPrice,
		})
	}

	resp := servers.Order{
		Id:            view.ID.Bytes(),
		Status:        view.Status,
		AdminApproved: view.AdminApproved,
		Amount:        view.Amount,
		Customer: servers.Customer{
			Id:      view.CustomerID.Bytes(),
			Name:    view.CustomerName,
			Phone:   view.CustomerPhone,
			Address: view.CustomerAddress,
		},
		Items: items,
		Destination: servers.GeoPoint{
			Lat:     view.DestinationLat,
			Lng:     view.DestinationLng,
			Address: view.DestinationAddress,
		},
		CreatedAt: view.CreatedAt,
	}

	if view.DriverID != nil {
		resp.Driver = &servers.DriverContact{
			Id:    view.DriverID.Bytes(),
			Name:  view.DriverName,
			Phone: view.DriverPhone,
		}
	}

	return resp
}

// CreateOrder handles POST /api/v1/orders - registers a new order from the
// checkout flow.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return writeErrorWith(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromBytes(body.Customer.Id[:])
	if err != nil {
		return writeError(ctx, err)
	}

	customer, err := order.NewCustomer(customerID, body.Customer.Name, body.Customer.Phone, body.Customer.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]order.LineItem, 0, len(body.Items))
	for _, item := range body.Items {
		lineItem, itemErr := order.NewLineItem(item.ProductId, item.Name, item.UnitWeight, item.UnitPrice)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}
		items = append(items, lineItem)
	}

	destination, err := kernel.NewGeoPoint(body.Destination.Lat, body.Destination.Lng, body.Destination.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, items, destination)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToAPI(created))
}

// ApproveOrder handles POST /api/v1/orders/{orderId}/approve.
func (s *Server) ApproveOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.ApproveOrderParams) error {
	actor, err := actorFrom(params.XActorId, params.XActorRole)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApproveOrderCommand(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	approved, err := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToAPI(approved))
}

// AssignDriver handles POST /api/v1/orders/{orderId}/assign.
func (s *Server) AssignDriver(ctx echo.Context, orderId openapi_types.UUID, params servers.AssignDriverParams) error {
	actor, err := actorFrom(params.XActorId, params.XActorRole)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.AssignRequest
	if err = ctx.Bind(&body); err != nil {
		return writeErrorWith(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	driverID, err := kernel.UUIDFromBytes(body.DriverId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	assigned, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToAPI(assigned))
}

// ProgressOrder handles POST /api/v1/orders/{orderId}/status - applies one
// lifecycle transition on behalf of the acting role.
func (s *Server) ProgressOrder(ctx echo.Context, orderId openapi_types.UUID, params servers.ProgressOrderParams) error {
	actor, err := actorFrom(params.XActorId, params.XActorRole)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.StatusRequest
	if err = ctx.Bind(&body); err != nil {
		return writeErrorWith(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.applyTransition(ctx, orderId, target, actor)
}

// RejectAssignment handles POST /api/v1/orders/{orderId}/reject - the
// assigned driver (or dispatch) declines; the order reverts to pending.
func (s *Server) RejectAssignment(ctx echo.Context, orderId openapi_types.UUID, params servers.RejectAssignmentParams) error {
	actor, err := actorFrom(params.XActorId, params.XActorRole)
	if err != nil {
		return writeError(ctx, err)
	}

	return s.applyTransition(ctx, orderId, order.RejectedByDriver, actor)
}

func (s *Server) applyTransition(
	ctx echo.Context,
	orderId openapi_types.UUID,
	target order.Status,
	actor kernel.Actor,
) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewProgressOrderCommand(orderID, target, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.progressOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToAPI(updated))
}

// RegisterDriver handles POST /api/v1/drivers - dispatch enrolls a driver.
func (s *Server) RegisterDriver(ctx echo.Context, params servers.RegisterDriverParams) error {
	actor, err := actorFrom(params.XActorId, params.XActorRole)
	if err != nil {
		return writeError(ctx, err)
	}
	if !actor.IsDispatcher() {
		return writeErrorWith(ctx, http.StatusForbidden, "Only dispatch may enroll drivers")
	}

	var body servers.NewDriver
	if err = ctx.Bind(&body); err != nil {
		return writeErrorWith(ctx, http.StatusBadRequest, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromBytes(body.Id[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterDriverCommand(driverID, body.Name, body.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ListOrders handles GET /api/v1/orders - the dispatch board.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	actor, err := actorFrom(params.XActorId, params.XActorRole)
	if err != nil {
		return writeError(ctx, err)
	}
	if !actor.IsDispatcher() {
		return writeErrorWith(ctx, http.StatusForbidden, "Only dispatch may list all orders")
	}

	search := ""
	if params.Search != nil {
		search = *params.Search
	}

	var statusFilter *order.Status
	if params.Status != nil && *params.Status != "" {
		parsed, parseErr := order.StatusFromString(*params.Status)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		statusFilter = &parsed
	}

	page := 1
	if params.Page != nil {
		page = *params.Page
	}

	query, err := queries.NewListDispatchOrdersQuery(search, statusFilter, page)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.dispatchOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	orders := make([]servers.Order, 0, len(result.Orders))
	for _, view := range result.Orders {
		orders = append(orders, viewToAPI(view))
	}

	return ctx.JSON(http.StatusOK, servers.OrderPage{
		Orders:   orders,
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	})
}

// GetCustomerOrders handles GET /api/v1/customers/{customerId}/orders.
// A customer may read only their own orders; dispatch may read anyone's.
func (s *Server) GetCustomerOrders(
	ctx echo.Context,
	customerId openapi_types.UUID,
	params servers.GetCustomerOrdersParams,
) error {
	actor, err := actorFrom(params.XActorId, params.XActorRole)
	if err != nil {
		return writeError(ctx, err)
	}

	customerID, err := kernel.UUIDFromBytes(customerId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	if !actor.IsDispatcher() && !actor.ID().IsEqual(customerID) {
		return writeErrorWith(ctx, http.StatusForbidden, "Customers may read only their own orders")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.customerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	orders := make([]servers.Order, 0, len(views))
	for _, view := range views {
		orders = append(orders, viewToAPI(view))
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetDriverOrders handles GET /api/v1/drivers/{driverId}/orders.
// A driver may read only their own work pool; dispatch may read anyone's.
func (s *Server) GetDriverOrders(
	ctx echo.Context,
	driverId openapi_types.UUID,
	params servers.GetDriverOrdersParams,
) error {
	actor, err := actorFrom(params.XActorId, params.XActorRole)
	if err != nil {
		return writeError(ctx, err)
	}

	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	if !actor.IsDispatcher() && !actor.ID().IsEqual(driverID) {
		return writeErrorWith(ctx, http.StatusForbidden, "Drivers may read only their own work pool")
	}

	query, err := queries.NewGetDriverOrdersQuery(driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.driverOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	orders := make([]servers.Order, 0, len(views))
	for _, view := range views {
		orders = append(orders, viewToAPI(view))
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetDashboardStats handles GET /api/v1/dashboard/stats.
func (s *Server) GetDashboardStats(ctx echo.Context, params servers.GetDashboardStatsParams) error {
	actor, err := actorFrom(params.XActorId, params.XActorRole)
	if err != nil {
		return writeError(ctx, err)
	}
	if !actor.IsDispatcher() {
		return writeErrorWith(ctx, http.StatusForbidden, "Only dispatch may read the dashboard")
	}

	stats, err := s.dashboardHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	monthly := make([]servers.MonthlyCount, 0, len(stats.MonthlyOrders))
	for _, mc := range stats.MonthlyOrders {
		monthly = append(monthly, servers.MonthlyCount{Month: mc.Month, Count: mc.Count})
	}

	return ctx.JSON(http.StatusOK, servers.DashboardStats{
		TotalOrders:     stats.TotalOrders,
		TotalDeliveries: stats.TotalDeliveries,
		Revenue:         stats.Revenue,
		StockCount:      stats.StockCount,
		DriverCount:     stats.DriverCount,
		MonthlyOrders:   monthly,
		OrdersByStatus:  stats.OrdersByStatus,
	})
}

// WatchOrders handles GET /api/v1/orders/watch - the live order stream.
// The role claim picks the subscription scope: dispatch sees everything, a
// customer their own orders, a driver their work pool. The snapshot is
// flushed first, one event per order, then deltas as they happen. A consumer
// that falls behind receives a final lost event and must reconnect for a
// fresh snapshot.
func (s *Server) WatchOrders(ctx echo.Context, params servers.WatchOrdersParams) error {
	actor, err := actorFrom(params.XActorId, params.XActorRole)
	if err != nil {
		return writeError(ctx, err)
	}

	var predicate feed.Predicate
	switch {
	case actor.IsDispatcher():
		predicate = feed.AllOrders()
	case actor.IsDriver():
		predicate = feed.DriverOrders(actor.ID())
	default:
		predicate = feed.CustomerOrders(actor.ID())
	}

	sub, err := s.orderFeed.Subscribe(ctx.Request().Context(), predicate)
	if err != nil {
		return writeError(ctx, err)
	}
	defer sub.Unsubscribe()

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)

	for _, o := range sub.Snapshot() {
		if err = writeEvent(resp, "snapshot", orderToAPI(o)); err != nil {
			return nil
		}
	}
	resp.Flush()

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case delta, ok := <-sub.Deltas():
			if !ok {
				if errors.Is(sub.Err(), feed.ErrSubscriptionLost) {
					_ = writeEvent(resp, "lost", nil)
					resp.Flush()
				}
				return nil
			}
			if err = writeEvent(resp, delta.Kind.String(), orderToAPI(delta.Order)); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}

func writeEvent(resp *echo.Response, event string, payload any) error {
	data := []byte("{}")
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		data = encoded
	}

	_, err := fmt.Fprintf(resp, "event: %s\ndata: %s\n\n", event, data)
	return err
}
