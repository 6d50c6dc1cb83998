// Package http exposes the back office over a JSON API. Handlers
// translate requests into commands and queries; all business rules stay in
// the application and domain layers.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/session"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/usecases/commands"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/usecases/queries"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/catalog"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/order"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/staff"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/ports"
	"github.com/Amman-Khan-17/Paperless-profits/internal/export"
	"github.com/Amman-Khan-17/Paperless-profits/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// userIDHeader carries the authenticated account identifier set by the
// auth layer in front of this service. Authentication itself is out of
// scope here; the header is trusted input.
const userIDHeader = "X-User-ID"

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	completeOrderHandler commands.CompleteOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler

	// Query handlers
	getOrdersHandler       queries.GetOrdersQueryHandler
	getOrderByIDHandler    queries.GetOrderByIDQueryHandler
	getCatalogHandler      queries.GetCatalogQueryHandler
	getCustomersHandler    queries.GetCustomersQueryHandler
	getOrdersExportHandler queries.GetOrdersExportQueryHandler

	// Repositories for request assembly
	catalogRepo ports.CatalogRepository
	profileRepo ports.ProfileRepository

	// Session registry backing the sign-in endpoints
	sessions *session.Registry
}

// NewServer creates a new HTTP server with the required command and query
// handlers. The catalog repository resolves order line references; the
// profile repository resolves the acting user's session.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
	getCustomersHandler queries.GetCustomersQueryHandler,
	getOrdersExportHandler queries.GetOrdersExportQueryHandler,
	catalogRepo ports.CatalogRepository,
	profileRepo ports.ProfileRepository,
	sessions *session.Registry,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		completeOrderHandler:   completeOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		deleteOrderHandler:     deleteOrderHandler,
		getOrdersHandler:       getOrdersHandler,
		getOrderByIDHandler:    getOrderByIDHandler,
		getCatalogHandler:      getCatalogHandler,
		getCustomersHandler:    getCustomersHandler,
		getOrdersExportHandler: getOrdersExportHandler,
		catalogRepo:            catalogRepo,
		profileRepo:            profileRepo,
		sessions:               sessions,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/export", s.ExportOrders)
	api.GET("/orders/:id", s.GetOrderByID)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.GET("/catalog/:kind", s.GetCatalog)
	api.GET("/customers", s.GetCustomers)
	api.GET("/session", s.GetSession)
	api.POST("/session", s.SignIn)
	api.DELETE("/session", s.SignOut)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func errJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// writeError maps application errors onto HTTP statuses. Store-level
// constraint violations get a stable user-facing message instead of raw
// driver text.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, staff.ErrForbidden),
		errors.Is(err, staff.ErrAccountInactive):
		return errJSON(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrInvalidTransition):
		return errJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrConstraintViolated):
		return errJSON(ctx, http.StatusConflict, "A referenced record is missing or still in use")
	case errors.Is(err, order.ErrCustomerRequired),
		errors.Is(err, order.ErrNoLineItems),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return errJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errJSON(ctx, http.StatusInternalServerError, "Internal error")
	}
}

// session resolves the acting staff member from the identity header.
func (s *Server) session(ctx echo.Context) (staff.Session, error) {
	raw := ctx.Request().Header.Get(userIDHeader)
	if raw == "" {
		return staff.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing "+userIDHeader+" header")
	}

	accountID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return staff.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid "+userIDHeader+" header")
	}

	profile, err := s.profileRepo.Get(ctx.Request().Context(), accountID)
	if err != nil {
		return staff.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "unknown account")
	}

	session, err := staff.NewSession(profile)
	if err != nil {
		return staff.Session{}, echo.NewHTTPError(http.StatusForbidden, "account is inactive")
	}

	return session, nil
}

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	SalesmanName string    `json:"salesman_name"`
	OrderDate    time.Time `json:"order_date"`
	Status       string    `json:"status"`
	Total        string    `json:"total"`
}

// GetOrders handles GET /api/v1/orders - retrieves all orders, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			SalesmanName: o.SalesmanName,
			OrderDate:    o.OrderDate,
			Status:       o.Status,
			Total:        o.Total.StringFixed(2),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OrderItem is one line of an order detail response.
type OrderItem struct {
	ProductID string `json:"product_id"`
	ItemType  string `json:"item_type"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	Subtotal  string `json:"subtotal"`
}

// OrderDetail is the full order detail response.
type OrderDetail struct {
	OrderSummary
	Items []OrderItem `json:"items"`
}

// GetOrderByID handles GET /api/v1/orders/:id - retrieves one order with
// its line items.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	items := make([]OrderItem, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = OrderItem{
			ProductID: item.ProductID.String(),
			ItemType:  item.ItemType,
			Name:      item.Name,
			Price:     item.Price.StringFixed(2),
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal.StringFixed(2),
		}
	}

	return ctx.JSON(http.StatusOK, OrderDetail{
		OrderSummary: OrderSummary{
			ID:           detail.ID.String(),
			CustomerName: detail.CustomerName,
			SalesmanName: detail.SalesmanName,
			OrderDate:    detail.OrderDate,
			Status:       detail.Status,
			Total:        detail.Total.StringFixed(2),
		},
		Items: items,
	})
}

// NewOrderLine is one requested line in an order creation payload.
type NewOrderLine struct {
	ProductID string `json:"product_id"`
	Kind      string `json:"kind"`
	Quantity  int    `json:"quantity"`
}

// NewOrder is the order creation payload: a customer and at least one line.
type NewOrder struct {
	CustomerID string         `json:"customer_id"`
	Lines      []NewOrderLine `json:"lines"`
}

// CreateOrder handles POST /api/v1/orders - builds a draft from the
// payload and persists it as a pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return err
	}

	var payload NewOrder
	if err = ctx.Bind(&payload); err != nil {
		return errJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	builder := order.NewBuilder()

	if payload.CustomerID != "" {
		customerID, idErr := kernel.UUIDFromString(payload.CustomerID)
		if idErr != nil {
			return errJSON(ctx, http.StatusBadRequest, "invalid customer id")
		}
		if err = builder.SelectCustomer(customerID); err != nil {
			return writeError(ctx, err)
		}
	}

	for _, line := range payload.Lines {
		kind, kindErr := catalog.KindFromString(line.Kind)
		if kindErr != nil {
			return writeError(ctx, kindErr)
		}

		productID, idErr := kernel.UUIDFromString(line.ProductID)
		if idErr != nil {
			return errJSON(ctx, http.StatusBadRequest, "invalid product id")
		}

		item, itemErr := s.catalogRepo.Get(ctx.Request().Context(), kind, productID)
		if itemErr != nil {
			return writeError(ctx, itemErr)
		}

		if err = builder.AddLine(item, line.Quantity); err != nil {
			return writeError(ctx, err)
		}
	}

	draft, err := builder.Submit()
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, draft, session)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderSummaryOf(created))
}

// orderSummaryOf renders a command result, so callers can patch the row
// into a displayed list without refetching.
func orderSummaryOf(o *order.Order) OrderSummary {
	return OrderSummary{
		ID:           o.ID().String(),
		CustomerName: o.CustomerName(),
		SalesmanName: o.SalesmanName(),
		OrderDate:    o.OrderDate(),
		Status:       o.Status().String(),
		Total:        o.Total().StringFixed(2),
	}
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, session)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummaryOf(updated))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, session)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderSummaryOf(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - owner only.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	session, err := s.session(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errJSON(ctx, http.StatusBadRequest, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, session)
	if err != nil {
		return writeError(ctx, err)
	}

	removedID, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"id": removedID.String()})
}

// CatalogItem is one sellable item in a catalog response.
type CatalogItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Stock int    `json:"stock"`
}

// GetCatalog handles GET /api/v1/catalog/:kind - lists one catalog.
func (s *Server) GetCatalog(ctx echo.Context) error {
	kind, err := catalog.KindFromString(ctx.Param("kind"))
	if err != nil {
		return errJSON(ctx, http.StatusBadRequest, "unknown catalog kind")
	}

	query, err := queries.NewGetCatalogQuery(kind)
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := s.getCatalogHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CatalogItem, len(items))
	for i, item := range items {
		response[i] = CatalogItem{
			ID:    item.ID.String(),
			Name:  item.Name,
			Price: item.Price.StringFixed(2),
			Stock: item.Stock,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Customer is one customer row in the listing response.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	customers, err := s.getCustomersHandler.Handle(ctx.Request().Context(), queries.NewGetCustomersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Customer, len(customers))
	for i, c := range customers {
		response[i] = Customer{
			ID:    c.ID.String(),
			Name:  c.Name,
			Email: c.Email,
			Phone: c.Phone,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ExportOrders handles GET /api/v1/orders/export - streams the order list
// as a CSV download with a dated filename.
func (s *Server) ExportOrders(ctx echo.Context) error {
	rows, err := s.getOrdersExportHandler.Handle(ctx.Request().Context(), queries.NewGetOrdersExportQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	filename := export.Filename(time.Now())
	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv")
	ctx.Response().WriteHeader(http.StatusOK)

	return export.OrdersCSV(ctx.Response(), rows)
}

// SessionInfo describes the currently signed-in staff member.
type SessionInfo struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SignInRequest is the sign-in payload.
type SignInRequest struct {
	AccountID string `json:"account_id"`
}

// GetSession handles GET /api/v1/session - returns the active session.
func (s *Server) GetSession(ctx echo.Context) error {
	current, ok := s.sessions.Current()
	if !ok {
		return errJSON(ctx, http.StatusNotFound, "no active session")
	}

	return ctx.JSON(http.StatusOK, SessionInfo{
		UserID:   current.UserID().String(),
		Username: current.Username(),
		Role:     current.Role().String(),
	})
}

// SignIn handles POST /api/v1/session - establishes the active session
// for the given staff account.
func (s *Server) SignIn(ctx echo.Context) error {
	var payload SignInRequest
	if err := ctx.Bind(&payload); err != nil {
		return errJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	accountID, err := kernel.UUIDFromString(payload.AccountID)
	if err != nil {
		return errJSON(ctx, http.StatusBadRequest, "invalid account id")
	}

	session, err := s.sessions.SignIn(ctx.Request().Context(), accountID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SessionInfo{
		UserID:   session.UserID().String(),
		Username: session.Username(),
		Role:     session.Role().String(),
	})
}

// SignOut handles DELETE /api/v1/session.
func (s *Server) SignOut(ctx echo.Context) error {
	s.sessions.SignOut()
	return ctx.NoContent(http.StatusNoContent)
}
