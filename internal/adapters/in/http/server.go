// Package http exposes the application's use cases over a JSON REST API.
// Handlers translate between wire DTOs and commands/queries; all business
// rules stay in the application and domain layers.
package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	createMenuItemHandler    commands.CreateMenuItemCommandHandler
	updateMenuItemHandler    commands.UpdateMenuItemCommandHandler
	setAvailabilityHandler   commands.SetMenuItemAvailabilityCommandHandler
	createCategoryHandler    commands.CreateCategoryCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	listOrdersHandler     queries.ListOrdersQueryHandler
	getDailyStatsHandler  queries.GetDailyStatsQueryHandler
	listMenuItemsHandler  queries.ListMenuItemsQueryHandler
	listCategoriesHandler queries.ListCategoriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	createMenuItemHandler commands.CreateMenuItemCommandHandler,
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler,
	setAvailabilityHandler commands.SetMenuItemAvailabilityCommandHandler,
	createCategoryHandler commands.CreateCategoryCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getDailyStatsHandler queries.GetDailyStatsQueryHandler,
	listMenuItemsHandler queries.ListMenuItemsQueryHandler,
	listCategoriesHandler queries.ListCategoriesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		createMenuItemHandler:    createMenuItemHandler,
		updateMenuItemHandler:    updateMenuItemHandler,
		setAvailabilityHandler:   setAvailabilityHandler,
		createCategoryHandler:    createCategoryHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		getDailyStatsHandler:     getDailyStatsHandler,
		listMenuItemsHandler:     listMenuItemsHandler,
		listCategoriesHandler:    listCategoriesHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/stats/summary", s.GetDailyStats)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)

	api.GET("/menu", s.ListMenuItems)
	api.POST("/menu", s.CreateMenuItem)
	api.PUT("/menu/:id", s.UpdateMenuItem)
	api.PATCH("/menu/:id/availability", s.SetMenuItemAvailability)

	api.GET("/categories", s.ListCategories)
	api.POST("/categories", s.CreateCategory)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	customer, err := order.NewCustomer(req.CustomerName, req.CustomerPhone, req.CustomerEmail, req.TableNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]services.LineRequest, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		items = append(items, services.LineRequest{
			MenuItemID:          menuItemID,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customer, items, req.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:          created.ID().String(),
		Status:      created.Status().String(),
		TotalAmount: created.TotalAmount(),
		CreatedAt:   created.CreatedAt(),
	})
}

// GetOrder handles GET /api/orders/:id - retrieves one order with its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromQuery(resp))
}

// ListOrders handles GET /api/orders - lists recent orders, newest first.
// Supports ?status= and ?limit= query parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("limit", err))
		}
		limit = parsed
	}

	query, err := queries.NewListOrdersQuery(statusFilter, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, OrderSummaryResponse{
			ID:           o.ID.String(),
			CustomerName: o.CustomerName,
			TableNumber:  o.TableNumber,
			Status:       o.Status,
			TotalAmount:  o.TotalAmount,
			ItemCount:    o.ItemCount,
			CreatedAt:    o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status - moves an order
// through the fulfillment state machine.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ChangeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ChangeOrderStatusResponse{
		ID:      orderID.String(),
		Status:  target.String(),
		Message: fmt.Sprintf("Order status updated to %s", target.String()),
	})
}

// GetDailyStats handles GET /api/orders/stats/summary - aggregates one day
// of order activity. Supports ?date=YYYY-MM-DD, defaulting to today (UTC).
func (s *Server) GetDailyStats(ctx echo.Context) error {
	date := time.Now().UTC()
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("date", err))
		}
		date = parsed
	}

	query, err := queries.NewGetDailyStatsQuery(date)
	if err != nil {
		return respondError(ctx, err)
	}

	stats, err := s.getDailyStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DailyStatsResponse{
		Date:              stats.Date.Format("2006-01-02"),
		TotalOrders:       stats.TotalOrders,
		PendingOrders:     stats.PendingOrders,
		ConfirmedOrders:   stats.ConfirmedOrders,
		PreparingOrders:   stats.PreparingOrders,
		ReadyOrders:       stats.ReadyOrders,
		DeliveredOrders:   stats.DeliveredOrders,
		CancelledOrders:   stats.CancelledOrders,
		TotalRevenue:      stats.TotalRevenue,
		AverageOrderValue: stats.AverageOrderValue,
	})
}

// CreateMenuItem handles POST /api/menu - adds a catalog item.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req CreateMenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		return respondError(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(
		itemID, req.Name, req.Description, req.Price, categoryID,
		req.ImageURL, req.PreparationTime, req.Ingredients, req.Allergens,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": itemID.String()})
}

// UpdateMenuItem handles PUT /api/menu/:id - partially updates a catalog
// item; absent fields keep their current values.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateMenuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		itemID, req.Name, req.Description, req.Price, categoryID,
		req.ImageURL, req.PreparationTime, req.Ingredients, req.Allergens,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetMenuItemAvailability handles PATCH /api/menu/:id/availability - puts a
// catalog item on or off sale.
func (s *Server) SetMenuItemAvailability(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SetAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	if req.IsAvailable == nil {
		return respondError(ctx, errs.NewValueIsRequiredError("is_available"))
	}

	cmd, err := commands.NewSetMenuItemAvailabilityCommand(itemID, *req.IsAvailable)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListMenuItems handles GET /api/menu - lists catalog items.
// Supports ?category_id= and ?available=true query parameters.
func (s *Server) ListMenuItems(ctx echo.Context) error {
	var categoryID *kernel.UUID
	if raw := ctx.QueryParam("category_id"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		categoryID = &id
	}

	availableOnly := ctx.QueryParam("available") == "true"

	query, err := queries.NewListMenuItemsQuery(categoryID, availableOnly)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.listMenuItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		var catID *string
		if item.CategoryID != nil {
			formatted := item.CategoryID.String()
			catID = &formatted
		}

		response = append(response, MenuItemResponse{
			ID:              item.ID.String(),
			Name:            item.Name,
			Description:     item.Description,
			Price:           item.Price,
			CategoryID:      catID,
			CategoryName:    item.CategoryName,
			ImageURL:        item.ImageURL,
			IsAvailable:     item.IsAvailable,
			PreparationTime: item.PreparationTime,
			Ingredients:     item.Ingredients,
			Allergens:       item.Allergens,
			CreatedAt:       item.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/categories - adds a category.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var req CreateCategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	categoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(categoryID, req.Name, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createCategoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": categoryID.String()})
}

// ListCategories handles GET /api/categories - lists categories with item counts.
func (s *Server) ListCategories(ctx echo.Context) error {
	query := queries.NewListCategoriesQuery()

	categories, err := s.listCategoriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, CategoryResponse{
			ID:          category.ID.String(),
			Name:        category.Name,
			Description: category.Description,
			ItemCount:   category.ItemCount,
			CreatedAt:   category.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func parseOptionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
