package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON error body returned by every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the request body for placing an order. Prices are
// intentionally absent; the server resolves them from the catalog.
type CreateOrderRequest struct {
	CustomerName  string                   `json:"customer_name"`
	CustomerPhone string                   `json:"customer_phone,omitempty"`
	CustomerEmail string                   `json:"customer_email,omitempty"`
	TableNumber   *int                     `json:"table_number,omitempty"`
	Items         []CreateOrderItemRequest `json:"items"`
	Notes         string                   `json:"notes,omitempty"`
}

// CreateOrderItemRequest is one cart entry in an order request.
type CreateOrderItemRequest struct {
	MenuItemID          string `json:"menu_item_id"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
}

// ChangeOrderStatusRequest is the request body for a status transition.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatusResponse acknowledges a completed status transition.
type ChangeOrderStatusResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CreateOrderResponse acknowledges a placed order with its server-assigned
// identity, computed total, and initial status.
type CreateOrderResponse struct {
	ID          string          `json:"id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// OrderLineResponse is one line of a full order view.
type OrderLineResponse struct {
	ID                  string          `json:"id"`
	MenuItemID          string          `json:"menu_item_id"`
	Name                string          `json:"name"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	PreparationTime     int             `json:"preparation_time"`
}

// OrderResponse is the full order view returned by the single-order endpoint.
type OrderResponse struct {
	ID            string              `json:"id"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone,omitempty"`
	CustomerEmail string              `json:"customer_email,omitempty"`
	TableNumber   *int                `json:"table_number,omitempty"`
	Status        string              `json:"status"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	Notes         string              `json:"notes,omitempty"`
	Items         []OrderLineResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	TableNumber  *int            `json:"table_number,omitempty"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ItemCount    int             `json:"item_count"`
	CreatedAt    time.Time       `json:"created_at"`
}

// DailyStatsResponse summarizes one day of order activity. Revenue and the
// average cover delivered orders only; the average is null when nothing was
// delivered that day.
type DailyStatsResponse struct {
	Date              string           `json:"date"`
	TotalOrders       int              `json:"total_orders"`
	PendingOrders     int              `json:"pending_orders"`
	ConfirmedOrders   int              `json:"confirmed_orders"`
	PreparingOrders   int              `json:"preparing_orders"`
	ReadyOrders       int              `json:"ready_orders"`
	DeliveredOrders   int              `json:"delivered_orders"`
	CancelledOrders   int              `json:"cancelled_orders"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	AverageOrderValue *decimal.Decimal `json:"average_order_value"`
}

// CreateMenuItemRequest is the request body for adding a catalog item.
type CreateMenuItemRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	CategoryID      *string         `json:"category_id,omitempty"`
	ImageURL        string          `json:"image_url,omitempty"`
	PreparationTime int             `json:"preparation_time,omitempty"`
	Ingredients     string          `json:"ingredients,omitempty"`
	Allergens       string          `json:"allergens,omitempty"`
}

// UpdateMenuItemRequest is the request body for a partial catalog item
// update. Absent fields keep their current values.
type UpdateMenuItemRequest struct {
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	CategoryID      *string          `json:"category_id,omitempty"`
	ImageURL        *string          `json:"image_url,omitempty"`
	PreparationTime *int             `json:"preparation_time,omitempty"`
	Ingredients     *string          `json:"ingredients,omitempty"`
	Allergens       *string          `json:"allergens,omitempty"`
}

// SetAvailabilityRequest is the request body for the availability toggle.
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available"`
}

// MenuItemResponse is one catalog item in the menu listing.
type MenuItemResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	CategoryID      *string         `json:"category_id,omitempty"`
	CategoryName    string          `json:"category_name,omitempty"`
	ImageURL        string          `json:"image_url,omitempty"`
	IsAvailable     bool            `json:"is_available"`
	PreparationTime int             `json:"preparation_time"`
	Ingredients     string          `json:"ingredients,omitempty"`
	Allergens       string          `json:"allergens,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateCategoryRequest is the request body for adding a category.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryResponse is one category in the category listing.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

func orderResponseFromQuery(resp queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderLineResponse, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		items = append(items, OrderLineResponse{
			ID:                  line.ID.String(),
			MenuItemID:          line.MenuItemID.String(),
			Name:                line.Name,
			Quantity:            line.Quantity,
			UnitPrice:           line.UnitPrice,
			Subtotal:            line.Subtotal,
			SpecialInstructions: line.SpecialInstructions,
			PreparationTime:     line.PreparationTime,
		})
	}

	return OrderResponse{
		ID:            resp.ID.String(),
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		CustomerEmail: resp.CustomerEmail,
		TableNumber:   resp.TableNumber,
		Status:        resp.Status,
		TotalAmount:   resp.TotalAmount,
		Notes:         resp.Notes,
		Items:         items,
		CreatedAt:     resp.CreatedAt,
		UpdatedAt:     resp.UpdatedAt,
	}
}
