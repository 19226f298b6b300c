package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money fields serialize as quoted decimal strings (NUMERIC -> string)
// so no precision is lost on the wire; dates serialize as YYYY-MM-DD.

// Summary is one row of the orders list view.
// swagger:model OrderSummary
type Summary struct {
	OrderID     int    `json:"order_id" example:"42"`
	OrderDate   string `json:"order_date" example:"2024-05-01"`
	OrderStatus string `json:"order_status" example:"Pending"`
	TotalItems  int    `json:"total_items" example:"3"`
	// Sum of the order's line item totals
	OrderTotal decimal.Decimal `json:"order_total" example:"25.50"`
	// Sum of completed payments only
	TotalPayments decimal.Decimal `json:"total_payments" example:"20.00"`
	// OrderTotal minus TotalPayments; negative means overpaid
	PaymentBalance decimal.Decimal `json:"payment_balance" example:"5.50"`
}

// ItemView is a line item on a detail response.
// swagger:model OrderItemView
type ItemView struct {
	ID           int             `json:"id"`
	ItemID       int             `json:"item_id"`
	ItemName     string          `json:"item_name" example:"Latte"`
	CategoryName string          `json:"category_name" example:"Hot Drinks"`
	MenuName     string          `json:"menu_name" example:"Drinks"`
	Size         *string         `json:"size" example:"Large"`
	Price        decimal.Decimal `json:"price" example:"4.50"`
	Quantity     int             `json:"quantity" example:"2"`
	Total        decimal.Decimal `json:"total" example:"9.00"`
}

// PaymentView is a payment on a detail response, all fields verbatim.
// swagger:model PaymentView
type PaymentView struct {
	PaymentID     int             `json:"payment_id"`
	PaymentDate   string          `json:"payment_date" example:"2024-05-01"`
	AmountDue     decimal.Decimal `json:"amount_due" example:"25.50"`
	Tips          decimal.Decimal `json:"tips" example:"2.00"`
	Discount      decimal.Decimal `json:"discount" example:"0.00"`
	TotalPaid     decimal.Decimal `json:"total_paid" example:"27.50"`
	PaymentType   string          `json:"payment_type" example:"Card"`
	PaymentStatus string          `json:"payment_status" example:"Completed"`
}

// Detail is the full order view: header, line items, payments and the
// derived totals. Items and Payments are always present, never null.
// swagger:model OrderDetail
type Detail struct {
	OrderID     int           `json:"order_id"`
	OrderDate   string        `json:"order_date" example:"2024-05-01"`
	OrderStatus string        `json:"order_status" example:"Completed"`
	CreatedAt   time.Time     `json:"created_at"`
	Items       []ItemView    `json:"items"`
	Payments    []PaymentView `json:"payments"`

	TotalItemsCount int             `json:"total_items_count"`
	OrderSubtotal   decimal.Decimal `json:"order_subtotal" example:"25.50"`
	TotalPaid       decimal.Decimal `json:"total_paid" example:"20.00"`
	PaymentBalance  decimal.Decimal `json:"payment_balance" example:"5.50"`
}

// Stats are the dataset-wide sums behind /api/statistics/overview.
// Kept decimal here; the handler converts to float64 only when it
// builds the response envelope.
type Stats struct {
	TotalOrders           int
	TotalRevenue          decimal.Decimal
	TotalPaymentsReceived decimal.Decimal
}
