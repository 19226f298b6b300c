package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusCompleted is the payment status that counts toward money collected.
const StatusCompleted = "Completed"

// Order is the order header row. All money lives on the line items and
// payments; the header only carries identity, date and status.
type Order struct {
	OrderID     int
	OrderDate   time.Time
	OrderStatus string
	CreatedAt   time.Time
}

// LineItem is an order line joined to its catalog names for display.
// Price is the unit price captured at order time (NUMERIC -> decimal),
// deliberately decoupled from the catalog's current prices.
type LineItem struct {
	ID           int
	OrderID      int
	ItemID       int
	ItemName     string
	CategoryName string
	MenuName     string
	Size         *string
	Price        decimal.Decimal
	Quantity     int
	Total        decimal.Decimal
}

// Payment is a payment row, emitted verbatim on detail responses.
type Payment struct {
	PaymentID     int
	OrderID       int
	PaymentDate   time.Time
	AmountDue     decimal.Decimal
	Tips          decimal.Decimal
	Discount      decimal.Decimal
	TotalPaid     decimal.Decimal
	PaymentType   string
	PaymentStatus string
}
