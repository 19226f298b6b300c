package order

import "github.com/shopspring/decimal"

const dateLayout = "2006-01-02"

// AssembleDetail builds the nested detail view for one order and computes
// its derived totals. All arithmetic is decimal; nothing is converted to
// float at any point. An order with no lines and no payments yields zero
// totals and empty slices, never nulls.
func AssembleDetail(o Order, items []LineItem, payments []Payment) Detail {
	d := Detail{
		OrderID:     o.OrderID,
		OrderDate:   o.OrderDate.Format(dateLayout),
		OrderStatus: o.OrderStatus,
		CreatedAt:   o.CreatedAt,
		Items:       make([]ItemView, 0, len(items)),
		Payments:    make([]PaymentView, 0, len(payments)),
	}

	subtotal := decimal.Zero
	for _, it := range items {
		d.Items = append(d.Items, ItemView{
			ID:           it.ID,
			ItemID:       it.ItemID,
			ItemName:     it.ItemName,
			CategoryName: it.CategoryName,
			MenuName:     it.MenuName,
			Size:         it.Size,
			Price:        it.Price,
			Quantity:     it.Quantity,
			Total:        it.Total,
		})
		subtotal = subtotal.Add(it.Total)
	}

	paid := decimal.Zero
	for _, p := range payments {
		d.Payments = append(d.Payments, PaymentView{
			PaymentID:     p.PaymentID,
			PaymentDate:   p.PaymentDate.Format(dateLayout),
			AmountDue:     p.AmountDue,
			Tips:          p.Tips,
			Discount:      p.Discount,
			TotalPaid:     p.TotalPaid,
			PaymentType:   p.PaymentType,
			PaymentStatus: p.PaymentStatus,
		})
		// Pending and Refunded payments are listed but never counted
		if p.PaymentStatus == StatusCompleted {
			paid = paid.Add(p.TotalPaid)
		}
	}

	d.TotalItemsCount = len(d.Items)
	d.OrderSubtotal = subtotal
	d.TotalPaid = paid
	d.PaymentBalance = subtotal.Sub(paid) // signed, negative = overpaid
	return d
}
