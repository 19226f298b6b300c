package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("order not found")
)

// Filter narrows the orders summary. Zero values mean no filtering.
// Date must already be validated as YYYY-MM-DD by the caller.
type Filter struct {
	Status string
	Date   string
}

type Repository interface {
	Summaries(ctx context.Context, f Filter) ([]Summary, error)
	GetDetail(ctx context.Context, id int) (*Detail, error)
	ListDetails(ctx context.Context) ([]Detail, error)
	Statistics(ctx context.Context) (*Stats, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// NUMERIC columns are selected ::text and parsed into decimals so no
// precision is lost between the database and the response.
func scanDec(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

func (r *PGRepo) Summaries(ctx context.Context, f Filter) ([]Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT o.order_id, o.order_date, o.order_status,
		       (SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.order_id),
		       COALESCE((SELECT SUM(oi.total) FROM order_items oi WHERE oi.order_id = o.order_id), 0)::text,
		       COALESCE((SELECT SUM(p.total_paid) FROM payments p
		                 WHERE p.order_id = o.order_id AND p.payment_status = 'Completed'), 0)::text
		FROM orders o
		WHERE ($1 = '' OR o.order_status = $1)
		  AND (NULLIF($2,'') IS NULL OR o.order_date = NULLIF($2,'')::date)
		ORDER BY o.order_date DESC, o.order_id DESC
	`, f.Status, f.Date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Summary, 0)
	for rows.Next() {
		var (
			s           Summary
			orderDate   time.Time
			totalTxt    string
			paymentsTxt string
		)
		if err := rows.Scan(&s.OrderID, &orderDate, &s.OrderStatus, &s.TotalItems, &totalTxt, &paymentsTxt); err != nil {
			return nil, err
		}
		s.OrderDate = orderDate.Format(dateLayout)
		if s.OrderTotal, err = scanDec(totalTxt); err != nil {
			return nil, err
		}
		if s.TotalPayments, err = scanDec(paymentsTxt); err != nil {
			return nil, err
		}
		s.PaymentBalance = s.OrderTotal.Sub(s.TotalPayments)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetDetail(ctx context.Context, id int) (*Detail, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	err := r.db.QueryRow(ctx, `
		SELECT order_id, order_date, order_status, created_at
		FROM orders WHERE order_id = $1
	`, id).Scan(&o.OrderID, &o.OrderDate, &o.OrderStatus, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.lineItems(ctx, &id)
	if err != nil {
		return nil, err
	}
	payments, err := r.payments(ctx, &id)
	if err != nil {
		return nil, err
	}

	d := AssembleDetail(o, items, payments)
	return &d, nil
}

// ListDetails loads every order with its lines and payments in three bulk
// queries and groups in memory, so the cost stays flat instead of one
// round trip per order. Unpaginated on purpose.
func (r *PGRepo) ListDetails(ctx context.Context) ([]Detail, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT order_id, order_date, order_status, created_at
		FROM orders
		ORDER BY order_date DESC, order_id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.OrderID, &o.OrderDate, &o.OrderStatus, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	items, err := r.lineItems(ctx, nil)
	if err != nil {
		return nil, err
	}
	payments, err := r.payments(ctx, nil)
	if err != nil {
		return nil, err
	}

	itemsByOrder := make(map[int][]LineItem, len(orders))
	for _, it := range items {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], it)
	}
	paymentsByOrder := make(map[int][]Payment, len(orders))
	for _, p := range payments {
		paymentsByOrder[p.OrderID] = append(paymentsByOrder[p.OrderID], p)
	}

	out := make([]Detail, 0, len(orders))
	for _, o := range orders {
		out = append(out, AssembleDetail(o, itemsByOrder[o.OrderID], paymentsByOrder[o.OrderID]))
	}
	return out, nil
}

func (r *PGRepo) Statistics(ctx context.Context) (*Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		st          Stats
		revenueTxt  string
		paymentsTxt string
	)
	err := r.db.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM orders),
		       COALESCE((SELECT SUM(total) FROM order_items), 0)::text,
		       COALESCE((SELECT SUM(total_paid) FROM payments WHERE payment_status = 'Completed'), 0)::text
	`).Scan(&st.TotalOrders, &revenueTxt, &paymentsTxt)
	if err != nil {
		return nil, err
	}
	if st.TotalRevenue, err = scanDec(revenueTxt); err != nil {
		return nil, err
	}
	if st.TotalPaymentsReceived, err = scanDec(paymentsTxt); err != nil {
		return nil, err
	}
	return &st, nil
}

// lineItems fetches order lines joined to item, category and menu names.
// orderID nil means all orders (the bulk path).
func (r *PGRepo) lineItems(ctx context.Context, orderID *int) ([]LineItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.item_id, i.item_name, c.category_name, m.menu_name,
		       oi.size, oi.price::text, oi.quantity, oi.total::text
		FROM order_items oi
		JOIN items i ON i.item_id = oi.item_id
		JOIN categories c ON c.cat_id = i.cat_id
		JOIN menus m ON m.menu_id = i.menu_id
		WHERE ($1::int IS NULL OR oi.order_id = $1::int)
		ORDER BY oi.order_id, oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LineItem
	for rows.Next() {
		var (
			it       LineItem
			priceTxt string
			totalTxt string
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ItemID, &it.ItemName, &it.CategoryName,
			&it.MenuName, &it.Size, &priceTxt, &it.Quantity, &totalTxt); err != nil {
			return nil, err
		}
		if it.Price, err = scanDec(priceTxt); err != nil {
			return nil, err
		}
		if it.Total, err = scanDec(totalTxt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PGRepo) payments(ctx context.Context, orderID *int) ([]Payment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT payment_id, order_id, payment_date, amount_due::text, tips::text,
		       discount::text, total_paid::text, payment_type, payment_status
		FROM payments
		WHERE ($1::int IS NULL OR order_id = $1::int)
		ORDER BY order_id, payment_id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Payment
	for rows.Next() {
		var (
			p           Payment
			amountTxt   string
			tipsTxt     string
			discountTxt string
			paidTxt     string
		)
		if err := rows.Scan(&p.PaymentID, &p.OrderID, &p.PaymentDate, &amountTxt, &tipsTxt,
			&discountTxt, &paidTxt, &p.PaymentType, &p.PaymentStatus); err != nil {
			return nil, err
		}
		if p.AmountDue, err = scanDec(amountTxt); err != nil {
			return nil, err
		}
		if p.Tips, err = scanDec(tipsTxt); err != nil {
			return nil, err
		}
		if p.Discount, err = scanDec(discountTxt); err != nil {
			return nil, err
		}
		if p.TotalPaid, err = scanDec(paidTxt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
