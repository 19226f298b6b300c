package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"restaurant-orders-api/internal/catalog"
	ord "restaurant-orders-api/internal/order"
)

//
// ---------- STUBS & FAKES ----------
//

// stubOrderRepo implements ord.Repository in memory.
type stubOrderRepo struct {
	summaries []ord.Summary
	details   map[int]ord.Detail
	all       []ord.Detail
	stats     *ord.Stats
	err       error

	gotFilter ord.Filter
	gotID     int
}

func (s *stubOrderRepo) Summaries(ctx context.Context, f ord.Filter) ([]ord.Summary, error) {
	s.gotFilter = f
	if s.err != nil {
		return nil, s.err
	}
	return s.summaries, nil
}

func (s *stubOrderRepo) GetDetail(ctx context.Context, id int) (*ord.Detail, error) {
	s.gotID = id
	if s.err != nil {
		return nil, s.err
	}
	d, ok := s.details[id]
	if !ok {
		return nil, ord.ErrNotFound
	}
	return &d, nil
}

func (s *stubOrderRepo) ListDetails(ctx context.Context) ([]ord.Detail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.all, nil
}

func (s *stubOrderRepo) Statistics(ctx context.Context) (*ord.Stats, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.stats, nil
}

// stubMenuRepo implements catalog.Repository.
type stubMenuRepo struct {
	menus         []catalog.Menu
	err           error
	gotActiveOnly bool
}

func (s *stubMenuRepo) Browse(ctx context.Context, activeOnly bool) ([]catalog.Menu, error) {
	s.gotActiveOnly = activeOnly
	if s.err != nil {
		return nil, s.err
	}
	return s.menus, nil
}

func testRouter(orders *stubOrderRepo, menu *stubMenuRepo, pingErr error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if orders == nil {
		orders = &stubOrderRepo{}
	}
	if menu == nil {
		menu = &stubMenuRepo{}
	}
	return newRouter(routerDeps{
		orders:         orders,
		menu:           menu,
		ping:           func(ctx context.Context) error { return pingErr },
		allowedOrigins: []string{"http://localhost:3000"},
	})
}

func doGET(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func sampleDetail(id int) ord.Detail {
	return ord.AssembleDetail(
		ord.Order{
			OrderID:     id,
			OrderDate:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			OrderStatus: "Pending",
			CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		[]ord.LineItem{
			{ID: 1, OrderID: id, ItemID: 10, ItemName: "Burger", CategoryName: "Mains", MenuName: "Food",
				Price: decimal.RequireFromString("10.00"), Quantity: 2, Total: decimal.RequireFromString("20.00")},
		},
		[]ord.Payment{
			{PaymentID: 1, OrderID: id, PaymentDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
				AmountDue: decimal.RequireFromString("20.00"), Tips: decimal.Zero, Discount: decimal.Zero,
				TotalPaid: decimal.RequireFromString("15.00"), PaymentType: "Cash", PaymentStatus: "Completed"},
		},
	)
}

//
// ---------- TESTS ----------
//

func TestRoot(t *testing.T) {
	t.Parallel()

	w := doGET(t, testRouter(nil, nil, nil), "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, k := range []string{"name", "version", "status", "docs", "redoc"} {
		if body[k] == "" {
			t.Fatalf("missing %q in root descriptor: %v", k, body)
		}
	}
}

func TestHealthConnected(t *testing.T) {
	t.Parallel()

	w := doGET(t, testRouter(nil, nil, nil), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "healthy" || body["database"] != "connected" || body["api"] != "running" {
		t.Fatalf("body=%v", body)
	}
}

func TestHealthDegradedStill200(t *testing.T) {
	t.Parallel()

	w := doGET(t, testRouter(nil, nil, errors.New("connection refused")), "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health must not fail the HTTP call, status=%d", w.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != "unhealthy" || body["database"] != "disconnected" {
		t.Fatalf("body=%v", body)
	}
}

func TestOrdersSummary(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{summaries: []ord.Summary{
		{OrderID: 9, OrderDate: "2024-05-02", OrderStatus: "Completed", TotalItems: 1,
			OrderTotal: mustDec(t, "12.00"), TotalPayments: mustDec(t, "12.00"), PaymentBalance: mustDec(t, "0.00")},
		{OrderID: 8, OrderDate: "2024-05-01", OrderStatus: "Pending", TotalItems: 2,
			OrderTotal: mustDec(t, "25.50"), TotalPayments: mustDec(t, "20.00"), PaymentBalance: mustDec(t, "5.50")},
	}}
	w := doGET(t, testRouter(repo, nil, nil), "/api/orders?status=Completed&date=2024-05-02")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if repo.gotFilter.Status != "Completed" || repo.gotFilter.Date != "2024-05-02" {
		t.Fatalf("filter not forwarded: %+v", repo.gotFilter)
	}
	var got []ord.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].OrderID != 9 || got[1].OrderID != 8 {
		t.Fatalf("repository order not preserved: %+v", got)
	}
	if !got[1].PaymentBalance.Equal(mustDec(t, "5.50")) {
		t.Fatalf("balance=%s want 5.50", got[1].PaymentBalance)
	}
}

func TestOrdersSummaryRejectsBadDate(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{}
	w := doGET(t, testRouter(repo, nil, nil), "/api/orders?date=2024-13-99")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want 400", w.Code)
	}
	// validation must happen before any data-source access
	if repo.gotFilter.Date != "" {
		t.Fatalf("repository was called with invalid date")
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["success"] != false {
		t.Fatalf("error envelope missing success=false: %v", body)
	}
}

func TestOrdersSummaryRepoError(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{err: errors.New("boom")}
	w := doGET(t, testRouter(repo, nil, nil), "/api/orders")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d want 500", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["success"] != false || body["error"] == "" {
		t.Fatalf("uniform error body missing: %v", body)
	}
}

func TestOrderDetail(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{details: map[int]ord.Detail{7: sampleDetail(7)}}
	w := doGET(t, testRouter(repo, nil, nil), "/api/orders/7")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got ord.Detail
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.OrderID != 7 || got.TotalItemsCount != 1 {
		t.Fatalf("got %+v", got)
	}
	if !got.OrderSubtotal.Equal(mustDec(t, "20.00")) ||
		!got.TotalPaid.Equal(mustDec(t, "15.00")) ||
		!got.PaymentBalance.Equal(mustDec(t, "5.00")) {
		t.Fatalf("totals subtotal=%s paid=%s balance=%s", got.OrderSubtotal, got.TotalPaid, got.PaymentBalance)
	}
	if got.OrderDate != "2024-05-01" {
		t.Fatalf("order_date=%q", got.OrderDate)
	}
}

func TestOrderDetailNotFound(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{details: map[int]ord.Detail{}}
	w := doGET(t, testRouter(repo, nil, nil), "/api/orders/999999")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d want 404", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	msg, _ := body["error"].(string)
	if msg != fmt.Sprintf("Order %d not found", 999999) {
		t.Fatalf("message must echo the id, got %q", msg)
	}
}

func TestOrderDetailRejectsNonIntegerID(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{}
	w := doGET(t, testRouter(repo, nil, nil), "/api/orders/abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want 400", w.Code)
	}
	if repo.gotID != 0 {
		t.Fatalf("repository was called with invalid id")
	}
}

func TestAllOrdersComplete(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{all: []ord.Detail{sampleDetail(9), sampleDetail(8)}}
	w := doGET(t, testRouter(repo, nil, nil), "/api/orders/complete/all")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var got []ord.Detail
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].OrderID != 9 || got[1].OrderID != 8 {
		t.Fatalf("got %+v", got)
	}
	if got[0].Items == nil || got[0].Payments == nil {
		t.Fatalf("items/payments must never be null")
	}
}

func TestStatisticsOverview(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{stats: &ord.Stats{
		TotalOrders:           50,
		TotalRevenue:          mustDec(t, "1250.75"),
		TotalPaymentsReceived: mustDec(t, "1000.25"),
	}}
	w := doGET(t, testRouter(repo, nil, nil), "/api/statistics/overview")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			TotalOrders           int     `json:"total_orders"`
			TotalRevenue          float64 `json:"total_revenue"`
			TotalPaymentsReceived float64 `json:"total_payments_received"`
			OutstandingBalance    float64 `json:"outstanding_balance"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Data.TotalOrders != 50 {
		t.Fatalf("body=%+v", body)
	}
	if body.Data.TotalRevenue != 1250.75 || body.Data.TotalPaymentsReceived != 1000.25 {
		t.Fatalf("data=%+v", body.Data)
	}
	if body.Data.OutstandingBalance != 250.50 {
		t.Fatalf("outstanding=%v want 250.50 (revenue - payments)", body.Data.OutstandingBalance)
	}
}

func TestMenuActiveOnlyFlag(t *testing.T) {
	t.Parallel()

	repo := &stubMenuRepo{menus: []catalog.Menu{{MenuID: 1, MenuName: "Drinks", Categories: []catalog.Category{}}}}
	w := doGET(t, testRouter(nil, repo, nil), "/api/menu?active_only=true")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if !repo.gotActiveOnly {
		t.Fatalf("active_only flag not forwarded")
	}

	w = doGET(t, testRouter(nil, repo, nil), "/api/menu?active_only=maybe")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want 400 for non-boolean active_only", w.Code)
	}
}
