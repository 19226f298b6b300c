package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-orders-api/internal/catalog"
	"restaurant-orders-api/internal/httpx"
	"restaurant-orders-api/internal/order"
)

const (
	apiName    = "Restaurant Order Management API"
	apiVersion = "1.0.0"
)

// pingFunc probes the data source; injected so tests can fake outages.
type pingFunc func(ctx context.Context) error

// rootHandler godoc
// @Summary      API information
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       / [get]
func rootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    apiName,
			"version": apiVersion,
			"status":  "running",
			"docs":    "/docs/index.html",
			"redoc":   "/redoc",
		})
	}
}

// healthHandler godoc
// @Summary      Health check with database connectivity probe
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func healthHandler(ping pingFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, database := "healthy", "connected"
		if err := ping(c.Request.Context()); err != nil {
			// degraded, not a failed call: the probe result is the payload
			status, database = "unhealthy", "disconnected"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   status,
			"database": database,
			"api":      "running",
		})
	}
}

// ordersSummaryHandler godoc
// @Summary      List all orders with summary aggregates
// @Tags         Orders
// @Produce      json
// @Param        status query string false "Filter by order status (e.g. 'Completed')"
// @Param        date   query string false "Filter by order date (YYYY-MM-DD)"
// @Success      200 {array}  order.Summary
// @Failure      400 {object} httpx.ErrorResponse
// @Failure      500 {object} httpx.ErrorResponse
// @Router       /api/orders [get]
func ordersSummaryHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := order.Filter{Status: c.Query("status"), Date: c.Query("date")}
		if f.Date != "" {
			if _, err := time.Parse("2006-01-02", f.Date); err != nil {
				httpx.FailValidation(c, "date", "date must be YYYY-MM-DD")
				return
			}
		}
		summaries, err := repo.Summaries(c.Request.Context(), f)
		if err != nil {
			httpx.FailDB(c, "Error retrieving orders", err)
			return
		}
		c.JSON(http.StatusOK, summaries)
	}
}

// orderDetailHandler godoc
// @Summary      Get complete order details
// @Tags         Orders
// @Produce      json
// @Param        order_id path int true "Order ID"
// @Success      200 {object} order.Detail
// @Failure      400 {object} httpx.ErrorResponse
// @Failure      404 {object} httpx.ErrorResponse
// @Failure      500 {object} httpx.ErrorResponse
// @Router       /api/orders/{order_id} [get]
func orderDetailHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("order_id"))
		if err != nil {
			httpx.FailValidation(c, "order_id", "order_id must be an integer")
			return
		}
		detail, err := repo.GetDetail(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, order.ErrNotFound) {
				httpx.FailNotFound(c, id)
				return
			}
			httpx.FailDB(c, "Error retrieving order details", err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// allOrdersHandler godoc
// @Summary      Get all orders with complete details
// @Description  Full dataset with items, payments and computed balances. Unpaginated.
// @Tags         Orders
// @Produce      json
// @Success      200 {array}  order.Detail
// @Failure      500 {object} httpx.ErrorResponse
// @Router       /api/orders/complete/all [get]
func allOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		details, err := repo.ListDetails(c.Request.Context())
		if err != nil {
			httpx.FailDB(c, "Error retrieving complete order details", err)
			return
		}
		c.JSON(http.StatusOK, details)
	}
}

// statisticsHandler godoc
// @Summary      Business statistics overview
// @Tags         Statistics
// @Produce      json
// @Success      200 {object} map[string]any
// @Failure      500 {object} httpx.ErrorResponse
// @Router       /api/statistics/overview [get]
func statisticsHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := repo.Statistics(c.Request.Context())
		if err != nil {
			httpx.FailDB(c, "Error retrieving statistics", err)
			return
		}
		outstanding := st.TotalRevenue.Sub(st.TotalPaymentsReceived)
		// floats appear here and only here, at the serialization boundary
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"total_orders":            st.TotalOrders,
				"total_revenue":           st.TotalRevenue.InexactFloat64(),
				"total_payments_received": st.TotalPaymentsReceived.InexactFloat64(),
				"outstanding_balance":     outstanding.InexactFloat64(),
			},
		})
	}
}

// menuHandler godoc
// @Summary      Browse the menu hierarchy
// @Description  Menus with nested categories, items and price history.
// @Tags         Menu
// @Produce      json
// @Param        active_only query bool false "Only include active price rows"
// @Success      200 {array}  catalog.Menu
// @Failure      400 {object} httpx.ErrorResponse
// @Failure      500 {object} httpx.ErrorResponse
// @Router       /api/menu [get]
func menuHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := false
		if raw := c.Query("active_only"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				httpx.FailValidation(c, "active_only", "active_only must be a boolean")
				return
			}
			activeOnly = v
		}
		menus, err := repo.Browse(c.Request.Context(), activeOnly)
		if err != nil {
			httpx.FailDB(c, "Error retrieving menu", err)
			return
		}
		c.JSON(http.StatusOK, menus)
	}
}
