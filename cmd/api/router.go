package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-orders-api/internal/catalog"
	"restaurant-orders-api/internal/httpx"
	"restaurant-orders-api/internal/order"
)

type routerDeps struct {
	orders         order.Repository
	menu           catalog.Repository
	ping           pingFunc
	allowedOrigins []string
}

func newRouter(d routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(httpx.Recovery(), httpx.RequestID(), httpx.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.allowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/", rootHandler())
	r.GET("/health", healthHandler(d.ping))

	api := r.Group("/api")
	api.GET("/orders", ordersSummaryHandler(d.orders))
	api.GET("/orders/:order_id", orderDetailHandler(d.orders))
	api.GET("/orders/complete/all", allOrdersHandler(d.orders))
	api.GET("/statistics/overview", statisticsHandler(d.orders))
	api.GET("/menu", menuHandler(d.menu))

	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/redoc", redocHandler())

	return r
}

// redocHandler serves a minimal ReDoc page over the same OpenAPI document
// gin-swagger exposes at /docs/doc.json.
func redocHandler() gin.HandlerFunc {
	const page = `<!DOCTYPE html>
<html>
  <head>
    <title>Restaurant Order Management API - ReDoc</title>
    <meta charset="utf-8"/>
  </head>
  <body>
    <redoc spec-url="/docs/doc.json"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
  </body>
</html>`
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	}
}
