package main

import (
	"context"
	"log"
	"net"

	"restaurant-orders-api/internal/catalog"
	"restaurant-orders-api/internal/config"
	"restaurant-orders-api/internal/db"
	"restaurant-orders-api/internal/order"

	_ "restaurant-orders-api/docs"
)

// @title        Restaurant Order Management API
// @version      1.0.0
// @description  Read-only REST API for restaurant orders, payments and menu items.
// @BasePath     /
func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("[db] invalid configuration: %v", err)
	}
	defer pool.Close()

	// a down database degrades /health, it does not block startup
	if err := db.Ping(ctx, pool); err != nil {
		log.Printf("[db] WARNING: database unreachable: %v", err)
	} else {
		log.Printf("[db] connection verified (%s/%s)", cfg.DBServer, cfg.DBName)
	}

	r := newRouter(routerDeps{
		orders:         order.NewPGRepo(pool),
		menu:           catalog.NewPGRepo(pool),
		ping:           func(ctx context.Context) error { return db.Ping(ctx, pool) },
		allowedOrigins: cfg.AllowedOrigins,
	})

	addr := net.JoinHostPort(cfg.APIHost, cfg.APIPort)
	log.Printf("[api] %s v%s listening on %s", apiName, apiVersion, addr)
	log.Fatal(r.Run(addr))
}
