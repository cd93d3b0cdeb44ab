package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/rogerio-castellano/cart-tracker/internal/config"
	"github.com/rogerio-castellano/cart-tracker/internal/db"
	router "github.com/rogerio-castellano/cart-tracker/internal/http"
	"github.com/rogerio-castellano/cart-tracker/internal/http/alert"
	"github.com/rogerio-castellano/cart-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/cart-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/cart-tracker/internal/redissvc"
	"github.com/rogerio-castellano/cart-tracker/internal/repo"
)

// @title Cart Tracker API
// @version 1.0
// @description REST API for managing a product catalog and a stock-consistent shopping cart.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Could not load configuration: %v", err)
	}

	rl.Configure(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	go rl.StartVisitorCleanupLoop()

	if cfg.RedisAddr != "" {
		redisService, err := redissvc.Connect(context.Background(), cfg.RedisAddr)
		if err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer redisService.Close()

		alert.SetRedisService(redisService)
		alert.SetSMTPSettings(alert.SMTPSettings{
			From:         cfg.AlertFrom,
			To:           cfg.AlertTo,
			Server:       cfg.SMTPServer,
			Port:         cfg.SMTPPort,
			User:         cfg.SMTPUser,
			Password:     cfg.SMTPPassword,
			AuthDisabled: cfg.SMTPAuthDisabled,
		})
		go alert.StartDailyStockSummary(24 * time.Hour)
	} else {
		log.Println("Redis not configured; stock alerting disabled")
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatal("❌ Could not create schema:", err)
	}

	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetCartRepo(repo.NewPostgresCartRepository(database))
	handlers.SetMovementRepo(repo.NewPostgresMovementRepository(database))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))

	r := router.NewRateLimitedRouter()
	log.Printf("✅ Server running on %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, r); err != nil {
		log.Fatal(err)
	}
}
