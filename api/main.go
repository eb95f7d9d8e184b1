package main

import (
	"context"
	"log"
	"net/http"

	"github.com/muhammaduss/Warehold/internal/auth"
	"github.com/muhammaduss/Warehold/internal/config"
	"github.com/muhammaduss/Warehold/internal/db"
	api "github.com/muhammaduss/Warehold/internal/http"
	"github.com/muhammaduss/Warehold/internal/http/handlers"
	rl "github.com/muhammaduss/Warehold/internal/http/rate_limiter"
	"github.com/muhammaduss/Warehold/internal/orders"
	"github.com/muhammaduss/Warehold/internal/redissvc"
	"github.com/muhammaduss/Warehold/internal/repo"
	"github.com/redis/go-redis/v9"
)

// @title Warehold API
// @version 1.0
// @description REST API for managing warehouse products and customer orders.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	auth.SetSecret(cfg.JWTSecret)

	go rl.StartVisitorCleanupLoop()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("could not connect to database:", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatal("could not prepare schema:", err)
	}

	productRepo := repo.NewPostgresProductRepository(database)
	orderRepo := repo.NewPostgresOrderRepository(database)
	movementRepo := repo.NewPostgresMovementRepository(database)

	handlers.SetProductRepo(productRepo)
	handlers.SetMovementRepo(movementRepo)
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(database))
	handlers.SetOrderEngine(orders.NewEngine(productRepo, orderRepo, movementRepo))

	if cfg.RedisAddr != "" {
		ctx := context.Background()
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		handlers.SetRedisService(redissvc.NewRedisService(rdb, ctx))
	}

	r := api.NewRouter()
	log.Println("server running on", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, api.RateLimitMiddleware(r)); err != nil {
		log.Fatal(err)
	}
}
