package handlers

import (
	"github.com/muhammaduss/Warehold/internal/orders"
	"github.com/muhammaduss/Warehold/internal/redissvc"
	repo "github.com/muhammaduss/Warehold/internal/repo"
)

var (
	productRepo  repo.ProductRepository
	movementRepo repo.MovementRepository
	metricsRepo  repo.MetricsRepository
	userRepo     repo.UserRepository

	orderEngine *orders.Engine

	// viewCache is optional; nil means no Redis-backed caching.
	viewCache *redissvc.RedisService
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetOrderEngine(e *orders.Engine) {
	orderEngine = e
}

func SetRedisService(rs *redissvc.RedisService) {
	viewCache = rs
}
