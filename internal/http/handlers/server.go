package handlers

import (
	repo "github.com/rogerio-castellano/cart-tracker/internal/repo"
)

var (
	productRepo  repo.ProductRepository
	cartRepo     repo.CartRepository
	movementRepo repo.MovementRepository
	metricsRepo  repo.MetricsRepository
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetCartRepo(r repo.CartRepository) {
	cartRepo = r
}

func SetMovementRepo(r repo.MovementRepository) {
	movementRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}
