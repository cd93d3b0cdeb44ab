package repo

import "github.com/rogerio-castellano/cart-tracker/internal/models"

// MovementRepository defines the interface for the stock-change audit log.
type MovementRepository interface {
	Log(code, delta int, reason string) error
	GetByCode(code int) ([]models.Movement, error)
}
