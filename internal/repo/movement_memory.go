package repo

import (
	"sync"
	"time"

	"github.com/rogerio-castellano/cart-tracker/internal/models"
)

// InMemoryMovementRepository is an in-memory implementation of MovementRepository.
type InMemoryMovementRepository struct {
	mu        sync.Mutex
	movements []models.Movement
	nextID    int
}

// NewInMemoryMovementRepository creates a new instance of InMemoryMovementRepository.
func NewInMemoryMovementRepository() *InMemoryMovementRepository {
	return &InMemoryMovementRepository{nextID: 1}
}

func (r *InMemoryMovementRepository) Log(code, delta int, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, models.Movement{
		ID:        r.nextID,
		Code:      code,
		Delta:     delta,
		Reason:    reason,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	r.nextID++
	return nil
}

func (r *InMemoryMovementRepository) GetByCode(code int) ([]models.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Movement
	// Newest first, matching the Postgres ordering.
	for i := len(r.movements) - 1; i >= 0; i-- {
		if r.movements[i].Code == code {
			out = append(out, r.movements[i])
		}
	}
	return out, nil
}

// Clear removes all movements. Used by tests.
func (r *InMemoryMovementRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = nil
	r.nextID = 1
}
