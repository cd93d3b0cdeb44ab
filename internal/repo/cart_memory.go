package repo

import (
	"errors"
	"log"
	"sync"

	"github.com/rogerio-castellano/cart-tracker/internal/models"
)

// InMemoryCartRepository is an in-memory implementation of CartRepository.
// A single mutex serializes AddItem/RemoveItem so the stock check and
// the stock adjustment behave as one atomic step, mirroring the
// transaction in the Postgres implementation.
type InMemoryCartRepository struct {
	mu        sync.Mutex
	lines     []models.CartLine
	nextID    int
	products  ProductRepository
	movements MovementRepository
}

// NewInMemoryCartRepository creates a new instance of InMemoryCartRepository.
func NewInMemoryCartRepository(products ProductRepository, movements MovementRepository) *InMemoryCartRepository {
	return &InMemoryCartRepository{nextID: 1, products: products, movements: movements}
}

func (r *InMemoryCartRepository) AddItem(code, quantity int) (models.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.products.GetByCode(code)
	if err != nil {
		return models.CartLine{}, err
	}
	if quantity <= 0 {
		return models.CartLine{}, ErrInvalidQuantity
	}
	if p.Stock < quantity {
		return models.CartLine{}, ErrInsufficientStock
	}

	var line models.CartLine
	merged := false
	for i := range r.lines {
		if r.lines[i].Code == code {
			r.lines[i].Quantity += quantity
			line = r.lines[i]
			merged = true
			break
		}
	}
	if !merged {
		line = models.CartLine{
			ID:          r.nextID,
			Code:        p.Code,
			Description: p.Description,
			Quantity:    quantity,
			UnitPrice:   p.UnitPrice,
		}
		r.nextID++
		r.lines = append(r.lines, line)
	}

	p.Stock -= quantity
	if _, err := r.products.Update(p); err != nil {
		return models.CartLine{}, err
	}
	_ = r.movements.Log(code, -quantity, models.ReasonCartAdd)
	return line, nil
}

func (r *InMemoryCartRepository) GetAll() ([]models.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.CartLine, len(r.lines))
	copy(out, r.lines)
	return out, nil
}

func (r *InMemoryCartRepository) RemoveItem(id int) (models.CartLine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.lines {
		if r.lines[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return models.CartLine{}, ErrCartItemNotFound
	}

	line := r.lines[idx]
	r.lines = append(r.lines[:idx], r.lines[idx+1:]...)

	p, err := r.products.GetByCode(line.Code)
	if errors.Is(err, ErrProductNotFound) {
		log.Printf("cart item %d removed but product %d no longer exists; stock not restored", line.ID, line.Code)
		return line, nil
	}
	if err != nil {
		return models.CartLine{}, err
	}

	p.Stock += line.Quantity
	if _, err := r.products.Update(p); err != nil {
		return models.CartLine{}, err
	}
	_ = r.movements.Log(line.Code, line.Quantity, models.ReasonCartRemove)
	return line, nil
}

// Clear removes all cart lines. Used by tests.
func (r *InMemoryCartRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
	r.nextID = 1
}
