package repo

import (
	"sync"

	"github.com/rogerio-castellano/cart-tracker/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: []models.Product{}}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Code == product.Code {
			return models.Product{}, ErrProductExists
		}
	}
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByCode retrieves a product by its code.
func (r *InMemoryProductRepository) GetByCode(code int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.Code == product.Code {
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its code.
func (r *InMemoryProductRepository) Delete(code int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.Code == code {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Clear removes all products. Used by tests.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = []models.Product{}
}
