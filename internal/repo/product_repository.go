package repo

import "github.com/rogerio-castellano/cart-tracker/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByCode(code int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(code int) error
}
