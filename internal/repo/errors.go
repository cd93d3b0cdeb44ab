package repo

import "errors"

var (
	// ErrProductNotFound is returned when no product exists for a code.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductExists is returned on a duplicate product code.
	ErrProductExists = errors.New("product code already exists")
	// ErrCartItemNotFound is returned when no cart line exists for an id.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrInsufficientStock is returned when a requested quantity exceeds
	// the available stock of the product.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantity is returned for a zero or negative quantity.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)
