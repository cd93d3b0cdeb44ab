package repo

import "github.com/rogerio-castellano/cart-tracker/internal/models"

// CartRepository defines the interface for cart data operations.
//
// AddItem and RemoveItem adjust product stock together with the cart
// line; implementations must apply both changes atomically so that
// concurrent calls for the same product can never overdraw stock.
type CartRepository interface {
	// AddItem validates stock for the product, merges the quantity into
	// the existing cart line for the code (or inserts a new line with a
	// description/price snapshot) and decrements the product stock.
	AddItem(code, quantity int) (models.CartLine, error)
	GetAll() ([]models.CartLine, error)
	// RemoveItem deletes the cart line and restores the product stock.
	// Restoration is best-effort: if the product was deleted while in
	// the cart, the line is still removed and the skip is logged.
	RemoveItem(id int) (models.CartLine, error)
}
