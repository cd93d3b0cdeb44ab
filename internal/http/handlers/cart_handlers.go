package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/cart-tracker/internal/http/alert"
	models "github.com/rogerio-castellano/cart-tracker/internal/models"
	repo "github.com/rogerio-castellano/cart-tracker/internal/repo"
)

// AddCartItemHandler godoc
// @Summary Add a product to the cart
// @Description Merges the quantity into the existing cart line for the code and decrements stock atomically
// @Tags cart
// @Accept json
// @Produce json
// @Param item body CartItemRequest true "Product code and quantity"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart [post]
func AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if msg := validateCartItem(req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	code, quantity := *req.Code, *req.Quantity
	if _, err := cartRepo.AddItem(code, quantity); err != nil {
		switch {
		case errors.Is(err, repo.ErrProductNotFound):
			writeError(w, http.StatusNotFound, "product not found")
		case errors.Is(err, repo.ErrInvalidQuantity):
			writeError(w, http.StatusBadRequest, "quantity must be greater than zero")
		case errors.Is(err, repo.ErrInsufficientStock):
			alert.RecordInsufficientStock(code, quantity)
			writeError(w, http.StatusBadRequest, "insufficient stock available")
		default:
			log.Printf("failed to add product %d to cart: %v", code, err)
			writeError(w, http.StatusInternalServerError, "could not add product to cart")
		}
		return
	}

	if p, err := productRepo.GetByCode(code); err == nil && p.Stock == 0 {
		alert.RecordStockDepleted(code)
	}

	writeMessage(w, http.StatusCreated, "product added to cart")
}

// GetCartHandler godoc
// @Summary List the cart
// @Tags cart
// @Produce json
// @Success 200 {array} models.CartLine
// @Failure 500 {object} ErrorResponse
// @Router /cart [get]
func GetCartHandler(w http.ResponseWriter, r *http.Request) {
	lines, err := cartRepo.GetAll()
	if err != nil {
		log.Printf("failed to list cart: %v", err)
		writeError(w, http.StatusInternalServerError, "could not fetch cart")
		return
	}
	if lines == nil {
		lines = []models.CartLine{}
	}
	_ = writeJSON(w, http.StatusOK, lines)
}

// RemoveCartItemHandler godoc
// @Summary Remove a cart line
// @Description Deletes the line and restores the product stock; restoration is skipped if the product is gone
// @Tags cart
// @Param id path int true "Cart line ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/{id} [delete]
func RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart item ID")
		return
	}

	if _, err := cartRepo.RemoveItem(id); err != nil {
		if errors.Is(err, repo.ErrCartItemNotFound) {
			writeError(w, http.StatusNotFound, "product not found in cart")
			return
		}
		log.Printf("failed to remove cart item %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "could not remove product from cart")
		return
	}
	writeMessage(w, http.StatusOK, "product removed from cart")
}
