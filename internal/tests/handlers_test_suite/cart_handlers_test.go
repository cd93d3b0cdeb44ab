package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	api "github.com/rogerio-castellano/cart-tracker/internal/http"
	"github.com/rogerio-castellano/cart-tracker/internal/models"
)

func cartLines(t *testing.T, r http.Handler) []models.CartLine {
	t.Helper()
	w := doJSON(r, http.MethodGet, "/cart", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK listing cart, got %d", w.Code)
	}
	var lines []models.CartLine
	if err := json.NewDecoder(w.Body).Decode(&lines); err != nil {
		t.Fatalf("error decoding cart: %v", err)
	}
	return lines
}

func productStock(t *testing.T, code int) int {
	t.Helper()
	p, err := productRepo.GetByCode(code)
	if err != nil {
		t.Fatalf("product %d not found: %v", code, err)
	}
	return p.Stock
}

// Full walkthrough: add reserves stock, an oversized add is rejected,
// removal restores the original stock.
func TestCartFlow_AddRejectRemove(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	if w := createProduct(r, 1, "Widget", 10, 2.5); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating product, got %d", w.Code)
	}

	if w := addToCart(r, 1, 4); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 adding to cart, got %d", w.Code)
	}
	if got := productStock(t, 1); got != 6 {
		t.Errorf("expected stock 6 after add, got %d", got)
	}
	lines := cartLines(t, r)
	if len(lines) != 1 || lines[0].Quantity != 4 {
		t.Fatalf("expected one line with quantity 4, got %+v", lines)
	}

	if w := addToCart(r, 1, 100); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for oversized add, got %d", w.Code)
	}
	if got := productStock(t, 1); got != 6 {
		t.Errorf("stock must be untouched by a rejected add, got %d", got)
	}

	w := doJSON(r, http.MethodDelete, "/cart/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 removing cart line, got %d", w.Code)
	}
	if got := productStock(t, 1); got != 10 {
		t.Errorf("expected stock restored to 10, got %d", got)
	}
	if lines := cartLines(t, r); len(lines) != 0 {
		t.Errorf("expected empty cart, got %+v", lines)
	}
}

func TestAddCartItem_MergesLines(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	createProduct(r, 7, "Widget", 10, 2.5)

	addToCart(r, 7, 3)
	addToCart(r, 7, 2)

	lines := cartLines(t, r)
	if len(lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Errorf("expected merged quantity 5, got %d", lines[0].Quantity)
	}
	if got := productStock(t, 7); got != 5 {
		t.Errorf("expected stock 5, got %d", got)
	}
}

func TestAddCartItem_SnapshotNotRefreshed(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	createProduct(r, 7, "Widget", 10, 2.5)
	addToCart(r, 7, 1)

	// Change description and price, then merge another unit.
	doJSON(r, http.MethodPut, "/products/7", map[string]any{
		"description": "Widget v2",
		"stock":       9,
		"unit_price":  99.0,
	})
	addToCart(r, 7, 1)

	lines := cartLines(t, r)
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Description != "Widget" || lines[0].UnitPrice != 2.5 {
		t.Errorf("snapshot must not be refreshed on merge, got %+v", lines[0])
	}
}

func TestAddCartItem_Validation(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	createProduct(r, 1, "Widget", 10, 2.5)

	tests := []struct {
		name       string
		payload    map[string]any
		expectCode int
	}{
		{"missing code", map[string]any{"quantity": 1}, http.StatusBadRequest},
		{"missing quantity", map[string]any{"code": 1}, http.StatusBadRequest},
		{"zero quantity", map[string]any{"code": 1, "quantity": 0}, http.StatusBadRequest},
		{"negative quantity", map[string]any{"code": 1, "quantity": -3}, http.StatusBadRequest},
		{"unknown product", map[string]any{"code": 999, "quantity": 1}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/cart", tt.payload)
			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d", tt.expectCode, w.Code)
			}
		})
	}
}

func TestRemoveCartItem_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	if w := doJSON(r, http.MethodDelete, "/cart/42", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestRemoveCartItem_OrphanedLine(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	createProduct(r, 1, "Widget", 10, 2.5)
	addToCart(r, 1, 4)

	// Delete the product while its line sits in the cart.
	if w := doJSON(r, http.MethodDelete, "/products/1", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 deleting product, got %d", w.Code)
	}

	// Removal still succeeds; restoration is skipped.
	if w := doJSON(r, http.MethodDelete, "/cart/1", nil); w.Code != http.StatusOK {
		t.Errorf("expected 200 removing orphaned line, got %d", w.Code)
	}
	if lines := cartLines(t, r); len(lines) != 0 {
		t.Errorf("expected empty cart, got %+v", lines)
	}
}

// Stock conservation: stock plus cart quantity stays equal to the
// starting stock across a sequence of adds and removals.
func TestCart_StockConservation(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	createProduct(r, 1, "Widget", 10, 2.5)

	addToCart(r, 1, 2)
	addToCart(r, 1, 3)

	lines := cartLines(t, r)
	total := productStock(t, 1)
	for _, l := range lines {
		total += l.Quantity
	}
	if total != 10 {
		t.Errorf("stock conservation violated: stock + cart = %d, want 10", total)
	}

	doJSON(r, http.MethodDelete, "/cart/1", nil)
	if got := productStock(t, 1); got != 10 {
		t.Errorf("expected stock 10 after removal, got %d", got)
	}
}

// Concurrent adds for the same product must never overdraw stock.
func TestAddCartItem_ConcurrentAddsNoNegativeStock(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	createProduct(r, 1, "Widget", 10, 2.5)

	const workers = 25
	var wg sync.WaitGroup
	results := make(chan int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := addToCart(r, 1, 1)
			results <- w.Code
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for code := range results {
		if code == http.StatusCreated {
			succeeded++
		}
	}
	if succeeded != 10 {
		t.Errorf("expected exactly 10 successful adds, got %d", succeeded)
	}
	if got := productStock(t, 1); got != 0 {
		t.Errorf("expected stock 0, got %d", got)
	}
	lines := cartLines(t, r)
	if len(lines) != 1 || lines[0].Quantity != 10 {
		t.Errorf("expected one line with quantity 10, got %+v", lines)
	}
}
