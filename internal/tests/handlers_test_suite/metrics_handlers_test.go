package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/rogerio-castellano/cart-tracker/internal/http"
	"github.com/rogerio-castellano/cart-tracker/internal/repo"
)

func TestGetDashboardMetricsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	createProduct(r, 1, "Widget", 10, 2.5)
	createProduct(r, 2, "Gadget", 3, 10.0)
	addToCart(r, 1, 4)
	addToCart(r, 2, 3) // drains Gadget to zero

	w := doJSON(r, http.MethodGet, "/metrics/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var m repo.Metrics
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("error decoding metrics: %v", err)
	}

	if m.TotalProducts != 2 {
		t.Errorf("expected 2 products, got %d", m.TotalProducts)
	}
	if m.TotalStock != 6 {
		t.Errorf("expected total stock 6, got %d", m.TotalStock)
	}
	if m.OutOfStockCount != 1 {
		t.Errorf("expected 1 out-of-stock product, got %d", m.OutOfStockCount)
	}
	if m.CartLines != 2 {
		t.Errorf("expected 2 cart lines, got %d", m.CartLines)
	}
	if m.CartUnits != 7 {
		t.Errorf("expected 7 cart units, got %d", m.CartUnits)
	}
	if want := 4*2.5 + 3*10.0; m.CartValue != want {
		t.Errorf("expected cart value %.2f, got %.2f", want, m.CartValue)
	}
}
