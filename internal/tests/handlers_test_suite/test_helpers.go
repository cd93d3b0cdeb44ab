package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	handler "github.com/rogerio-castellano/cart-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/cart-tracker/internal/repo"
)

var (
	productRepo  *repo.InMemoryProductRepository
	cartRepo     *repo.InMemoryCartRepository
	movementRepo *repo.InMemoryMovementRepository
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	movementRepo = repo.NewInMemoryMovementRepository()
	handler.SetMovementRepo(movementRepo)

	cartRepo = repo.NewInMemoryCartRepository(productRepo, movementRepo)
	handler.SetCartRepo(cartRepo)

	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(productRepo, cartRepo)
	handler.SetMetricsRepo(metricsRepo)
}

func clearAll() {
	productRepo.Clear()
	cartRepo.Clear()
	movementRepo.Clear()
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, code int, description string, stock int, unitPrice float64) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", map[string]any{
		"code":        code,
		"description": description,
		"stock":       stock,
		"unit_price":  unitPrice,
	})
}

func addToCart(r http.Handler, code, quantity int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/cart", map[string]any{
		"code":     code,
		"quantity": quantity,
	})
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodGet, path, nil)
}
