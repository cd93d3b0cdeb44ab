package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/cart-tracker/internal/http"
	handler "github.com/rogerio-castellano/cart-tracker/internal/http/handlers"
)

func importCSV(t *testing.T, r http.Handler, path, csvContent string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "products.csv")
	if err != nil {
		t.Fatalf("error creating form file: %v", err)
	}
	if _, err := part.Write([]byte(csvContent)); err != nil {
		t.Fatalf("error writing csv: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportProductsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	csvContent := "code,description,stock,unit_price\n" +
		"1,Widget,10,2.5\n" +
		"2,Gadget,5,9.99\n" +
		"0,Broken,-1,1.0\n"

	w := importCSV(t, r, "/products/import", csvContent)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding result: %v", err)
	}
	if result.ImportedProductsCount != 2 {
		t.Errorf("expected 2 imported, got %d", result.ImportedProductsCount)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 row error, got %d", len(result.Errors))
	}
	if result.Errors[0].Line != 4 {
		t.Errorf("expected error on line 4, got line %d", result.Errors[0].Line)
	}
}

func TestImportProductsHandler_DuplicateModes(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()
	createProduct(r, 1, "Widget", 10, 2.5)

	csvContent := "code,description,stock,unit_price\n1,Widget v2,20,3.0\n"

	// skip mode: duplicate reported, product untouched
	w := importCSV(t, r, "/products/import?mode=skip", csvContent)
	var result handler.ImportProductsResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding result: %v", err)
	}
	if result.ImportedProductsCount != 0 || len(result.Errors) != 1 {
		t.Errorf("expected skip to reject the duplicate, got %+v", result)
	}
	if p, _ := productRepo.GetByCode(1); p.Stock != 10 {
		t.Errorf("skip mode must not touch the product, stock = %d", p.Stock)
	}

	// update mode: duplicate overwritten
	w = importCSV(t, r, "/products/import?mode=update", csvContent)
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding result: %v", err)
	}
	if result.ImportedProductsCount != 1 {
		t.Errorf("expected update to import the duplicate, got %+v", result)
	}
	if p, _ := productRepo.GetByCode(1); p.Stock != 20 || p.Description != "Widget v2" {
		t.Errorf("expected product overwritten, got %+v", p)
	}
}

func TestImportProductsHandler_InvalidMode(t *testing.T) {
	t.Cleanup(clearAll)
	r := api.NewRouter()

	w := importCSV(t, r, "/products/import?mode=merge", "code,description,stock,unit_price\n")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid mode, got %d", w.Code)
	}
}
