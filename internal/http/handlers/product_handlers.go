package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	models "github.com/rogerio-castellano/cart-tracker/internal/models"
	repo "github.com/rogerio-castellano/cart-tracker/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog under a caller-assigned code
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if msg := validateProduct(req, true); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	product := models.Product{
		Code:        *req.Code,
		Description: *req.Description,
		Stock:       *req.Stock,
		UnitPrice:   *req.UnitPrice,
	}
	if _, err := productRepo.Create(product); err != nil {
		if errors.Is(err, repo.ErrProductExists) {
			writeError(w, http.StatusConflict, "product code already exists")
			return
		}
		log.Printf("failed to create product %d: %v", product.Code, err)
		writeError(w, http.StatusInternalServerError, "could not create product")
		return
	}

	writeMessage(w, http.StatusCreated, "product created")
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} ErrorResponse
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		log.Printf("failed to list products: %v", err)
		writeError(w, http.StatusInternalServerError, "could not fetch products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	_ = writeJSON(w, http.StatusOK, products)
}

// GetProductByCodeHandler godoc
// @Summary Get product by code
// @Tags products
// @Produce json
// @Param code path int true "Product code"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{code} [get]
func GetProductByCodeHandler(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product code")
		return
	}

	product, err := productRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("failed to fetch product %d: %v", code, err)
		writeError(w, http.StatusInternalServerError, "could not fetch product")
		return
	}
	_ = writeJSON(w, http.StatusOK, product)
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Overwrites description, stock and unit price; the code is immutable
// @Tags products
// @Accept json
// @Produce json
// @Param code path int true "Product code"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{code} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product code")
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if msg := validateProduct(req, false); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	current, err := productRepo.GetByCode(code)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("failed to fetch product %d: %v", code, err)
		writeError(w, http.StatusInternalServerError, "could not update product")
		return
	}

	product := models.Product{
		Code:        code,
		Description: *req.Description,
		Stock:       *req.Stock,
		UnitPrice:   *req.UnitPrice,
	}
	if _, err := productRepo.Update(product); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("failed to update product %d: %v", code, err)
		writeError(w, http.StatusInternalServerError, "could not update product")
		return
	}

	if delta := product.Stock - current.Stock; delta != 0 {
		if err := movementRepo.Log(code, delta, models.ReasonManualUpdate); err != nil {
			log.Printf("failed to log movement for product %d: %v", code, err)
		}
	}

	writeMessage(w, http.StatusOK, "product updated")
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Deletes the product unconditionally, even while cart lines reference it
// @Tags products
// @Param code path int true "Product code"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{code} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product code")
		return
	}

	if err := productRepo.Delete(code); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("failed to delete product %d: %v", code, err)
		writeError(w, http.StatusInternalServerError, "could not delete product")
		return
	}
	writeMessage(w, http.StatusOK, "product deleted")
}

// GetMovementsHandler godoc
// @Summary Get stock movements for a product
// @Tags movements
// @Produce json
// @Param code path int true "Product code"
// @Success 200 {array} models.Movement
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{code}/movements [get]
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	code, err := strconv.Atoi(chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product code")
		return
	}

	if _, err := productRepo.GetByCode(code); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		log.Printf("failed to fetch product %d: %v", code, err)
		writeError(w, http.StatusInternalServerError, "could not fetch movements")
		return
	}

	movements, err := movementRepo.GetByCode(code)
	if err != nil {
		log.Printf("failed to fetch movements for product %d: %v", code, err)
		writeError(w, http.StatusInternalServerError, "could not fetch movements")
		return
	}
	if movements == nil {
		movements = []models.Movement{}
	}
	_ = writeJSON(w, http.StatusOK, movements)
}
