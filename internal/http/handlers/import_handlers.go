package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	models "github.com/rogerio-castellano/cart-tracker/internal/models"
	repo "github.com/rogerio-castellano/cart-tracker/internal/repo"
)

type csvRow struct {
	Code        int
	Description string
	Stock       int
	UnitPrice   float64
}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"code", "description", "stock", "unit_price"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", required)
		}
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvRow{
			Code:        parseInt(record[index["code"]]),
			Description: record[index["description"]],
			Stock:       parseInt(record[index["stock"]]),
			UnitPrice:   parseFloat(record[index["unit_price"]]),
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if r.Code <= 0 {
		return errors.New("invalid code")
	}
	if strings.TrimSpace(r.Description) == "" {
		return errors.New("missing description")
	}
	if r.Stock < 0 {
		return errors.New("invalid stock")
	}
	if r.UnitPrice < 0 {
		return errors.New("invalid unit price")
	}
	return nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description CSV columns: code, description, stock, unit_price. Duplicate codes are skipped or updated per mode.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {object} ErrorResponse
// @Router /products/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = "skip"
	}
	if mode != "skip" && mode != "update" {
		writeError(w, http.StatusBadRequest, "mode must be skip or update")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing CSV file")
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := ImportProductsResult{Errors: []ImportRowError{}}
	for i, row := range rows {
		line := i + 2 // header is line 1
		if err := validateRow(row); err != nil {
			result.Errors = append(result.Errors, ImportRowError{Line: line, Error: err.Error()})
			continue
		}

		product := models.Product{
			Code:        row.Code,
			Description: row.Description,
			Stock:       row.Stock,
			UnitPrice:   row.UnitPrice,
		}
		_, err := productRepo.Create(product)
		if errors.Is(err, repo.ErrProductExists) {
			if mode == "skip" {
				result.Errors = append(result.Errors, ImportRowError{Line: line, Error: "product code already exists"})
				continue
			}
			if _, err := productRepo.Update(product); err != nil {
				result.Errors = append(result.Errors, ImportRowError{Line: line, Error: "could not update product"})
				continue
			}
		} else if err != nil {
			result.Errors = append(result.Errors, ImportRowError{Line: line, Error: "could not create product"})
			continue
		}
		result.ImportedProductsCount++
	}

	_ = writeJSON(w, http.StatusOK, result)
}
