package handlers

// ProductRequest carries the body of create/update product calls.
// Pointer fields distinguish a missing key from a zero value.
type ProductRequest struct {
	Code        *int     `json:"code,omitempty"`
	Description *string  `json:"description"`
	Stock       *int     `json:"stock"`
	UnitPrice   *float64 `json:"unit_price"`
}

// CartItemRequest carries the body of an add-to-cart call.
type CartItemRequest struct {
	Code     *int `json:"code"`
	Quantity *int `json:"quantity"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ImportRowError struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

type ImportProductsResult struct {
	ImportedProductsCount int              `json:"imported"`
	Errors                []ImportRowError `json:"errors"`
}
