package models

// Product represents a catalog entry in the store.
// Code is assigned by the caller and immutable once created.
type Product struct {
	Code        int     `json:"code"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	UnitPrice   float64 `json:"unit_price"`
}
