package models

// CartLine is one merged cart entry per product code. Description and
// unit price are snapshotted from the product when the line is first
// inserted and are not refreshed on later merges.
type CartLine struct {
	ID          int     `json:"id"`
	Code        int     `json:"code"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}
