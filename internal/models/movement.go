package models

// Movement is one audit entry per stock change.
type Movement struct {
	ID        int    `json:"id"`
	Code      int    `json:"code"`
	Delta     int    `json:"delta"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"created_at"`
}

// Movement reasons.
const (
	ReasonCartAdd      = "cart_add"
	ReasonCartRemove   = "cart_remove"
	ReasonManualUpdate = "manual_update"
)
