package models

// Movement is a single audit record of a stock change: a signed delta applied
// to a product's count, either by order placement or by a manual adjustment.
type Movement struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}
