package models

// Order is the order header, exclusive of its line items.
// Status is free text; placement sets it to "in progress".
type Order struct {
	ID        int    `json:"id"`
	CreatedAt string `json:"created_at"`
	Status    string `json:"status"`
}

// OrderItem links an order to a product with the quantity ordered.
// Title is a snapshot of the product title taken at placement time,
// so order views survive later product deletion.
type OrderItem struct {
	ID        int    `json:"id"`
	OrderID   int    `json:"order_id"`
	ProductID int    `json:"product_id"`
	Title     string `json:"title"`
	Count     int    `json:"count"`
}
