package handlers

import "github.com/muhammaduss/Warehold/internal/orders"

type ProductRequest struct {
	Id          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Count       int    `json:"count"`
}

type ProductResponse struct {
	Id          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Count       int    `json:"count"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type OrderLineRequest struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// OrderViewResponse is the assembled order view returned by the order
// endpoints.
type OrderViewResponse = orders.OrderView

// MessageResponse carries the user-visible text of a business-rule failure
// (missing product title, insufficient stock) or a not-found order lookup.
type MessageResponse struct {
	Message string `json:"message"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	Id        int    `json:"id"`
	CreatedAt string `json:"created_at"`
	Status    string `json:"status"`
}

type CountAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type MovementResponse struct {
	ID        int    `json:"id"`
	ProductID int    `json:"product_id"`
	Delta     int    `json:"delta"`
	CreatedAt string `json:"created_at"`
}

type MovementsSearchResult struct {
	Data []MovementResponse `json:"data"`
	Meta Meta               `json:"meta,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
