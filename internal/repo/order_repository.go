package repo

import "github.com/muhammaduss/Warehold/internal/models"

// LineRequest is a single requested line of an order placement: a product
// title and the quantity to order.
type LineRequest struct {
	Title string
	Count int
}

// OrderRepository defines the interface for order data operations.
//
// Place runs the whole placement atomically: every line is validated against
// current stock and either all stock decrements, the order header and all
// line items are persisted together, or nothing is. On failure it returns
// *MissingProductError or *InsufficientStockError for the first offending
// line, in request order.
type OrderRepository interface {
	Place(lines []LineRequest) (models.Order, []models.OrderItem, error)
	GetAll() ([]models.Order, error)
	GetByID(id int) (models.Order, error)
	UpdateStatus(id int, status string) (models.Order, error)
	ItemsByOrderID(orderID int) ([]models.OrderItem, error)
}
