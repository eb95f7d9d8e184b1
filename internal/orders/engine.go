// Package orders holds the order placement engine and the order view
// assembler. Placement itself is atomic: the order store either commits the
// header, every line item and every stock decrement together, or nothing at
// all. The engine maps store-level failures to the two business-rule
// rejections (missing product title, insufficient stock) and keeps the
// movement audit log up to date.
package orders

import (
	"log"

	"github.com/muhammaduss/Warehold/internal/repo"
)

// Engine orchestrates order placement and view assembly across the product
// and order stores.
type Engine struct {
	products  repo.ProductRepository
	orders    repo.OrderRepository
	movements repo.MovementRepository
}

// NewEngine creates an Engine. The movement repository may be nil, in which
// case stock changes are not audited.
func NewEngine(products repo.ProductRepository, orders repo.OrderRepository, movements repo.MovementRepository) *Engine {
	return &Engine{products: products, orders: orders, movements: movements}
}

// Place runs an order placement for the requested lines, in request order.
// On success it returns the fully assembled order view. On failure it
// returns *repo.MissingProductError or *repo.InsufficientStockError for the
// first offending line; no stock is changed and no order is recorded.
func (e *Engine) Place(lines []repo.LineRequest) (OrderView, error) {
	order, items, err := e.orders.Place(lines)
	if err != nil {
		return OrderView{}, err
	}

	for _, item := range items {
		if e.movements == nil {
			continue
		}
		if err := e.movements.Log(item.ProductID, -item.Count); err != nil {
			log.Printf("failed to log movement for product %d: %v", item.ProductID, err)
		}
	}

	return assembleView(order, items), nil
}
