package orders

import (
	"github.com/muhammaduss/Warehold/internal/models"
)

// OrderLine is one line of an assembled order view.
type OrderLine struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

// OrderView is the full view of an order: header fields plus its line items
// in insertion order. Line titles come from the snapshot stored on the item,
// so views stay valid after a referenced product is deleted.
type OrderView struct {
	ID        int         `json:"id"`
	CreatedAt string      `json:"created_at"`
	Status    string      `json:"status"`
	Products  []OrderLine `json:"products"`
}

// View assembles the view of a single order. Returns repo.ErrOrderNotFound
// if the order does not exist.
func (e *Engine) View(id int) (OrderView, error) {
	order, err := e.orders.GetByID(id)
	if err != nil {
		return OrderView{}, err
	}
	items, err := e.orders.ItemsByOrderID(order.ID)
	if err != nil {
		return OrderView{}, err
	}
	return assembleView(order, items), nil
}

// Views assembles the views of every order, ordered by order id ascending.
func (e *Engine) Views() ([]OrderView, error) {
	orders, err := e.orders.GetAll()
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		items, err := e.orders.ItemsByOrderID(order.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, assembleView(order, items))
	}
	return views, nil
}

// UpdateStatus replaces the status of an existing order. Any string is
// accepted; there is no enforced state machine.
func (e *Engine) UpdateStatus(id int, status string) (models.Order, error) {
	return e.orders.UpdateStatus(id, status)
}

func assembleView(order models.Order, items []models.OrderItem) OrderView {
	view := OrderView{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Status:    order.Status,
		Products:  make([]OrderLine, 0, len(items)),
	}
	for _, item := range items {
		view.Products = append(view.Products, OrderLine{Title: item.Title, Count: item.Count})
	}
	return view
}
