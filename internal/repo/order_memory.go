package repo

import (
	"time"

	"github.com/muhammaduss/Warehold/internal/models"
)

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
// It consults an InMemoryProductRepository for titles and stock.
type InMemoryOrderRepository struct {
	products   *InMemoryProductRepository
	orders     []models.Order
	items      []models.OrderItem
	nextID     int
	nextItemID int
}

// NewInMemoryOrderRepository creates a new instance of InMemoryOrderRepository
// backed by the given product repository.
func NewInMemoryOrderRepository(products *InMemoryProductRepository) *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		products:   products,
		orders:     []models.Order{},
		items:      []models.OrderItem{},
		nextID:     1,
		nextItemID: 1,
	}
}

// Place validates every line before mutating anything, so a rejected request
// leaves no header, no items and no stock changes behind.
func (r *InMemoryOrderRepository) Place(lines []LineRequest) (models.Order, []models.OrderItem, error) {
	// lines may repeat a title, so each check runs against the stock left
	// after the earlier lines of the same request
	requested := make(map[string]int)
	for _, line := range lines {
		p, err := r.products.GetByTitle(line.Title)
		if err != nil {
			return models.Order{}, nil, &MissingProductError{Title: line.Title}
		}
		remaining := p.Count - requested[line.Title]
		if remaining < line.Count {
			return models.Order{}, nil, &InsufficientStockError{
				Title:     line.Title,
				Requested: line.Count,
				Available: remaining,
			}
		}
		requested[line.Title] += line.Count
	}

	order := models.Order{
		ID:        r.nextID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Status:    "in progress",
	}
	r.nextID++
	r.orders = append(r.orders, order)

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		p, _ := r.products.GetByTitle(line.Title)
		if _, err := r.products.AdjustCount(p.ID, -line.Count); err != nil {
			return models.Order{}, nil, err
		}
		item := models.OrderItem{
			ID:        r.nextItemID,
			OrderID:   order.ID,
			ProductID: p.ID,
			Title:     line.Title,
			Count:     line.Count,
		}
		r.nextItemID++
		r.items = append(r.items, item)
		items = append(items, item)
	}

	return order, items, nil
}

// GetAll retrieves all orders ordered by id.
func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	return r.orders, nil
}

// GetByID retrieves an order header by its ID.
func (r *InMemoryOrderRepository) GetByID(id int) (models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// UpdateStatus replaces the status of an existing order.
func (r *InMemoryOrderRepository) UpdateStatus(id int, status string) (models.Order, error) {
	for i, o := range r.orders {
		if o.ID == id {
			o.Status = status
			r.orders[i] = o
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// ItemsByOrderID returns the line items of an order in insertion order.
func (r *InMemoryOrderRepository) ItemsByOrderID(orderID int) ([]models.OrderItem, error) {
	var items []models.OrderItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *InMemoryOrderRepository) Clear() {
	r.orders = []models.Order{}
	r.items = []models.OrderItem{}
}
