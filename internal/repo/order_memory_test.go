package repo

import (
	"errors"
	"testing"

	"github.com/muhammaduss/Warehold/internal/models"
)

func seedProducts(t *testing.T, products *InMemoryProductRepository, seeds ...models.Product) []models.Product {
	t.Helper()
	created := make([]models.Product, 0, len(seeds))
	for _, seed := range seeds {
		p, err := products.Create(seed)
		if err != nil {
			t.Fatalf("failed to seed product %q: %v", seed.Title, err)
		}
		created = append(created, p)
	}
	return created
}

func TestProductIdentityMonotonic(t *testing.T) {
	products := NewInMemoryProductRepository()

	a, _ := products.Create(models.Product{Title: "apples", Description: "fruit", Price: 40, Count: 10})
	b, _ := products.Create(models.Product{Title: "bananas", Description: "fruit", Price: 25, Count: 10})

	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", a.ID, b.ID)
	}

	// a deleted id is never reused
	if err := products.Delete(b.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	c, _ := products.Create(models.Product{Title: "cherries", Description: "fruit", Price: 90, Count: 5})
	if c.ID != 3 {
		t.Errorf("expected id 3 after deletion gap, got %d", c.ID)
	}
}

func TestPlace_StockConservation(t *testing.T) {
	products := NewInMemoryProductRepository()
	orders := NewInMemoryOrderRepository(products)
	seedProducts(t, products,
		models.Product{Title: "apples", Description: "fruit", Price: 40, Count: 34},
		models.Product{Title: "bananas", Description: "fruit", Price: 25, Count: 12},
	)

	order, items, err := orders.Place([]LineRequest{
		{Title: "apples", Count: 27},
		{Title: "bananas", Count: 2},
	})
	if err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	if order.Status != "in progress" {
		t.Errorf("expected status 'in progress', got %q", order.Status)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for i, item := range items {
		if item.OrderID != order.ID {
			t.Errorf("item %d not linked to order %d: %+v", i, order.ID, item)
		}
	}

	apples, _ := products.GetByTitle("apples")
	if apples.Count != 7 {
		t.Errorf("expected apples stock 7, got %d", apples.Count)
	}
	bananas, _ := products.GetByTitle("bananas")
	if bananas.Count != 10 {
		t.Errorf("expected bananas stock 10, got %d", bananas.Count)
	}
}

func TestPlace_MissingProduct(t *testing.T) {
	products := NewInMemoryProductRepository()
	orders := NewInMemoryOrderRepository(products)
	seedProducts(t, products, models.Product{Title: "apples", Description: "fruit", Price: 40, Count: 34})

	_, _, err := orders.Place([]LineRequest{
		{Title: "apples", Count: 1},
		{Title: "bananas", Count: 1},
	})
	if err == nil {
		t.Fatal("expected an error for the missing title")
	}
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}

	var missing *MissingProductError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingProductError, got %T", err)
	}
	if missing.Title != "bananas" {
		t.Errorf("expected offending title 'bananas', got %q", missing.Title)
	}

	// nothing committed: no stock change, no orders
	apples, _ := products.GetByTitle("apples")
	if apples.Count != 34 {
		t.Errorf("expected apples stock unchanged at 34, got %d", apples.Count)
	}
	all, _ := orders.GetAll()
	if len(all) != 0 {
		t.Errorf("expected no orders, got %d", len(all))
	}
}

func TestPlace_InsufficientStock(t *testing.T) {
	products := NewInMemoryProductRepository()
	orders := NewInMemoryOrderRepository(products)
	seedProducts(t, products,
		models.Product{Title: "apples", Description: "fruit", Price: 40, Count: 34},
		models.Product{Title: "bananas", Description: "fruit", Price: 25, Count: 3},
	)

	_, _, err := orders.Place([]LineRequest{
		{Title: "apples", Count: 10},
		{Title: "bananas", Count: 5},
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	var short *InsufficientStockError
	if !errors.As(err, &short) {
		t.Fatalf("expected *InsufficientStockError, got %T", err)
	}
	if short.Title != "bananas" || short.Requested != 5 || short.Available != 3 {
		t.Errorf("unexpected error detail: %+v", short)
	}

	// the earlier valid line left no trace either
	apples, _ := products.GetByTitle("apples")
	if apples.Count != 34 {
		t.Errorf("expected apples stock unchanged at 34, got %d", apples.Count)
	}
	if items, _ := orders.ItemsByOrderID(1); len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestPlace_DuplicateTitleLines(t *testing.T) {
	products := NewInMemoryProductRepository()
	orders := NewInMemoryOrderRepository(products)
	seedProducts(t, products, models.Product{Title: "apples", Description: "fruit", Price: 40, Count: 7})

	// each line fits on its own but their sum exceeds stock
	_, _, err := orders.Place([]LineRequest{
		{Title: "apples", Count: 5},
		{Title: "apples", Count: 5},
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	var short *InsufficientStockError
	if !errors.As(err, &short) {
		t.Fatalf("expected *InsufficientStockError, got %T", err)
	}
	if short.Requested != 5 || short.Available != 2 {
		t.Errorf("expected the second line checked against remaining stock 2, got %+v", short)
	}

	apples, _ := products.GetByTitle("apples")
	if apples.Count != 7 {
		t.Errorf("expected stock unchanged at 7, got %d", apples.Count)
	}
	all, _ := orders.GetAll()
	if len(all) != 0 {
		t.Errorf("expected no orders, got %d", len(all))
	}
	if items, _ := orders.ItemsByOrderID(1); len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}

	// a duplicate-title request within stock still goes through whole
	order, items, err := orders.Place([]LineRequest{
		{Title: "apples", Count: 3},
		{Title: "apples", Count: 2},
	})
	if err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	apples, _ = products.GetByTitle("apples")
	if apples.Count != 2 {
		t.Errorf("expected stock 2 after placement, got %d", apples.Count)
	}
	if order.Status != "in progress" {
		t.Errorf("expected status 'in progress', got %q", order.Status)
	}
}

func TestPlace_FirstFailingLineReported(t *testing.T) {
	products := NewInMemoryProductRepository()
	orders := NewInMemoryOrderRepository(products)
	seedProducts(t, products, models.Product{Title: "apples", Description: "fruit", Price: 40, Count: 1})

	// both lines are bad; the first one, in request order, wins
	_, _, err := orders.Place([]LineRequest{
		{Title: "apples", Count: 2},
		{Title: "bananas", Count: 1},
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("expected the insufficient-stock line to be reported first, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	products := NewInMemoryProductRepository()
	orders := NewInMemoryOrderRepository(products)
	seedProducts(t, products, models.Product{Title: "apples", Description: "fruit", Price: 40, Count: 34})

	order, _, err := orders.Place([]LineRequest{{Title: "apples", Count: 1}})
	if err != nil {
		t.Fatalf("placement failed: %v", err)
	}

	updated, err := orders.UpdateStatus(order.ID, "shipped")
	if err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if updated.Status != "shipped" {
		t.Errorf("expected status 'shipped', got %q", updated.Status)
	}
	if updated.CreatedAt != order.CreatedAt {
		t.Errorf("expected creation time to be immutable, got %q vs %q", updated.CreatedAt, order.CreatedAt)
	}

	if _, err := orders.UpdateStatus(999, "shipped"); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderIdentityMonotonic(t *testing.T) {
	products := NewInMemoryProductRepository()
	orders := NewInMemoryOrderRepository(products)
	seedProducts(t, products, models.Product{Title: "apples", Description: "fruit", Price: 40, Count: 100})

	first, _, err := orders.Place([]LineRequest{{Title: "apples", Count: 1}})
	if err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	second, _, err := orders.Place([]LineRequest{{Title: "apples", Count: 1}})
	if err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	if second.ID != first.ID+1 {
		t.Errorf("expected consecutive order ids, got %d then %d", first.ID, second.ID)
	}
}
