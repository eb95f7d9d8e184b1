package orders

import (
	"errors"
	"testing"

	"github.com/muhammaduss/Warehold/internal/models"
	"github.com/muhammaduss/Warehold/internal/repo"
)

func newTestEngine(t *testing.T) (*Engine, *repo.InMemoryProductRepository, *repo.InMemoryMovementRepository) {
	t.Helper()
	products := repo.NewInMemoryProductRepository()
	orders := repo.NewInMemoryOrderRepository(products)
	movements := repo.NewInMemoryMovementRepository()
	return NewEngine(products, orders, movements), products, movements
}

func mustSeed(t *testing.T, products *repo.InMemoryProductRepository, title string, count int) models.Product {
	t.Helper()
	p, err := products.Create(models.Product{Title: title, Description: "fruit", Price: 40, Count: count})
	if err != nil {
		t.Fatalf("failed to seed product %q: %v", title, err)
	}
	return p
}

func TestEnginePlace_AssemblesView(t *testing.T) {
	engine, products, _ := newTestEngine(t)
	mustSeed(t, products, "apples", 34)
	mustSeed(t, products, "bananas", 12)

	view, err := engine.Place([]repo.LineRequest{
		{Title: "bananas", Count: 2},
		{Title: "apples", Count: 27},
	})
	if err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	if view.Status != "in progress" {
		t.Errorf("expected status 'in progress', got %q", view.Status)
	}
	if view.CreatedAt == "" {
		t.Error("expected a creation timestamp")
	}
	if len(view.Products) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(view.Products))
	}
	// lines follow request order, not catalog order
	if view.Products[0].Title != "bananas" || view.Products[1].Title != "apples" {
		t.Errorf("unexpected line order: %+v", view.Products)
	}
	if view.Products[1].Count != 27 {
		t.Errorf("expected 27 apples, got %d", view.Products[1].Count)
	}
}

func TestEnginePlace_LogsMovements(t *testing.T) {
	engine, products, movements := newTestEngine(t)
	apples := mustSeed(t, products, "apples", 34)

	if _, err := engine.Place([]repo.LineRequest{{Title: "apples", Count: 27}}); err != nil {
		t.Fatalf("placement failed: %v", err)
	}

	logged, _, err := movements.GetByProductID(apples.ID, repo.MovementFilter{})
	if err != nil {
		t.Fatalf("movement lookup failed: %v", err)
	}
	if len(logged) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(logged))
	}
	if logged[0].Delta != -27 {
		t.Errorf("expected delta -27, got %d", logged[0].Delta)
	}
}

func TestEnginePlace_RejectionLogsNothing(t *testing.T) {
	engine, products, movements := newTestEngine(t)
	apples := mustSeed(t, products, "apples", 5)

	_, err := engine.Place([]repo.LineRequest{{Title: "apples", Count: 8}})
	if !errors.Is(err, repo.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	logged, total, err := movements.GetByProductID(apples.ID, repo.MovementFilter{})
	if err != nil {
		t.Fatalf("movement lookup failed: %v", err)
	}
	if len(logged) != 0 || total != 0 {
		t.Errorf("expected no movements after rejection, got %d", total)
	}
}

// failingMovementLog rejects every write, standing in for an unreachable
// movement store.
type failingMovementLog struct{}

func (f *failingMovementLog) Log(productID, delta int) error {
	return errors.New("movement store unavailable")
}

func (f *failingMovementLog) GetByProductID(productID int, mf repo.MovementFilter) ([]models.Movement, int, error) {
	return nil, 0, nil
}

func TestEnginePlace_MovementLogFailureIsNotFatal(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	orders := repo.NewInMemoryOrderRepository(products)
	engine := NewEngine(products, orders, &failingMovementLog{})
	mustSeed(t, products, "apples", 34)

	view, err := engine.Place([]repo.LineRequest{{Title: "apples", Count: 27}})
	if err != nil {
		t.Fatalf("expected placement to succeed despite audit failure, got %v", err)
	}
	if len(view.Products) != 1 || view.Products[0].Count != 27 {
		t.Errorf("unexpected view: %+v", view.Products)
	}

	apples, _ := products.GetByTitle("apples")
	if apples.Count != 7 {
		t.Errorf("expected stock 7, got %d", apples.Count)
	}
}

func TestEnginePlace_NilMovementRepo(t *testing.T) {
	products := repo.NewInMemoryProductRepository()
	orders := repo.NewInMemoryOrderRepository(products)
	engine := NewEngine(products, orders, nil)
	mustSeed(t, products, "apples", 34)

	view, err := engine.Place([]repo.LineRequest{{Title: "apples", Count: 1}})
	if err != nil {
		t.Fatalf("placement failed: %v", err)
	}
	if len(view.Products) != 1 {
		t.Errorf("expected 1 line, got %d", len(view.Products))
	}
}

func TestEngineView_NotFound(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	if _, err := engine.View(123); !errors.Is(err, repo.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestEngineViews_OrderedByID(t *testing.T) {
	engine, products, _ := newTestEngine(t)
	mustSeed(t, products, "apples", 100)

	for i := 0; i < 3; i++ {
		if _, err := engine.Place([]repo.LineRequest{{Title: "apples", Count: 1}}); err != nil {
			t.Fatalf("placement %d failed: %v", i, err)
		}
	}

	views, err := engine.Views()
	if err != nil {
		t.Fatalf("listing failed: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}
	for i := 1; i < len(views); i++ {
		if views[i].ID <= views[i-1].ID {
			t.Errorf("views not ordered by id: %d then %d", views[i-1].ID, views[i].ID)
		}
	}
}
