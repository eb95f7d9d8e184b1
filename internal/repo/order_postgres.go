package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	models "github.com/muhammaduss/Warehold/internal/models"
)

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

// Place validates and applies every requested line inside a single
// transaction. Touched product rows are locked with FOR UPDATE so concurrent
// placements against the same product cannot both observe sufficient stock.
// Any rejection rolls back the header and every already-written line.
func (r *PostgresOrderRepository) Place(lines []LineRequest) (models.Order, []models.OrderItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, nil, err
	}
	defer tx.Rollback()

	var order models.Order
	order.Status = "in progress"
	var createdAt time.Time
	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (status) VALUES ($1) RETURNING id, created_at`,
		order.Status).Scan(&order.ID, &createdAt)
	if err != nil {
		return models.Order{}, nil, err
	}
	order.CreatedAt = createdAt.UTC().Format(time.RFC3339)

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		var productID, stock int
		err := tx.QueryRowContext(ctx,
			`SELECT id, count FROM products WHERE title = $1 FOR UPDATE`,
			line.Title).Scan(&productID, &stock)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, nil, &MissingProductError{Title: line.Title}
		}
		if err != nil {
			return models.Order{}, nil, err
		}

		if stock < line.Count {
			return models.Order{}, nil, &InsufficientStockError{
				Title:     line.Title,
				Requested: line.Count,
				Available: stock,
			}
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE products SET count = count - $1, updated_at = now() WHERE id = $2`,
			line.Count, productID)
		if err != nil {
			return models.Order{}, nil, err
		}

		item := models.OrderItem{
			OrderID:   order.ID,
			ProductID: productID,
			Title:     line.Title,
			Count:     line.Count,
		}
		err = tx.QueryRowContext(ctx,
			`INSERT INTO order_items (order_id, product_id, title, count) VALUES ($1, $2, $3, $4) RETURNING id`,
			item.OrderID, item.ProductID, item.Title, item.Count).Scan(&item.ID)
		if err != nil {
			return models.Order{}, nil, err
		}
		items = append(items, item)
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, nil, err
	}
	return order, items, nil
}

func (r *PostgresOrderRepository) GetAll() ([]models.Order, error) {
	query := `SELECT id, created_at, status FROM orders ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) GetByID(id int) (models.Order, error) {
	query := `SELECT id, created_at, status FROM orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var o models.Order
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &createdAt, &o.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	o.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return o, nil
}

func (r *PostgresOrderRepository) UpdateStatus(id int, status string) (models.Order, error) {
	query := `UPDATE orders SET status = $1 WHERE id = $2 RETURNING id, created_at, status`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var o models.Order
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query, status, id).Scan(&o.ID, &createdAt, &o.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}
	o.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return o, nil
}

// ItemsByOrderID returns the line items of an order in insertion order.
func (r *PostgresOrderRepository) ItemsByOrderID(orderID int) ([]models.OrderItem, error) {
	query := `SELECT id, order_id, COALESCE(product_id, 0), title, count FROM order_items WHERE order_id = $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Title, &it.Count); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (models.Order, error) {
	var o models.Order
	var createdAt time.Time
	if err := row.Scan(&o.ID, &createdAt, &o.Status); err != nil {
		return models.Order{}, err
	}
	o.CreatedAt = createdAt.UTC().Format(time.RFC3339)
	return o, nil
}
