package repo

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrOrderNotFound is returned when an order is not found in the repository.
var ErrOrderNotFound = errors.New("order not found")

// ErrInsufficientStock is returned when a requested quantity exceeds the
// available stock of a product.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInvalidQuantityChange is returned when a stock adjustment would drive
// the count below zero.
var ErrInvalidQuantityChange = errors.New("quantity cannot become negative")

// ErrDuplicatedValueUnique is returned when an insert violates a unique
// constraint (product title, username).
var ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")

// MissingProductError reports an order line referencing a title that does not
// exist in the inventory.
type MissingProductError struct {
	Title string
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("product %q not found", e.Title)
}

func (e *MissingProductError) Is(target error) bool {
	return target == ErrProductNotFound
}

// InsufficientStockError reports an order line requesting more units than the
// product has in stock.
type InsufficientStockError struct {
	Title     string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q: requested %d, available %d",
		e.Title, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
