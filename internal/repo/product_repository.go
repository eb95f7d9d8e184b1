package repo

import "github.com/muhammaduss/Warehold/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	GetByTitle(title string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id int) error
	AdjustCount(productID int, delta int) (models.Product, error)
}
