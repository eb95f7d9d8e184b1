package repo

import (
	"time"

	"github.com/muhammaduss/Warehold/internal/models"
)

type MovementFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}

// MovementRepository records and queries the stock movement audit log.
type MovementRepository interface {
	Log(productID, delta int) error
	GetByProductID(productID int, mf MovementFilter) ([]models.Movement, int, error)
}
