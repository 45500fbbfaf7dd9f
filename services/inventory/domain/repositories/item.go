package repositories

import (
	"context"

	"github.com/ghuser/inventory/services/inventory/domain/models"
)

// ItemRepository is the persistence interface for Items.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	// List returns every item in store order.
	List(ctx context.Context) ([]*models.Item, error)

	// GetByID returns ErrItemNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// Create inserts the item and returns the store-assigned ID.
	Create(ctx context.Context, item *models.Item) (int64, error)

	// Update overwrites title and location_id and reports the affected row count.
	Update(ctx context.Context, item *models.Item) (int64, error)

	// Delete removes the item and reports the affected row count.
	Delete(ctx context.Context, id int64) (int64, error)
}
