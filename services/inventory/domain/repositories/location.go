package repositories

import (
	"context"

	"github.com/ghuser/inventory/services/inventory/domain/models"
)

// LocationRepository is the persistence interface for Locations.
type LocationRepository interface {
	List(ctx context.Context) ([]*models.Location, error)

	// GetByID returns ErrLocationNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*models.Location, error)

	// GetByCoordinates returns the location occupying the pair, or ErrLocationNotFound.
	GetByCoordinates(ctx context.Context, c models.Coordinates) (*models.Location, error)

	Create(ctx context.Context, location *models.Location) (int64, error)
	Update(ctx context.Context, location *models.Location) (int64, error)

	// Delete returns ErrLocationInUse when items still reference the location.
	Delete(ctx context.Context, id int64) (int64, error)
}
