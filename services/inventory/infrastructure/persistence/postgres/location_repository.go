package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ghuser/inventory/pkg/database"
	"github.com/ghuser/inventory/pkg/events"
	inventorydomain "github.com/ghuser/inventory/services/inventory/domain"
	domainevents "github.com/ghuser/inventory/services/inventory/domain/events"
	"github.com/ghuser/inventory/services/inventory/domain/models"
)

const (
	listLocationsQuery      = `SELECT id, title, x_cor, y_cor FROM locations ORDER BY id`
	getLocationQuery        = `SELECT id, title, x_cor, y_cor FROM locations WHERE id = $1`
	getLocationByCoordQuery = `SELECT id, title, x_cor, y_cor FROM locations WHERE x_cor = $1 AND y_cor = $2`
	insertLocationQuery     = `INSERT INTO locations (title, x_cor, y_cor) VALUES ($1, $2, $3) RETURNING id`
	updateLocationQuery     = `UPDATE locations SET title = $1, x_cor = $2, y_cor = $3 WHERE id = $4`
	deleteLocationQuery     = `DELETE FROM locations WHERE id = $1`
	locationEventVersion    = 1
)

// LocationRepository implements repositories.LocationRepository against PostgreSQL.
type LocationRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewLocationRepository returns a LocationRepository backed by the given pool
// and event bus. A nil bus disables change events.
func NewLocationRepository(db *database.Database, bus *events.EventBus) *LocationRepository {
	return &LocationRepository{db: db, bus: bus}
}

// List returns every location ordered by id.
func (r *LocationRepository) List(ctx context.Context) ([]*models.Location, error) {
	locations := []*models.Location{}
	if err := r.db.DB().SelectContext(ctx, &locations, listLocationsQuery); err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	return locations, nil
}

// GetByID returns ErrLocationNotFound if no row matches.
func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*models.Location, error) {
	return r.getOne(ctx, getLocationQuery, id)
}

// GetByCoordinates returns the location holding the pair, or ErrLocationNotFound.
func (r *LocationRepository) GetByCoordinates(ctx context.Context, c models.Coordinates) (*models.Location, error) {
	return r.getOne(ctx, getLocationByCoordQuery, c.X, c.Y)
}

func (r *LocationRepository) getOne(ctx context.Context, query string, args ...any) (*models.Location, error) {
	var location models.Location
	if err := r.db.DB().GetContext(ctx, &location, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, inventorydomain.ErrLocationNotFound
		}
		return nil, fmt.Errorf("query location: %w", err)
	}
	return &location, nil
}

// Create inserts the location and publishes location.created. A unique
// violation means another request took the coordinates after validation.
func (r *LocationRepository) Create(ctx context.Context, location *models.Location) (int64, error) {
	var id int64
	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &id, insertLocationQuery, location.Title, location.X, location.Y); err != nil {
			return translateLocationWrite("insert location", err)
		}
		return r.publish(ctx, tx, domainevents.TopicLocationCreated, id, location)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites title and coordinates and reports matched rows.
func (r *LocationRepository) Update(ctx context.Context, location *models.Location) (int64, error) {
	var affected int64
	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, updateLocationQuery, location.Title, location.X, location.Y, location.ID)
		if err != nil {
			return translateLocationWrite("update location", err)
		}
		if affected, err = res.RowsAffected(); err != nil {
			return fmt.Errorf("update location: rows affected: %w", err)
		}
		if affected == 0 {
			return nil
		}
		return r.publish(ctx, tx, domainevents.TopicLocationUpdated, location.ID, location)
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// Delete removes the location. Items referencing it block the delete with
// ErrLocationInUse (ON DELETE RESTRICT).
func (r *LocationRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, deleteLocationQuery, id)
		if err != nil {
			if hasPgCode(err, pgForeignKeyViolation) {
				return inventorydomain.ErrLocationInUse
			}
			return fmt.Errorf("delete location: %w", err)
		}
		if affected, err = res.RowsAffected(); err != nil {
			return fmt.Errorf("delete location: rows affected: %w", err)
		}
		if affected == 0 {
			return nil
		}
		return r.publish(ctx, tx, domainevents.TopicLocationDeleted, id, nil)
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *LocationRepository) publish(ctx context.Context, tx *sqlx.Tx, topic string, id int64, location *models.Location) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.LocationChangedEvent{
		EventID:    uuid.New(),
		Version:    locationEventVersion,
		LocationID: id,
		OccurredAt: time.Now().UTC(),
	}
	if location != nil {
		x, y := location.X, location.Y
		event.Title = location.Title
		event.XCor, event.YCor = &x, &y
	}
	if err := r.bus.PublishInTx(ctx, tx.Tx, topic, event.EventID, event.Version, event); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func translateLocationWrite(op string, err error) error {
	if hasPgCode(err, pgUniqueViolation) {
		return inventorydomain.ErrDuplicateCoordinates
	}
	return fmt.Errorf("%s: %w", op, err)
}
