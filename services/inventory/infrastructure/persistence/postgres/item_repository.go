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
	listItemsQuery   = `SELECT id, title, location_id FROM items ORDER BY id`
	getItemQuery     = `SELECT id, title, location_id FROM items WHERE id = $1`
	insertItemQuery  = `INSERT INTO items (title, location_id) VALUES ($1, $2) RETURNING id`
	updateItemQuery  = `UPDATE items SET title = $1, location_id = $2 WHERE id = $3`
	deleteItemQuery  = `DELETE FROM items WHERE id = $1`
	itemEventVersion = 1
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given pool and
// event bus. A nil bus disables change events.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// List returns every item ordered by id.
func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	items := []*models.Item{}
	if err := r.db.DB().SelectContext(ctx, &items, listItemsQuery); err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	return items, nil
}

// GetByID returns ErrItemNotFound if no row matches.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	if err := r.db.DB().GetContext(ctx, &item, getItemQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, inventorydomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &item, nil
}

// Create inserts the item and publishes item.created in the same transaction.
// A foreign-key violation means the location vanished after validation.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) (int64, error) {
	var id int64
	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &id, insertItemQuery, item.Title, item.LocationID); err != nil {
			return translateItemWrite("insert item", err)
		}
		return r.publish(ctx, tx, domainevents.TopicItemCreated, id, item)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites title and location_id. PostgreSQL counts matched rows,
// so rewriting identical values reports 1.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) (int64, error) {
	var affected int64
	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, updateItemQuery, item.Title, item.LocationID, item.ID)
		if err != nil {
			return translateItemWrite("update item", err)
		}
		if affected, err = res.RowsAffected(); err != nil {
			return fmt.Errorf("update item: rows affected: %w", err)
		}
		if affected == 0 {
			return nil
		}
		return r.publish(ctx, tx, domainevents.TopicItemUpdated, item.ID, item)
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// Delete removes the item and publishes item.deleted when a row went away.
func (r *ItemRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var affected int64
	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, deleteItemQuery, id)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if affected, err = res.RowsAffected(); err != nil {
			return fmt.Errorf("delete item: rows affected: %w", err)
		}
		if affected == 0 {
			return nil
		}
		return r.publish(ctx, tx, domainevents.TopicItemDeleted, id, nil)
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (r *ItemRepository) publish(ctx context.Context, tx *sqlx.Tx, topic string, id int64, item *models.Item) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.ItemChangedEvent{
		EventID:    uuid.New(),
		Version:    itemEventVersion,
		ItemID:     id,
		OccurredAt: time.Now().UTC(),
	}
	if item != nil {
		event.Title = item.Title
		event.LocationID = item.LocationID
	}
	if err := r.bus.PublishInTx(ctx, tx.Tx, topic, event.EventID, event.Version, event); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func translateItemWrite(op string, err error) error {
	if hasPgCode(err, pgForeignKeyViolation) {
		return inventorydomain.ErrInvalidLocationID
	}
	return fmt.Errorf("%s: %w", op, err)
}
