package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghuser/inventory/pkg/logger"
	pkgvalidator "github.com/ghuser/inventory/pkg/validator"
	inventorydomain "github.com/ghuser/inventory/services/inventory/domain"
	"github.com/ghuser/inventory/services/inventory/domain/models"
	"github.com/ghuser/inventory/services/inventory/domain/repositories"
)

// ItemInput carries the writable fields of an Item. A nil LocationID means
// the field was absent or not an integer.
type ItemInput struct {
	Title      string `json:"title"       validate:"notblank,max=30"`
	LocationID *int64 `json:"location_id" validate:"required,gt=0"`
}

// ItemService orchestrates Item reads and writes. Writes check the referenced
// Location first. Event publishing is handled by the repository layer (outbox pattern).
type ItemService struct {
	items     repositories.ItemRepository
	locations repositories.LocationRepository
	log       logger.Logger
}

// NewItemService returns an ItemService wired with the given repositories.
func NewItemService(items repositories.ItemRepository, locations repositories.LocationRepository, log logger.Logger) *ItemService {
	return &ItemService{items: items, locations: locations, log: log}
}

// List returns every item in store order.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Get returns the item with id, or ErrItemNotFound.
func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	if id <= 0 {
		return nil, inventorydomain.ErrItemNotFound
	}
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// Create validates in and inserts a new item, returning its ID.
func (s *ItemService) Create(ctx context.Context, in ItemInput) (int64, error) {
	item, err := s.validate(ctx, in)
	if err != nil {
		return 0, err
	}

	id, err := s.items.Create(ctx, item)
	if err != nil {
		return 0, fmt.Errorf("create item: %w", err)
	}

	s.log.InfoContext(ctx, "item created", "item_id", id, "location_id", item.LocationID)
	return id, nil
}

// Update validates in and overwrites item id. The body is checked before id,
// so a bad body on an unknown id still reports the body error.
// Returns ErrItemNotUpdated when no row matched.
func (s *ItemService) Update(ctx context.Context, id int64, in ItemInput) error {
	item, err := s.validate(ctx, in)
	if err != nil {
		return err
	}
	if id <= 0 {
		return inventorydomain.ErrItemNotUpdated
	}
	item.ID = id

	affected, err := s.items.Update(ctx, item)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if affected == 0 {
		return inventorydomain.ErrItemNotUpdated
	}

	s.log.InfoContext(ctx, "item updated", "item_id", id, "location_id", item.LocationID)
	return nil
}

// Delete removes item id. Returns ErrItemNotFound when no row matched.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return inventorydomain.ErrItemNotFound
	}

	affected, err := s.items.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if affected == 0 {
		return inventorydomain.ErrItemNotFound
	}

	s.log.InfoContext(ctx, "item deleted", "item_id", id)
	return nil
}

// validate checks title, then location_id shape, then that the location exists.
func (s *ItemService) validate(ctx context.Context, in ItemInput) (*models.Item, error) {
	if err := pkgvalidator.Validate(&in); err != nil {
		if pkgvalidator.HasFieldError(err, "title") {
			return nil, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidTitle, err)
		}
		return nil, fmt.Errorf("%w: %w", inventorydomain.ErrInvalidLocationID, err)
	}

	if _, err := s.locations.GetByID(ctx, *in.LocationID); err != nil {
		if errors.Is(err, inventorydomain.ErrLocationNotFound) {
			return nil, inventorydomain.ErrInvalidLocationID
		}
		return nil, fmt.Errorf("lookup location: %w", err)
	}

	return models.NewItem(in.Title, *in.LocationID), nil
}
