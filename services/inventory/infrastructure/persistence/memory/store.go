// Package memory is an in-process implementation of the inventory repositories.
// It enforces the same constraints as the PostgreSQL schema: unique coordinates,
// an existing location behind every item and RESTRICT on location delete.
// It backs the application and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"

	inventorydomain "github.com/ghuser/inventory/services/inventory/domain"
	"github.com/ghuser/inventory/services/inventory/domain/models"
)

// Store holds both tables behind one lock so cross-table constraints are atomic.
type Store struct {
	mu             sync.RWMutex
	items          map[int64]models.Item
	locations      map[int64]models.Location
	nextItemID     int64
	nextLocationID int64
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		items:     make(map[int64]models.Item),
		locations: make(map[int64]models.Location),
	}
}

// Items returns an ItemRepository over the store.
func (s *Store) Items() *ItemRepository { return &ItemRepository{s: s} }

// Locations returns a LocationRepository over the store.
func (s *Store) Locations() *LocationRepository { return &LocationRepository{s: s} }

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ItemRepository implements repositories.ItemRepository.
type ItemRepository struct{ s *Store }

func (r *ItemRepository) List(_ context.Context) ([]*models.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*models.Item, 0, len(r.s.items))
	for _, id := range sortedKeys(r.s.items) {
		item := r.s.items[id]
		out = append(out, &item)
	}
	return out, nil
}

func (r *ItemRepository) GetByID(_ context.Context, id int64) (*models.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	item, ok := r.s.items[id]
	if !ok {
		return nil, inventorydomain.ErrItemNotFound
	}
	return &item, nil
}

func (r *ItemRepository) Create(_ context.Context, item *models.Item) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.locations[item.LocationID]; !ok {
		return 0, inventorydomain.ErrInvalidLocationID
	}
	r.s.nextItemID++
	stored := *item
	stored.ID = r.s.nextItemID
	r.s.items[stored.ID] = stored
	return stored.ID, nil
}

// Update counts matched rows, so writing identical values still reports 1.
func (r *ItemRepository) Update(_ context.Context, item *models.Item) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[item.ID]; !ok {
		return 0, nil
	}
	if _, ok := r.s.locations[item.LocationID]; !ok {
		return 0, inventorydomain.ErrInvalidLocationID
	}
	r.s.items[item.ID] = *item
	return 1, nil
}

func (r *ItemRepository) Delete(_ context.Context, id int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return 0, nil
	}
	delete(r.s.items, id)
	return 1, nil
}

// LocationRepository implements repositories.LocationRepository.
type LocationRepository struct{ s *Store }

func (r *LocationRepository) List(_ context.Context) ([]*models.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*models.Location, 0, len(r.s.locations))
	for _, id := range sortedKeys(r.s.locations) {
		location := r.s.locations[id]
		out = append(out, &location)
	}
	return out, nil
}

func (r *LocationRepository) GetByID(_ context.Context, id int64) (*models.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	location, ok := r.s.locations[id]
	if !ok {
		return nil, inventorydomain.ErrLocationNotFound
	}
	return &location, nil
}

func (r *LocationRepository) GetByCoordinates(_ context.Context, c models.Coordinates) (*models.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if location, ok := r.occupant(c); ok {
		return &location, nil
	}
	return nil, inventorydomain.ErrLocationNotFound
}

func (r *LocationRepository) occupant(c models.Coordinates) (models.Location, bool) {
	for _, id := range sortedKeys(r.s.locations) {
		if location := r.s.locations[id]; location.Coordinates == c {
			return location, true
		}
	}
	return models.Location{}, false
}

func (r *LocationRepository) Create(_ context.Context, location *models.Location) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, taken := r.occupant(location.Coordinates); taken {
		return 0, inventorydomain.ErrDuplicateCoordinates
	}
	r.s.nextLocationID++
	stored := *location
	stored.ID = r.s.nextLocationID
	r.s.locations[stored.ID] = stored
	return stored.ID, nil
}

func (r *LocationRepository) Update(_ context.Context, location *models.Location) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.locations[location.ID]; !ok {
		return 0, nil
	}
	if holder, taken := r.occupant(location.Coordinates); taken && holder.ID != location.ID {
		return 0, inventorydomain.ErrDuplicateCoordinates
	}
	r.s.locations[location.ID] = *location
	return 1, nil
}

func (r *LocationRepository) Delete(_ context.Context, id int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.locations[id]; !ok {
		return 0, nil
	}
	for _, item := range r.s.items {
		if item.LocationID == id {
			return 0, inventorydomain.ErrLocationInUse
		}
	}
	delete(r.s.locations, id)
	return 1, nil
}
