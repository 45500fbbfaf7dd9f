package services

import (
	"github.com/ghuser/inventory/pkg/app"
	"github.com/ghuser/inventory/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires application services with their infrastructure implementations.
type Services struct {
	Item     *ItemService
	Location *LocationService
}

// New wires the inventory services with the PostgreSQL repositories from the Application container.
func New(a *app.Application) *Services {
	locations := postgres.NewLocationRepository(a.Db, a.EventBus)
	items := postgres.NewItemRepository(a.Db, a.EventBus)
	return &Services{
		Item:     NewItemService(items, locations, a.Logger),
		Location: NewLocationService(locations, a.Logger),
	}
}
