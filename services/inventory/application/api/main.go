package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/inventory/pkg/app"
	"github.com/ghuser/inventory/pkg/logger"
	"github.com/ghuser/inventory/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
)

// InventoryRoutes registers item and location endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	log := a.Logger.With("context", "inventory")
	Mount(r, appsvcs.New(a), log)
}

// Mount registers the endpoints against an already wired service container.
func Mount(r chi.Router, svcs *appsvcs.Services, log logger.Logger) {
	r.Route("/item", func(r chi.Router) {
		r.Get("/", handlers.NewGetItemsHandler(svcs, log).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs, log).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs, log).Execute)
		r.Put("/{id}", handlers.NewPutItemHandler(svcs, log).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs, log).Execute)
	})
	r.Route("/location", func(r chi.Router) {
		r.Get("/", handlers.NewGetLocationsHandler(svcs, log).Execute)
		r.Post("/", handlers.NewPostLocationHandler(svcs, log).Execute)
		r.Get("/{id}", handlers.NewGetLocationHandler(svcs, log).Execute)
		r.Put("/{id}", handlers.NewPutLocationHandler(svcs, log).Execute)
		r.Delete("/{id}", handlers.NewDeleteLocationHandler(svcs, log).Execute)
	})
}
