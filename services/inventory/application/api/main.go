package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/porcelarte/pkg/app"
	"github.com/ghuser/porcelarte/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/porcelarte/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a))
}

// Mount registers the inventory endpoints backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/inventory", func(r chi.Router) {
		r.Post("/movements", handlers.NewPostMovementHandler(svcs).Execute)
		r.Get("/movements", handlers.NewListMovementsHandler(svcs).Execute)
		r.Get("/stock/{kind}/{id}", handlers.NewGetStockHandler(svcs).Execute)
	})
}
