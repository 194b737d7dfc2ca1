package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/porcelarte/pkg/app"
	"github.com/ghuser/porcelarte/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/porcelarte/services/catalog/application/services"
)

// CatalogRoutes registers catalog endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	Mount(r, appsvcs.New(a))
}

// Mount registers the catalog endpoints backed by svcs.
func Mount(r chi.Router, svcs *appsvcs.Services) {
	r.Route("/catalog", func(r chi.Router) {
		r.Route("/floor", func(r chi.Router) {
			r.Post("/", handlers.NewPostFloorProductHandler(svcs).Execute)
			r.Get("/", handlers.NewListFloorProductsHandler(svcs).Execute)
			r.Post("/import", handlers.NewPostFloorImportHandler(svcs).Execute)
			r.Get("/export", handlers.NewExportFloorCSVHandler(svcs).Execute)
			r.Get("/export.xlsx", handlers.NewExportFloorXLSXHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetFloorProductHandler(svcs).Execute)
			r.Patch("/{id}", handlers.NewPatchFloorProductHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteFloorProductHandler(svcs).Execute)
		})
		r.Route("/accessories", func(r chi.Router) {
			r.Post("/", handlers.NewPostAccessoryHandler(svcs).Execute)
			r.Get("/", handlers.NewListAccessoriesHandler(svcs).Execute)
			r.Patch("/{id}", handlers.NewPatchAccessoryHandler(svcs).Execute)
		})
		r.Get("/replenishment", handlers.NewReplenishmentHandler(svcs).Execute)
	})
}
