package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/porcelarte/pkg/app"
	pkgworkflows "github.com/ghuser/porcelarte/pkg/workflows"
	catalogservices "github.com/ghuser/porcelarte/services/catalog/application/services"
	inventoryservices "github.com/ghuser/porcelarte/services/inventory/application/services"
	"github.com/ghuser/porcelarte/services/quote/application/handlers"
	appsvcs "github.com/ghuser/porcelarte/services/quote/application/services"
)

// QuoteRoutes registers quote endpoints on the provided chi router.
func QuoteRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a, catalogservices.New(a), inventoryservices.New(a))
	Mount(r, svcs, a.TemporalClient, a.Config.TemporalTaskQueue)
}

// Mount registers the quote endpoints. temporal may be nil, in which case
// approvals run in-process.
func Mount(r chi.Router, svcs *appsvcs.Services, temporal *pkgworkflows.TemporalClient, taskQueue string) {
	r.Route("/quotes", func(r chi.Router) {
		r.Post("/price", handlers.NewPostQuotePriceHandler(svcs).Execute)
		r.Post("/{id}/approve", handlers.NewPostQuoteApproveHandler(svcs, temporal, taskQueue).Execute)
	})
}
