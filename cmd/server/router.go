package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/eholdings-api/internal/api"
	apiMiddleware "github.com/phrazzld/eholdings-api/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	titles := api.NewTitleHandler(app.titleService, app.logger)
	packages := api.NewPackageHandler(app.packageService, app.logger)
	resources := api.NewResourceHandler(app.resourceService, app.logger)
	vendors := api.NewVendorHandler(app.vendorService, app.logger)
	status := api.NewStatusHandler(app.statusService, app.logger)
	okapiAuth := apiMiddleware.NewOkapiAuthenticator(app.logger)

	r.Route("/eholdings", func(r chi.Router) {
		r.Use(okapiAuth.Middleware)

		r.Get("/status", status.Get)

		r.Get("/titles", titles.List)
		r.Get("/titles/{id}", titles.Get)

		r.Get("/packages", packages.List)
		r.Get("/packages/{id}", packages.Get)
		r.Put("/packages/{id}", packages.Update)
		r.Get("/packages/{id}/customer-resources", packages.ListCustomerResources)

		r.Get("/resources/{id}", resources.Get)
		r.Put("/resources/{id}", resources.Update)
		r.Delete("/resources/{id}", resources.Delete)

		r.Get("/vendors/{id}", vendors.Get)
	})

	r.Get("/health", api.Health)

	return r
}
