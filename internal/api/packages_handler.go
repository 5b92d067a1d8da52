package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/eholdings-api/internal/api/shared"
	"github.com/phrazzld/eholdings-api/internal/platform/logger"
	"github.com/phrazzld/eholdings-api/internal/service"
)

// PackageHandler handles the /packages routes.
type PackageHandler struct {
	handler
	packages service.PackageService
}

// NewPackageHandler creates a new PackageHandler.
func NewPackageHandler(packages service.PackageService, logger *slog.Logger) *PackageHandler {
	return &PackageHandler{handler: newHandler(logger, "package_handler"), packages: packages}
}

// List handles GET /packages.
func (h *PackageHandler) List(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenant(w, r)
	if !ok {
		return
	}

	doc, err := h.packages.List(r.Context(), tenant, r.URL.Query())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondDocument(w, r, doc)
}

// Get handles GET /packages/{id}.
func (h *PackageHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenant(w, r)
	if !ok {
		return
	}

	doc, err := h.packages.Get(r.Context(), tenant, chi.URLParam(r, "id"), includes(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondDocument(w, r, doc)
}

// Update handles PUT /packages/{id}.
func (h *PackageHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenant(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	body, err := shared.ReadBody(w, r)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("updating package", slog.String("package_id", id))

	doc, err := h.packages.Update(r.Context(), tenant, id, body)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondDocument(w, r, doc)
}

// ListCustomerResources handles GET /packages/{id}/customer-resources.
func (h *PackageHandler) ListCustomerResources(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenant(w, r)
	if !ok {
		return
	}

	doc, err := h.packages.ListCustomerResources(r.Context(), tenant, chi.URLParam(r, "id"), r.URL.Query())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondDocument(w, r, doc)
}
