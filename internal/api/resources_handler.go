package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/eholdings-api/internal/api/shared"
	"github.com/phrazzld/eholdings-api/internal/platform/logger"
	"github.com/phrazzld/eholdings-api/internal/service"
)

// ResourceHandler handles the /resources routes.
type ResourceHandler struct {
	handler
	resources service.ResourceService
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(resources service.ResourceService, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{handler: newHandler(logger, "resource_handler"), resources: resources}
}

// Get handles GET /resources/{id}.
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenant(w, r)
	if !ok {
		return
	}

	doc, err := h.resources.Get(r.Context(), tenant, chi.URLParam(r, "id"), includes(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondDocument(w, r, doc)
}

// Update handles PUT /resources/{id}.
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("updating resource", slog.String("resource_id", id))

	doc, err := h.resources.Update(r.Context(), tenant, id, body)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondDocument(w, r, doc)
}

// Delete handles DELETE /resources/{id}. Success has no body.
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenant(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.resources.Delete(r.Context(), tenant, id); err != nil {
		h.respondError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("resource deleted", slog.String("resource_id", id))
	w.WriteHeader(http.StatusNoContent)
}
