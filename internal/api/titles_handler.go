package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/eholdings-api/internal/platform/logger"
	"github.com/phrazzld/eholdings-api/internal/service"
)

// TitleHandler handles the /titles routes.
type TitleHandler struct {
	handler
	titles service.TitleService
}

// NewTitleHandler creates a new TitleHandler.
func NewTitleHandler(titles service.TitleService, logger *slog.Logger) *TitleHandler {
	return &TitleHandler{handler: newHandler(logger, "title_handler"), titles: titles}
}

// List handles GET /titles.
func (h *TitleHandler) List(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenant(w, r)
	if !ok {
		return
	}

	doc, err := h.titles.List(r.Context(), tenant, r.URL.Query())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondDocument(w, r, doc)
}

// Get handles GET /titles/{id}.
func (h *TitleHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenant(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	logger.FromContextOrDefault(r.Context(), h.logger).Debug("getting title", slog.String("title_id", id))

	doc, err := h.titles.Get(r.Context(), tenant, id, includes(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondDocument(w, r, doc)
}
