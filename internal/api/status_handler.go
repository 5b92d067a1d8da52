package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/eholdings-api/internal/api/shared"
	"github.com/phrazzld/eholdings-api/internal/service"
)

type StatusHandler struct {
	handler
	status service.StatusService
}

func NewStatusHandler(status service.StatusService, logger *slog.Logger) *StatusHandler {
	return &StatusHandler{handler: newHandler(logger, "status_handler"), status: status}
}

// Get handles GET /status.
func (h *StatusHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenant(w, r)
	if !ok {
		return
	}

	doc, err := h.status.Get(r.Context(), tenant)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondDocument(w, r, doc)
}

// Health handles GET /health. It needs no tenant.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithPlainText(w, r, http.StatusOK, "OK")
}
