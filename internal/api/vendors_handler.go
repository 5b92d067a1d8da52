package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/eholdings-api/internal/service"
)

// VendorHandler handles GET /vendors/{id}.
type VendorHandler struct {
	handler
	vendors service.VendorService
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendors service.VendorService, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{handler: newHandler(logger, "vendor_handler"), vendors: vendors}
}

// Get handles GET /vendors/{id}.
func (h *VendorHandler) Get(w http.ResponseWriter, r *http.Request) {
	tenant, ok := h.tenant(w, r)
	if !ok {
		return
	}

	doc, err := h.vendors.Get(r.Context(), tenant, chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondDocument(w, r, doc)
}
