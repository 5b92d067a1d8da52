package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/eholdings-api/internal/api/shared"
	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/jsonapi"
	"github.com/phrazzld/eholdings-api/internal/platform/logger"
	"github.com/phrazzld/eholdings-api/internal/query"
)

// handler holds what every resource handler needs.
type handler struct {
	logger *slog.Logger
}

func newHandler(log *slog.Logger, component string) handler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for " + component)
	}
	return handler{logger: log.With(slog.String("component", component))}
}

// tenant returns the tenant set by the Okapi middleware. A route mounted
// without that middleware answers 500.
func (h handler) tenant(w http.ResponseWriter, r *http.Request) (domain.TenantContext, bool) {
	tenant, ok := shared.GetTenant(r.Context())
	if !ok {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("tenant missing from request context")
		shared.RespondWithErrors(w, r, http.StatusInternalServerError, jsonapi.ErrorObject{Title: TitleInternalError})
	}
	return tenant, ok
}

// respondError maps err to a status and error objects and writes them.
func (h handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ToErrorObjects(err), err)
}

func (h handler) respondDocument(w http.ResponseWriter, r *http.Request, doc jsonapi.Document) {
	shared.RespondWithJSON(w, r, http.StatusOK, doc)
}

// includes reads the comma separated include parameter.
func includes(r *http.Request) []string {
	return query.Includes(r.URL.Query().Get("include"))
}

// NotFound answers unknown routes with a JSON:API error document.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithErrors(w, r, http.StatusNotFound, jsonapi.ErrorObject{Title: TitleNotFound})
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithErrors(w, r, http.StatusMethodNotAllowed, jsonapi.ErrorObject{Title: TitleMethodNotAllowed})
}
