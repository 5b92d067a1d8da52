package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/phrazzld/eholdings-api/internal/jsonapi"
	"github.com/phrazzld/eholdings-api/internal/platform/logger"
	"github.com/phrazzld/eholdings-api/internal/redact"
)

// RespondWithJSON writes a JSON:API response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", jsonapi.MediaType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), nil).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithPlainText writes a text/plain response.
func RespondWithPlainText(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		logger.FromContextOrDefault(r.Context(), nil).Error("failed to write response", "error", err)
	}
}

// RespondWithErrors writes a JSON:API error document. Objects without a
// status get the response status.
func RespondWithErrors(w http.ResponseWriter, r *http.Request, status int, errs ...jsonapi.ErrorObject) {
	code := strconv.Itoa(status)
	for i := range errs {
		if errs[i].Status == "" {
			errs[i].Status = code
		}
	}
	RespondWithJSON(w, r, status, jsonapi.ErrorDocument{Errors: errs})
}

// RespondWithErrorAndLog writes a JSON:API error document and also logs the
// detailed error. Only the error objects reach the client; the error itself
// is logged redacted.
//
// Log level strategy:
// - 5xx errors: Always logged at ERROR level
// - 4xx errors: Logged at DEBUG level
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	errs []jsonapi.ErrorObject,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
	}
	if len(errs) > 0 {
		logAttrs = append(logAttrs, slog.String("user_message", errs[0].Title))
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	logger.FromContextOrDefault(r.Context(), nil).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithErrors(w, r, status, errs...)
}
