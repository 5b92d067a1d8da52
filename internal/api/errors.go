package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/eholdings-api/internal/catalog"
	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/jsonapi"
	"github.com/phrazzld/eholdings-api/internal/platform/rmapi"
)

// Titles of errors that do not come from local validation or the RM API body.
const (
	TitleUpstreamFailed    = "Upstream request failed"
	TitleConfigUnavailable = "RM API configuration unavailable"
	TitleInternalError     = "An unexpected error occurred"
	TitleNotFound          = "Not found"
	TitleMethodNotAllowed  = "Method not allowed"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error type. RM API status errors keep the upstream status.
func MapErrorToStatusCode(err error) int {
	var statusErr *rmapi.StatusError

	switch {
	// Unprocessable entity
	case errors.Is(err, domain.ErrNotSelected),
		errors.Is(err, domain.ErrInvalidIdentifier),
		errors.Is(err, domain.ErrInvalidEmbargo),
		errors.Is(err, domain.ErrInvalidResourceType),
		errors.Is(err, domain.ErrInvalidAttribute):
		return http.StatusUnprocessableEntity

	// Not found
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	// Bad request
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMissingHeader),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidFilter),
		errors.Is(err, domain.ErrInvalidParameter),
		errors.Is(err, domain.ErrInvalidBody),
		errors.Is(err, domain.ErrInvalidContributor):
		return http.StatusBadRequest

	// RM API answered with an error
	case errors.As(err, &statusErr):
		return statusErr.StatusCode

	// Nothing usable came back from upstream
	case errors.Is(err, catalog.ErrNotConfigured),
		errors.Is(err, catalog.ErrUnavailable),
		errors.Is(err, rmapi.ErrTransport),
		errors.Is(err, rmapi.ErrMalformedResponse):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// ToErrorObjects renders err as JSON:API error objects safe to send to
// clients. Only validation titles and RM API messages are passed through.
func ToErrorObjects(err error) []jsonapi.ErrorObject {
	var (
		validationErr *domain.ValidationError
		headerErr     *domain.MissingHeaderError
		statusErr     *rmapi.StatusError
	)

	switch {
	case err == nil:
		return []jsonapi.ErrorObject{{Title: TitleInternalError}}

	case errors.As(err, &validationErr):
		return []jsonapi.ErrorObject{{Title: validationErr.Title, Detail: validationErr.Detail}}

	case errors.As(err, &headerErr):
		return []jsonapi.ErrorObject{{Title: headerErr.Error()}}

	case errors.As(err, &statusErr):
		msgs := statusErr.Messages()
		if len(msgs) == 0 {
			return []jsonapi.ErrorObject{{Title: TitleUpstreamFailed}}
		}
		objs := make([]jsonapi.ErrorObject, 0, len(msgs))
		for _, m := range msgs {
			objs = append(objs, jsonapi.ErrorObject{Title: m})
		}
		return objs

	case errors.Is(err, catalog.ErrNotConfigured),
		errors.Is(err, catalog.ErrUnavailable):
		return []jsonapi.ErrorObject{{Title: TitleConfigUnavailable}}

	case errors.Is(err, rmapi.ErrTransport),
		errors.Is(err, rmapi.ErrMalformedResponse):
		return []jsonapi.ErrorObject{{Title: TitleUpstreamFailed}}

	default:
		return []jsonapi.ErrorObject{{Title: TitleInternalError}}
	}
}
