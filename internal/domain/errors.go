package domain

import (
	"errors"
	"fmt"
)

// Error kinds. A ValidationError always wraps exactly one of these so the API
// layer can pick a status code with errors.Is.
var (
	// ErrValidation is the generic kind for malformed input. Maps to 400.
	ErrValidation = errors.New("validation failed")

	// ErrMissingHeader is returned when a required tenant header is absent.
	ErrMissingHeader = errors.New("missing tenant header")

	// ErrInvalidID is returned when a path id does not have the expected
	// vendor/package/title shape. Maps to 400.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidFilter is returned for unknown filter keys or values. Maps to 400.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidParameter is returned for malformed sort/page/count values. Maps to 400.
	ErrInvalidParameter = errors.New("invalid query parameter")

	// ErrInvalidBody is returned when a request body cannot be decoded. Maps to 400.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrInvalidContributor is returned for contributor entries outside the
	// contributor vocabulary. Maps to 400.
	ErrInvalidContributor = errors.New("invalid contributor")

	// ErrInvalidIdentifier is returned for identifier entries that fail the id,
	// type or subtype checks. Maps to 422.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidEmbargo is returned for embargo periods with an unknown unit or
	// a negative value. Maps to 422.
	ErrInvalidEmbargo = errors.New("invalid embargo period")

	// ErrInvalidResourceType is returned when a JSON:API body names a type
	// other than the one the endpoint accepts. Maps to 422.
	ErrInvalidResourceType = errors.New("invalid resource type")

	// ErrInvalidAttribute is returned for update attributes outside their
	// vocabulary, such as an unknown publication type. Maps to 422.
	ErrInvalidAttribute = errors.New("invalid attribute")

	// ErrNotSelected is returned when an update changes a setting that only
	// applies to selected packages or resources. Maps to 422.
	ErrNotSelected = errors.New("selection required")

	// ErrNotFound is returned when an upstream record lacks the part the
	// request addressed. Maps to 404.
	ErrNotFound = errors.New("not found")
)

// Error titles surfaced in JSON:API error objects. Clients match on these.
const (
	TitleInvalidFilter            = "Invalid filter parameter"
	TitleInvalidSort              = "Invalid sort parameter"
	TitleInvalidPage              = "Invalid page parameter"
	TitleInvalidCount             = "Invalid count parameter"
	TitleInvalidOffset            = "Invalid offset parameter"
	TitleInvalidSearchField       = "Invalid searchfield parameter"
	TitleInvalidBody              = "Invalid request body"
	TitleInvalidResourceType      = "Invalid resource type"
	TitleInvalidPackageID         = "Invalid package id"
	TitleInvalidResourceID        = "Invalid resource id"
	TitleInvalidTitleID           = "Invalid title id"
	TitleInvalidVendorID          = "Invalid vendor id"
	TitleInvalidIdentifierID      = "Invalid IdentifierId"
	TitleInvalidIdentifierType    = "Invalid IdentifierType"
	TitleInvalidIdentifierSubType = "Invalid IdentifierSubType"
	TitleInvalidContributorType   = "Invalid ContributorType"
	TitleInvalidContributor       = "Invalid Contributor"
	TitleInvalidEmbargoUnit       = "Invalid EmbargoUnit"
	TitleInvalidEmbargoValue      = "Invalid EmbargoValue"
	TitleInvalidPublicationType   = "Invalid PublicationType"
	TitleInvalidCoverage          = "Invalid Coverage"
	TitlePackageNotSelected       = "Package is not selected"
	TitleResourceNotSelected      = "Resource is not selected"
	TitleResourceNotFound         = "Resource not found"
)

// ValidationError describes locally detected bad input. Title is the client
// facing error title; Kind selects the status code.
type ValidationError struct {
	Title  string
	Detail string
	Kind   error
}

// NewValidationError creates a ValidationError of the given kind.
func NewValidationError(kind error, title, detail string) *ValidationError {
	return &ValidationError{Title: title, Detail: detail, Kind: kind}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Title)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Title, e.Detail)
}

// Unwrap exposes the kind to errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}
