// Package mutation validates package and resource updates and assembles the
// RM API request bodies for them.
//
// Checks run in a fixed order and the first failure aborts: envelope,
// identifiers, contributors, embargo, then selection gating. Nothing here
// performs I/O; the caller reads the current upstream record and hands it in
// for gating and merging.
package mutation

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/jsonapi"
)

var validate = validator.New()

// DecodeEnvelope decodes a JSON:API request body and checks that its type
// is wantType.
func DecodeEnvelope(body []byte, wantType string) (*jsonapi.InboundResource, error) {
	var doc jsonapi.InboundDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, domain.NewValidationError(domain.ErrInvalidBody, domain.TitleInvalidBody, err.Error())
	}
	if err := validate.Struct(doc); err != nil {
		return nil, domain.NewValidationError(domain.ErrInvalidBody, domain.TitleInvalidBody, err.Error())
	}
	if doc.Data.Type != wantType {
		return nil, domain.NewValidationError(domain.ErrInvalidResourceType, domain.TitleInvalidResourceType,
			fmt.Sprintf("expected type %q, got %q", wantType, doc.Data.Type))
	}
	return doc.Data, nil
}

// decodeAttributes decodes raw attributes into out. Missing attributes
// decode as an empty update.
func decodeAttributes(raw json.RawMessage, out any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.NewValidationError(domain.ErrInvalidBody, domain.TitleInvalidBody, err.Error())
	}
	return nil
}

// CoverageInput is an inbound begin/end coverage pair.
type CoverageInput struct {
	BeginCoverage string `json:"beginCoverage" validate:"omitempty,datetime=2006-01-02"`
	EndCoverage   string `json:"endCoverage" validate:"omitempty,datetime=2006-01-02"`
}

// IsZero reports whether neither date is set.
func (c CoverageInput) IsZero() bool {
	return c.BeginCoverage == "" && c.EndCoverage == ""
}

func (c CoverageInput) check() error {
	if err := validate.Struct(c); err != nil {
		return domain.NewValidationError(domain.ErrInvalidAttribute, domain.TitleInvalidCoverage, err.Error())
	}
	if c.BeginCoverage != "" && c.EndCoverage != "" && c.EndCoverage < c.BeginCoverage {
		return domain.NewValidationError(domain.ErrInvalidAttribute, domain.TitleInvalidCoverage,
			"endCoverage precedes beginCoverage")
	}
	return nil
}

// VisibilityInput is the inbound visibilityData object. Only isHidden is
// writable.
type VisibilityInput struct {
	IsHidden *bool `json:"isHidden"`
}

func (v *VisibilityInput) hides() bool {
	return v != nil && v.IsHidden != nil && *v.IsHidden
}

func (v *VisibilityInput) hidden(current bool) bool {
	if v == nil || v.IsHidden == nil {
		return current
	}
	return *v.IsHidden
}

func boolOr(v *bool, current bool) bool {
	if v == nil {
		return current
	}
	return *v
}

func stringOr(v *string, current string) string {
	if v == nil {
		return current
	}
	return *v
}
