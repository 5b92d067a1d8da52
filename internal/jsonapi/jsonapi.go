// Package jsonapi holds the document shapes served by the gateway.
//
// Only the subset of JSON:API used by the eholdings routes is modeled:
// single and collection primary data, flat included arrays, relationship
// linkage, top-level meta and error objects.
package jsonapi

import (
	"encoding/json"
)

// MediaType is the content type of every document the service writes.
const MediaType = "application/vnd.api+json"

// Resource types.
const (
	TypeTitles            = "titles"
	TypePackages          = "packages"
	TypeCustomerResources = "customerResources"
	TypeResources         = "resources"
	TypeVendors           = "vendors"
	TypeStatuses          = "statuses"
)

// ResourceIdentifier is a {type, id} linkage object.
type ResourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Relationship carries either linkage data or meta.
// Data holds a *ResourceIdentifier or a []ResourceIdentifier.
type Relationship struct {
	Data any            `json:"data,omitempty"`
	Meta map[string]any `json:"meta,omitempty"`
}

// ToOne returns a relationship linking a single resource.
func ToOne(typ, id string) Relationship {
	return Relationship{Data: &ResourceIdentifier{Type: typ, ID: id}}
}

// ToMany returns a relationship linking refs. A nil slice renders as [].
func ToMany(refs []ResourceIdentifier) Relationship {
	if refs == nil {
		refs = []ResourceIdentifier{}
	}
	return Relationship{Data: refs}
}

// NotIncluded returns a relationship whose members are unknown without
// another upstream call.
func NotIncluded() Relationship {
	return Relationship{Meta: map[string]any{"included": false}}
}

// Resource is a JSON:API resource object.
type Resource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    any                     `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
}

// Ref returns the resource's identifier.
func (r Resource) Ref() ResourceIdentifier {
	return ResourceIdentifier{Type: r.Type, ID: r.ID}
}

// Document is a top-level success document.
// Data holds a Resource or a []Resource.
type Document struct {
	Data     any            `json:"data"`
	Included []Resource     `json:"included,omitempty"`
	Meta     map[string]any `json:"meta,omitempty"`
}

// Single wraps one resource.
func Single(r Resource, included []Resource) Document {
	return Document{Data: r, Included: included}
}

// Collection wraps a list with meta.totalResults. A nil slice renders as [].
func Collection(rs []Resource, totalResults int) Document {
	if rs == nil {
		rs = []Resource{}
	}
	return Document{Data: rs, Meta: map[string]any{"totalResults": totalResults}}
}

// ErrorObject is a JSON:API error.
type ErrorObject struct {
	Status string `json:"status,omitempty"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// ErrorDocument is a top-level error document.
type ErrorDocument struct {
	Errors []ErrorObject `json:"errors"`
}

// InboundDocument is the request body envelope for PUT routes.
type InboundDocument struct {
	Data *InboundResource `json:"data" validate:"required"`
}

// InboundResource keeps attributes raw so the mutation layer can tell an
// absent field from a zero value.
type InboundResource struct {
	Type       string          `json:"type" validate:"required"`
	ID         string          `json:"id,omitempty"`
	Attributes json.RawMessage `json:"attributes"`
}
