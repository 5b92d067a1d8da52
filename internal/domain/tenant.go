package domain

import "fmt"

// Okapi headers identifying the calling tenant. They are checked in this order.
const (
	HeaderOkapiURL    = "X-Okapi-Url"
	HeaderOkapiTenant = "X-Okapi-Tenant"
	HeaderOkapiToken  = "X-Okapi-Token"
)

// TenantContext is the identity of the tenant a request is made on behalf of.
// It is built once per request and never mutated.
type TenantContext struct {
	URL    string
	Tenant string
	Token  string
}

// MissingHeaderError names the first absent tenant header.
type MissingHeaderError struct {
	Header string
}

// Error renders the message sent to clients, e.g. "Missing header X-OKAPI-URL".
func (e *MissingHeaderError) Error() string {
	return fmt.Sprintf("Missing header %s", e.Header)
}

// Unwrap exposes ErrMissingHeader to errors.Is.
func (e *MissingHeaderError) Unwrap() error {
	return ErrMissingHeader
}

// NewTenantContext checks the three header values in fixed precedence
// (URL, tenant, token) and returns an error naming the first empty one.
func NewTenantContext(url, tenant, token string) (TenantContext, error) {
	switch {
	case url == "":
		return TenantContext{}, &MissingHeaderError{Header: "X-OKAPI-URL"}
	case tenant == "":
		return TenantContext{}, &MissingHeaderError{Header: "X-OKAPI-TENANT"}
	case token == "":
		return TenantContext{}, &MissingHeaderError{Header: "X-OKAPI-TOKEN"}
	}
	return TenantContext{URL: url, Tenant: tenant, Token: token}, nil
}
