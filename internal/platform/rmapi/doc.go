// Package rmapi is the HTTP client for the EBSCO resource-management API.
//
// A Client is bound to one set of credentials (customer id and API key) and is
// cheap to build, so a new one is created per request from the tenant's
// configuration. Every call is a single attempt: non-2xx responses come back
// as *StatusError carrying the upstream status and messages, and transport or
// decoding failures wrap ErrTransport or ErrMalformedResponse.
package rmapi
