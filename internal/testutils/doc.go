// Package testutils provides fakes of the upstream services (RM API and
// Okapi) and assertions for JSON:API responses, shared by handler and
// end-to-end tests.
package testutils
