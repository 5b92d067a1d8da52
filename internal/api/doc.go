// Package api handles the /eholdings HTTP routes. Handlers read the tenant
// stored by the Okapi middleware, call the services and write JSON:API
// documents. Error mapping to status codes and error objects lives in
// errors.go.
package api
