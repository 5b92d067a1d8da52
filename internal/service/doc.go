// Package service orchestrates the eholdings operations.
//
// Each service validates its inputs locally, resolves the RemoteCatalog for
// the calling tenant, performs the RM API calls in sequence and renders the
// result as a JSON:API document. Local validation always completes before the
// first outbound call, so a rejected request never reaches Okapi or the RM API.
package service
