package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/eholdings-api/internal/domain"
)

// Key type for context values
type ContextKey string

// Context keys for various values
const (
	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"

	// TenantContextKey is the key for the domain.TenantContext of the request
	TenantContextKey ContextKey = "tenant"
)

// SetTraceID adds a fresh trace ID to the context.
// This is useful for correlating logs and error responses.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithTenant stores the tenant the request is made for.
func WithTenant(ctx context.Context, tenant domain.TenantContext) context.Context {
	return context.WithValue(ctx, TenantContextKey, tenant)
}

// GetTenant returns the tenant stored by the Okapi authenticator.
func GetTenant(ctx context.Context) (domain.TenantContext, bool) {
	tenant, ok := ctx.Value(TenantContextKey).(domain.TenantContext)
	return tenant, ok
}
