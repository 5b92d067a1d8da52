package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/eholdings-api/internal/catalog"
	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/jsonapi"
	"github.com/phrazzld/eholdings-api/internal/platform/rmapi"
	"github.com/phrazzld/eholdings-api/internal/redact"
	"github.com/phrazzld/eholdings-api/internal/transform"
)

// StatusService reports whether a tenant's RM API configuration works.
type StatusService interface {
	Get(ctx context.Context, tenant domain.TenantContext) (jsonapi.Document, error)
}

type statusService struct {
	base
}

// NewStatusService creates a StatusService.
func NewStatusService(resolver CatalogResolver, logger *slog.Logger) (StatusService, error) {
	b, err := newBase(resolver, logger, "status_service")
	if err != nil {
		return nil, err
	}
	return &statusService{base: b}, nil
}

// Get reports the configuration as invalid when no credentials resolve or
// the RM API rejects them. Failing to reach either service is an error.
func (s *statusService) Get(ctx context.Context, tenant domain.TenantContext) (jsonapi.Document, error) {
	log := s.log(ctx)

	cat, err := s.resolver.ForTenant(ctx, tenant)
	switch {
	case errors.Is(err, catalog.ErrNotConfigured):
		log.Debug("rm api not configured for tenant")
		return jsonapi.Single(transform.Status(false), nil), nil
	case err != nil:
		return jsonapi.Document{}, s.upstreamFailed(ctx, "get_status", "resolving rm api account", err)
	}

	err = cat.VerifyCredentials(ctx)
	var statusErr *rmapi.StatusError
	switch {
	case err == nil:
		return jsonapi.Single(transform.Status(true), nil), nil
	case errors.As(err, &statusErr):
		log.Debug("rm api rejected credentials",
			slog.Int("status", statusErr.StatusCode),
			slog.String("error", redact.Error(err)))
		return jsonapi.Single(transform.Status(false), nil), nil
	default:
		return jsonapi.Document{}, s.upstreamFailed(ctx, "get_status", "verifying credentials", err)
	}
}
