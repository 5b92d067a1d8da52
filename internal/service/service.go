package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/eholdings-api/internal/catalog"
	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/platform/logger"
	"github.com/phrazzld/eholdings-api/internal/redact"
)

// CatalogResolver returns the RemoteCatalog serving a tenant.
type CatalogResolver interface {
	ForTenant(ctx context.Context, tenant domain.TenantContext) (catalog.RemoteCatalog, error)
}

// base carries what every service needs.
type base struct {
	resolver CatalogResolver
	logger   *slog.Logger
}

func newBase(resolver CatalogResolver, log *slog.Logger, component string) (base, error) {
	if resolver == nil {
		return base{}, errors.New("catalog resolver cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return base{
		resolver: resolver,
		logger:   log.With(slog.String("component", component)),
	}, nil
}

// catalog resolves the tenant's RemoteCatalog, wrapping failures for op.
func (b base) catalog(ctx context.Context, op string, tenant domain.TenantContext) (catalog.RemoteCatalog, error) {
	cat, err := b.resolver.ForTenant(ctx, tenant)
	if err != nil {
		b.log(ctx).Error("failed to resolve rm api account",
			slog.String("operation", op),
			slog.String("error", redact.Error(err)))
		return nil, NewError(op, "resolving rm api account", err)
	}
	return cat, nil
}

func (b base) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, b.logger)
}

// upstreamFailed logs a failed RM API call and wraps it for op.
func (b base) upstreamFailed(ctx context.Context, op, message string, err error) error {
	b.log(ctx).Debug("rm api call failed",
		slog.String("operation", op),
		slog.String("error", redact.Error(err)))
	return NewError(op, message, err)
}

// uniqueIncludes drops repeated relation names, keeping request order.
func uniqueIncludes(includes []string) []string {
	seen := make(map[string]bool, len(includes))
	out := make([]string, 0, len(includes))
	for _, inc := range includes {
		if !seen[inc] {
			seen[inc] = true
			out = append(out, inc)
		}
	}
	return out
}
