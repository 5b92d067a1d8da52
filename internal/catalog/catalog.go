// Package catalog resolves the RM API account serving a tenant.
//
// Handlers never hold an RM API client of their own. Each request asks the
// Resolver for a RemoteCatalog bound to the calling tenant's credentials,
// which are read from the Okapi configuration module and fall back to the
// statically configured account.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/phrazzld/eholdings-api/internal/config"
	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/platform/okapi"
	"github.com/phrazzld/eholdings-api/internal/platform/rmapi"
	"github.com/phrazzld/eholdings-api/internal/redact"
)

var (
	// ErrNotConfigured is returned when neither the tenant nor the static
	// configuration supplies RM API credentials.
	ErrNotConfigured = errors.New("rm api credentials not configured")

	// ErrUnavailable is returned when the tenant's credentials could not be
	// read and there is no static fallback.
	ErrUnavailable = errors.New("rm api configuration unavailable")
)

// RemoteCatalog is the RM API as seen by the services.
type RemoteCatalog interface {
	SearchTitles(ctx context.Context, query url.Values) (*rmapi.TitleList, error)
	GetTitle(ctx context.Context, titleID int) (*rmapi.Title, error)
	SearchPackages(ctx context.Context, query url.Values) (*rmapi.PackageList, error)
	GetPackage(ctx context.Context, id domain.PackageID) (*rmapi.Package, error)
	UpdatePackage(ctx context.Context, id domain.PackageID, body rmapi.PackagePut) error
	SearchPackageTitles(ctx context.Context, id domain.PackageID, query url.Values) (*rmapi.TitleList, error)
	GetResource(ctx context.Context, id domain.ResourceID) (*rmapi.Title, error)
	UpdateResource(ctx context.Context, id domain.ResourceID, body rmapi.ResourcePut) error
	DeleteResource(ctx context.Context, id domain.ResourceID) error
	GetVendor(ctx context.Context, vendorID int) (*rmapi.Vendor, error)
	VerifyCredentials(ctx context.Context) error
}

// SettingsSource reads a tenant's stored RM API settings.
type SettingsSource interface {
	RMAPISettings(ctx context.Context, tenant domain.TenantContext) (okapi.RMAPISettings, error)
}

// Resolver builds a RemoteCatalog per tenant.
type Resolver struct {
	settings   SettingsSource
	fallback   config.RMAPIConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewResolver creates a Resolver. Outbound RM API calls time out after
// cfg.TimeoutSeconds.
func NewResolver(settings SettingsSource, cfg config.RMAPIConfig, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		settings:   settings,
		fallback:   cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		logger:     logger.With("component", "catalog_resolver"),
	}
}

// ForTenant returns a RemoteCatalog bound to the tenant's RM API account.
func (r *Resolver) ForTenant(ctx context.Context, tenant domain.TenantContext) (RemoteCatalog, error) {
	creds, err := r.credentials(ctx, tenant)
	if err != nil {
		return nil, err
	}

	client, err := rmapi.NewClient(creds, r.httpClient, r.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotConfigured, err)
	}
	return client, nil
}

func (r *Resolver) credentials(ctx context.Context, tenant domain.TenantContext) (rmapi.Credentials, error) {
	settings, err := r.settings.RMAPISettings(ctx, tenant)
	if err != nil {
		if !r.fallback.HasFallbackCredentials() {
			return rmapi.Credentials{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		r.logger.WarnContext(ctx, "tenant settings unavailable, using static rm api account",
			"tenant", tenant.Tenant,
			"error", redact.Error(err))
		return r.staticCredentials(), nil
	}

	if settings.Complete() {
		creds := rmapi.Credentials{
			BaseURL:    settings.URL,
			CustomerID: settings.CustomerID,
			APIKey:     settings.APIKey,
		}
		if creds.BaseURL == "" {
			creds.BaseURL = r.fallback.BaseURL
		}
		return creds, nil
	}

	if r.fallback.HasFallbackCredentials() {
		return r.staticCredentials(), nil
	}
	return rmapi.Credentials{}, ErrNotConfigured
}

func (r *Resolver) staticCredentials() rmapi.Credentials {
	return rmapi.Credentials{
		BaseURL:    r.fallback.BaseURL,
		CustomerID: r.fallback.CustomerID,
		APIKey:     r.fallback.APIKey,
	}
}
