package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/eholdings-api/internal/catalog"
	"github.com/phrazzld/eholdings-api/internal/config"
	"github.com/phrazzld/eholdings-api/internal/platform/logger"
	"github.com/phrazzld/eholdings-api/internal/platform/okapi"
	"github.com/phrazzld/eholdings-api/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	titleService    service.TitleService
	packageService  service.PackageService
	resourceService service.ResourceService
	vendorService   service.VendorService
	statusService   service.StatusService
}

// newApplication loads configuration, sets up logging and builds the
// services.
func newApplication(configPath string) (*application, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"rmapi_base_url", cfg.RMAPI.BaseURL,
		"rmapi_fallback_account", cfg.RMAPI.HasFallbackCredentials())

	return buildApplication(cfg, l)
}

// buildApplication wires the services for an already loaded config.
func buildApplication(cfg *config.Config, l *slog.Logger) (*application, error) {
	okapiClient := okapi.NewClient(
		&http.Client{Timeout: time.Duration(cfg.Okapi.TimeoutSeconds) * time.Second},
		l,
	)
	resolver := catalog.NewResolver(okapiClient, cfg.RMAPI, l)

	app := &application{config: cfg, logger: l}

	var err error
	if app.titleService, err = service.NewTitleService(resolver, l); err != nil {
		return nil, fmt.Errorf("failed to create title service: %w", err)
	}
	if app.packageService, err = service.NewPackageService(resolver, l); err != nil {
		return nil, fmt.Errorf("failed to create package service: %w", err)
	}
	if app.resourceService, err = service.NewResourceService(resolver, l); err != nil {
		return nil, fmt.Errorf("failed to create resource service: %w", err)
	}
	if app.vendorService, err = service.NewVendorService(resolver, l); err != nil {
		return nil, fmt.Errorf("failed to create vendor service: %w", err)
	}
	if app.statusService, err = service.NewStatusService(resolver, l); err != nil {
		return nil, fmt.Errorf("failed to create status service: %w", err)
	}

	return app, nil
}
