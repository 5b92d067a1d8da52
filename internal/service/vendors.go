package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/jsonapi"
	"github.com/phrazzld/eholdings-api/internal/transform"
)

// VendorService serves the vendors routes.
type VendorService interface {
	Get(ctx context.Context, tenant domain.TenantContext, id string) (jsonapi.Document, error)
}

type vendorService struct {
	base
}

// NewVendorService creates a VendorService.
func NewVendorService(resolver CatalogResolver, logger *slog.Logger) (VendorService, error) {
	b, err := newBase(resolver, logger, "vendor_service")
	if err != nil {
		return nil, err
	}
	return &vendorService{base: b}, nil
}

func (s *vendorService) Get(ctx context.Context, tenant domain.TenantContext, id string) (jsonapi.Document, error) {
	vendorID, err := domain.ParseVendorID(id)
	if err != nil {
		return jsonapi.Document{}, err
	}

	cat, err := s.catalog(ctx, "get_vendor", tenant)
	if err != nil {
		return jsonapi.Document{}, err
	}

	vendor, err := cat.GetVendor(ctx, vendorID)
	if err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "get_vendor", "fetching vendor", err)
	}
	return jsonapi.Single(transform.Vendor(vendor), nil), nil
}
