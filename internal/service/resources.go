package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/jsonapi"
	"github.com/phrazzld/eholdings-api/internal/mutation"
	"github.com/phrazzld/eholdings-api/internal/platform/rmapi"
	"github.com/phrazzld/eholdings-api/internal/transform"
)

// ResourceService serves the resources routes.
type ResourceService interface {
	// Get fetches one resource. Includes: title, package, vendor.
	Get(ctx context.Context, tenant domain.TenantContext, id string, includes []string) (jsonapi.Document, error)

	// Update applies a JSON:API resources document and returns the resource
	// as stored afterwards.
	Update(ctx context.Context, tenant domain.TenantContext, id string, body []byte) (jsonapi.Document, error)

	// Delete removes a resource from a custom package.
	Delete(ctx context.Context, tenant domain.TenantContext, id string) error
}

type resourceService struct {
	base
}

// NewResourceService creates a ResourceService.
func NewResourceService(resolver CatalogResolver, logger *slog.Logger) (ResourceService, error) {
	b, err := newBase(resolver, logger, "resource_service")
	if err != nil {
		return nil, err
	}
	return &resourceService{base: b}, nil
}

func (s *resourceService) Get(
	ctx context.Context,
	tenant domain.TenantContext,
	id string,
	includes []string,
) (jsonapi.Document, error) {
	resID, err := domain.ParseResourceID(id)
	if err != nil {
		return jsonapi.Document{}, err
	}

	cat, err := s.catalog(ctx, "get_resource", tenant)
	if err != nil {
		return jsonapi.Document{}, err
	}

	title, err := cat.GetResource(ctx, resID)
	if err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "get_resource", "fetching resource", err)
	}
	res, err := render(resID, title)
	if err != nil {
		return jsonapi.Document{}, err
	}

	var included []jsonapi.Resource
	for _, inc := range uniqueIncludes(includes) {
		switch inc {
		case transform.RelTitle:
			included = append(included, transform.Title(title))

		case transform.RelPackage:
			pkg, err := cat.GetPackage(ctx, resID.Package())
			if err != nil {
				return jsonapi.Document{}, s.upstreamFailed(ctx, "get_resource", "fetching resource package", err)
			}
			included = append(included, transform.Package(pkg))

		case transform.RelVendor:
			vendor, err := cat.GetVendor(ctx, resID.VendorID)
			if err != nil {
				return jsonapi.Document{}, s.upstreamFailed(ctx, "get_resource", "fetching resource vendor", err)
			}
			included = append(included, transform.Vendor(vendor))
		}
	}

	return jsonapi.Single(res, included), nil
}

func (s *resourceService) Update(
	ctx context.Context,
	tenant domain.TenantContext,
	id string,
	body []byte,
) (jsonapi.Document, error) {
	log := s.log(ctx)

	resID, err := domain.ParseResourceID(id)
	if err != nil {
		return jsonapi.Document{}, err
	}
	data, err := mutation.DecodeEnvelope(body, jsonapi.TypeResources)
	if err != nil {
		return jsonapi.Document{}, err
	}
	changes, err := mutation.ParseResourceUpdate(data.Attributes)
	if err != nil {
		return jsonapi.Document{}, err
	}

	cat, err := s.catalog(ctx, "update_resource", tenant)
	if err != nil {
		return jsonapi.Document{}, err
	}

	current, err := cat.GetResource(ctx, resID)
	if err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "update_resource", "fetching current resource", err)
	}

	put, err := mutation.BuildResourcePut(changes, current)
	if err != nil {
		log.Debug("resource update rejected",
			slog.String("resource_id", resID.String()),
			slog.String("error", err.Error()))
		return jsonapi.Document{}, err
	}

	if err := cat.UpdateResource(ctx, resID, put); err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "update_resource", "updating resource", err)
	}

	log.Info("resource updated",
		slog.String("resource_id", resID.String()),
		slog.Bool("is_selected", put.IsSelected))

	updated, err := cat.GetResource(ctx, resID)
	if err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "update_resource", "fetching updated resource", err)
	}
	res, err := render(resID, updated)
	if err != nil {
		return jsonapi.Document{}, err
	}
	return jsonapi.Single(res, nil), nil
}

func (s *resourceService) Delete(ctx context.Context, tenant domain.TenantContext, id string) error {
	resID, err := domain.ParseResourceID(id)
	if err != nil {
		return err
	}

	cat, err := s.catalog(ctx, "delete_resource", tenant)
	if err != nil {
		return err
	}

	if err := cat.DeleteResource(ctx, resID); err != nil {
		return s.upstreamFailed(ctx, "delete_resource", "deleting resource", err)
	}

	s.log(ctx).Info("resource deleted", slog.String("resource_id", resID.String()))
	return nil
}

func render(id domain.ResourceID, title *rmapi.Title) (jsonapi.Resource, error) {
	res, ok := transform.Resource(title)
	if !ok {
		return jsonapi.Resource{}, domain.NewValidationError(domain.ErrNotFound, domain.TitleResourceNotFound,
			fmt.Sprintf("no resource %s in rm api response", id))
	}
	return res, nil
}
