package service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/jsonapi"
	"github.com/phrazzld/eholdings-api/internal/mutation"
	"github.com/phrazzld/eholdings-api/internal/query"
	"github.com/phrazzld/eholdings-api/internal/transform"
)

// PackageService serves the packages routes.
type PackageService interface {
	// List searches packages.
	List(ctx context.Context, tenant domain.TenantContext, params url.Values) (jsonapi.Document, error)

	// Get fetches one package. Includes (vendor, provider, customerResources)
	// are fetched one after another once the package itself has loaded.
	Get(ctx context.Context, tenant domain.TenantContext, id string, includes []string) (jsonapi.Document, error)

	// Update applies a JSON:API packages document and returns the package as
	// stored afterwards.
	Update(ctx context.Context, tenant domain.TenantContext, id string, body []byte) (jsonapi.Document, error)

	// ListCustomerResources lists the titles held in a package.
	ListCustomerResources(
		ctx context.Context,
		tenant domain.TenantContext,
		id string,
		params url.Values,
	) (jsonapi.Document, error)
}

type packageService struct {
	base
}

// NewPackageService creates a PackageService.
func NewPackageService(resolver CatalogResolver, logger *slog.Logger) (PackageService, error) {
	b, err := newBase(resolver, logger, "package_service")
	if err != nil {
		return nil, err
	}
	return &packageService{base: b}, nil
}

func (s *packageService) List(
	ctx context.Context,
	tenant domain.TenantContext,
	params url.Values,
) (jsonapi.Document, error) {
	q, err := query.Packages(params)
	if err != nil {
		return jsonapi.Document{}, err
	}

	cat, err := s.catalog(ctx, "list_packages", tenant)
	if err != nil {
		return jsonapi.Document{}, err
	}

	list, err := cat.SearchPackages(ctx, q)
	if err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "list_packages", "searching packages", err)
	}

	return jsonapi.Collection(transform.Packages(list.PackagesList), list.TotalResults), nil
}

func (s *packageService) Get(
	ctx context.Context,
	tenant domain.TenantContext,
	id string,
	includes []string,
) (jsonapi.Document, error) {
	pkgID, err := domain.ParsePackageID(id)
	if err != nil {
		return jsonapi.Document{}, err
	}

	cat, err := s.catalog(ctx, "get_package", tenant)
	if err != nil {
		return jsonapi.Document{}, err
	}

	pkg, err := cat.GetPackage(ctx, pkgID)
	if err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "get_package", "fetching package", err)
	}

	res := transform.Package(pkg)
	var included []jsonapi.Resource

	for _, inc := range uniqueIncludes(includes) {
		switch inc {
		case transform.RelVendor, transform.RelProvider:
			vendor, err := cat.GetVendor(ctx, pkg.VendorID)
			if err != nil {
				return jsonapi.Document{}, s.upstreamFailed(ctx, "get_package", "fetching package vendor", err)
			}
			included = append(included, transform.Vendor(vendor))

		case transform.RelCustomerResources:
			q, err := query.PackageTitles(nil)
			if err != nil {
				return jsonapi.Document{}, err
			}
			titles, err := cat.SearchPackageTitles(ctx, pkgID, q)
			if err != nil {
				return jsonapi.Document{}, s.upstreamFailed(ctx, "get_package", "fetching package titles", err)
			}
			members := transform.PackageCustomerResources(titles.Titles)
			res = transform.WithCustomerResources(res, members)
			included = append(included, members...)
		}
	}

	return jsonapi.Single(res, included), nil
}

func (s *packageService) Update(
	ctx context.Context,
	tenant domain.TenantContext,
	id string,
	body []byte,
) (jsonapi.Document, error) {
	log := s.log(ctx)

	pkgID, err := domain.ParsePackageID(id)
	if err != nil {
		return jsonapi.Document{}, err
	}
	data, err := mutation.DecodeEnvelope(body, jsonapi.TypePackages)
	if err != nil {
		return jsonapi.Document{}, err
	}
	update, err := mutation.ParsePackageUpdate(data.Attributes)
	if err != nil {
		return jsonapi.Document{}, err
	}

	cat, err := s.catalog(ctx, "update_package", tenant)
	if err != nil {
		return jsonapi.Document{}, err
	}

	current, err := cat.GetPackage(ctx, pkgID)
	if err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "update_package", "fetching current package", err)
	}

	put, err := mutation.BuildPackagePut(update, current)
	if err != nil {
		log.Debug("package update rejected",
			slog.String("package_id", pkgID.String()),
			slog.String("error", err.Error()))
		return jsonapi.Document{}, err
	}

	if err := cat.UpdatePackage(ctx, pkgID, put); err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "update_package", "updating package", err)
	}

	log.Info("package updated",
		slog.String("package_id", pkgID.String()),
		slog.Bool("is_selected", put.IsSelected))

	updated, err := cat.GetPackage(ctx, pkgID)
	if err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "update_package", "fetching updated package", err)
	}
	return jsonapi.Single(transform.Package(updated), nil), nil
}

func (s *packageService) ListCustomerResources(
	ctx context.Context,
	tenant domain.TenantContext,
	id string,
	params url.Values,
) (jsonapi.Document, error) {
	pkgID, err := domain.ParsePackageID(id)
	if err != nil {
		return jsonapi.Document{}, err
	}
	q, err := query.PackageTitles(params)
	if err != nil {
		return jsonapi.Document{}, err
	}

	cat, err := s.catalog(ctx, "list_package_titles", tenant)
	if err != nil {
		return jsonapi.Document{}, err
	}

	list, err := cat.SearchPackageTitles(ctx, pkgID, q)
	if err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "list_package_titles", "searching package titles", err)
	}

	return jsonapi.Collection(transform.PackageCustomerResources(list.Titles), list.TotalResults), nil
}
