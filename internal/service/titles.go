package service

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/jsonapi"
	"github.com/phrazzld/eholdings-api/internal/query"
	"github.com/phrazzld/eholdings-api/internal/transform"
)

// TitleService serves the titles routes.
type TitleService interface {
	// List searches titles.
	List(ctx context.Context, tenant domain.TenantContext, params url.Values) (jsonapi.Document, error)

	// Get fetches one title. The customerResources include needs no extra call.
	Get(ctx context.Context, tenant domain.TenantContext, id string, includes []string) (jsonapi.Document, error)
}

type titleService struct {
	base
}

// NewTitleService creates a TitleService.
func NewTitleService(resolver CatalogResolver, logger *slog.Logger) (TitleService, error) {
	b, err := newBase(resolver, logger, "title_service")
	if err != nil {
		return nil, err
	}
	return &titleService{base: b}, nil
}

func (s *titleService) List(
	ctx context.Context,
	tenant domain.TenantContext,
	params url.Values,
) (jsonapi.Document, error) {
	q, err := query.Titles(params)
	if err != nil {
		return jsonapi.Document{}, err
	}

	cat, err := s.catalog(ctx, "list_titles", tenant)
	if err != nil {
		return jsonapi.Document{}, err
	}

	list, err := cat.SearchTitles(ctx, q)
	if err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "list_titles", "searching titles", err)
	}

	return jsonapi.Collection(transform.Titles(list.Titles), list.TotalResults), nil
}

func (s *titleService) Get(
	ctx context.Context,
	tenant domain.TenantContext,
	id string,
	includes []string,
) (jsonapi.Document, error) {
	titleID, err := domain.ParseTitleID(id)
	if err != nil {
		return jsonapi.Document{}, err
	}

	cat, err := s.catalog(ctx, "get_title", tenant)
	if err != nil {
		return jsonapi.Document{}, err
	}

	title, err := cat.GetTitle(ctx, titleID)
	if err != nil {
		return jsonapi.Document{}, s.upstreamFailed(ctx, "get_title", "fetching title", err)
	}

	var included []jsonapi.Resource
	for _, inc := range uniqueIncludes(includes) {
		if inc == transform.RelCustomerResources {
			included = append(included, transform.CustomerResources(title)...)
		}
	}

	return jsonapi.Single(transform.Title(title), included), nil
}
