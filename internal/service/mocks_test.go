package service

import (
	"context"
	"net/url"

	"github.com/phrazzld/eholdings-api/internal/catalog"
	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/platform/rmapi"
	"github.com/stretchr/testify/mock"
)

// MockCatalog mocks catalog.RemoteCatalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) SearchTitles(ctx context.Context, q url.Values) (*rmapi.TitleList, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rmapi.TitleList), args.Error(1)
}

func (m *MockCatalog) GetTitle(ctx context.Context, titleID int) (*rmapi.Title, error) {
	args := m.Called(ctx, titleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rmapi.Title), args.Error(1)
}

func (m *MockCatalog) SearchPackages(ctx context.Context, q url.Values) (*rmapi.PackageList, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rmapi.PackageList), args.Error(1)
}

func (m *MockCatalog) GetPackage(ctx context.Context, id domain.PackageID) (*rmapi.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rmapi.Package), args.Error(1)
}

func (m *MockCatalog) UpdatePackage(ctx context.Context, id domain.PackageID, body rmapi.PackagePut) error {
	args := m.Called(ctx, id, body)
	return args.Error(0)
}

func (m *MockCatalog) SearchPackageTitles(
	ctx context.Context,
	id domain.PackageID,
	q url.Values,
) (*rmapi.TitleList, error) {
	args := m.Called(ctx, id, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rmapi.TitleList), args.Error(1)
}

func (m *MockCatalog) GetResource(ctx context.Context, id domain.ResourceID) (*rmapi.Title, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rmapi.Title), args.Error(1)
}

func (m *MockCatalog) UpdateResource(ctx context.Context, id domain.ResourceID, body rmapi.ResourcePut) error {
	args := m.Called(ctx, id, body)
	return args.Error(0)
}

func (m *MockCatalog) DeleteResource(ctx context.Context, id domain.ResourceID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalog) GetVendor(ctx context.Context, vendorID int) (*rmapi.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rmapi.Vendor), args.Error(1)
}

func (m *MockCatalog) VerifyCredentials(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockResolver mocks CatalogResolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ForTenant(ctx context.Context, tenant domain.TenantContext) (catalog.RemoteCatalog, error) {
	args := m.Called(ctx, tenant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(catalog.RemoteCatalog), args.Error(1)
}

var testTenant = domain.TenantContext{URL: "http://okapi", Tenant: "fs", Token: "tok"}

// newMocks returns a resolver that hands out the returned catalog.
func newMocks() (*MockResolver, *MockCatalog) {
	cat := new(MockCatalog)
	resolver := new(MockResolver)
	resolver.On("ForTenant", mock.Anything, testTenant).Return(cat, nil)
	return resolver, cat
}
