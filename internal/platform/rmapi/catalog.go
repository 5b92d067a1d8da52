package rmapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/phrazzld/eholdings-api/internal/domain"
)

// SearchTitles runs a title search. query is built by the query mapper.
func (c *Client) SearchTitles(ctx context.Context, query url.Values) (*TitleList, error) {
	var out TitleList
	if err := c.do(ctx, http.MethodGet, "titles", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTitle fetches a title with every customer resource that holds it.
func (c *Client) GetTitle(ctx context.Context, titleID int) (*Title, error) {
	var out Title
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("titles/%d", titleID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchPackages runs a package search.
func (c *Client) SearchPackages(ctx context.Context, query url.Values) (*PackageList, error) {
	var out PackageList
	if err := c.do(ctx, http.MethodGet, "packages", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPackage fetches one package.
func (c *Client) GetPackage(ctx context.Context, id domain.PackageID) (*Package, error) {
	var out Package
	if err := c.do(ctx, http.MethodGet, packagePath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePackage replaces a package's tenant settings.
func (c *Client) UpdatePackage(ctx context.Context, id domain.PackageID, body PackagePut) error {
	return c.do(ctx, http.MethodPut, packagePath(id), nil, body, nil)
}

// SearchPackageTitles lists the titles held in a package.
func (c *Client) SearchPackageTitles(ctx context.Context, id domain.PackageID, query url.Values) (*TitleList, error) {
	var out TitleList
	if err := c.do(ctx, http.MethodGet, packagePath(id)+"/titles", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetResource fetches a title as held in one package.
func (c *Client) GetResource(ctx context.Context, id domain.ResourceID) (*Title, error) {
	var out Title
	if err := c.do(ctx, http.MethodGet, resourcePath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateResource replaces a resource's tenant settings.
func (c *Client) UpdateResource(ctx context.Context, id domain.ResourceID, body ResourcePut) error {
	return c.do(ctx, http.MethodPut, resourcePath(id), nil, body, nil)
}

// DeleteResource removes a resource. The RM API refuses with 400 when the
// package is not custom and answers 404 when the resource is already gone.
func (c *Client) DeleteResource(ctx context.Context, id domain.ResourceID) error {
	return c.do(ctx, http.MethodDelete, resourcePath(id), nil, nil, nil)
}

// GetVendor fetches one vendor.
func (c *Client) GetVendor(ctx context.Context, vendorID int) (*Vendor, error) {
	var out Vendor
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("vendors/%d", vendorID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyCredentials issues a minimal vendor search. It succeeds only when
// the RM API accepts the customer id and key.
func (c *Client) VerifyCredentials(ctx context.Context) error {
	query := url.Values{
		"search":  {"zz12"},
		"offset":  {"1"},
		"orderby": {"relevance"},
		"count":   {"1"},
	}
	var out VendorList
	return c.do(ctx, http.MethodGet, "vendors", query, nil, &out)
}

func packagePath(id domain.PackageID) string {
	return fmt.Sprintf("vendors/%d/packages/%d", id.VendorID, id.PackageID)
}

func resourcePath(id domain.ResourceID) string {
	return fmt.Sprintf("vendors/%d/packages/%d/titles/%d", id.VendorID, id.PackageID, id.TitleID)
}
