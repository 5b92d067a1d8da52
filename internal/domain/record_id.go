package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// PackageID identifies a package as "{vendorId}-{packageId}".
type PackageID struct {
	VendorID  int
	PackageID int
}

// String renders the JSON:API id.
func (id PackageID) String() string {
	return fmt.Sprintf("%d-%d", id.VendorID, id.PackageID)
}

// ResourceID identifies a title held in a package as
// "{vendorId}-{packageId}-{titleId}".
type ResourceID struct {
	VendorID  int
	PackageID int
	TitleID   int
}

// String renders the JSON:API id.
func (id ResourceID) String() string {
	return fmt.Sprintf("%d-%d-%d", id.VendorID, id.PackageID, id.TitleID)
}

// Package returns the id of the package holding the resource.
func (id ResourceID) Package() PackageID {
	return PackageID{VendorID: id.VendorID, PackageID: id.PackageID}
}

// ParsePackageID parses "{vendorId}-{packageId}".
func ParsePackageID(raw string) (PackageID, error) {
	parts, err := splitNumericID(raw, 2)
	if err != nil {
		return PackageID{}, NewValidationError(ErrInvalidID, TitleInvalidPackageID, err.Error())
	}
	return PackageID{VendorID: parts[0], PackageID: parts[1]}, nil
}

// ParseResourceID parses "{vendorId}-{packageId}-{titleId}".
func ParseResourceID(raw string) (ResourceID, error) {
	parts, err := splitNumericID(raw, 3)
	if err != nil {
		return ResourceID{}, NewValidationError(ErrInvalidID, TitleInvalidResourceID, err.Error())
	}
	return ResourceID{VendorID: parts[0], PackageID: parts[1], TitleID: parts[2]}, nil
}

// ParseTitleID parses a bare numeric title id.
func ParseTitleID(raw string) (int, error) {
	parts, err := splitNumericID(raw, 1)
	if err != nil {
		return 0, NewValidationError(ErrInvalidID, TitleInvalidTitleID, err.Error())
	}
	return parts[0], nil
}

// ParseVendorID parses a bare numeric vendor id.
func ParseVendorID(raw string) (int, error) {
	parts, err := splitNumericID(raw, 1)
	if err != nil {
		return 0, NewValidationError(ErrInvalidID, TitleInvalidVendorID, err.Error())
	}
	return parts[0], nil
}

func splitNumericID(raw string, want int) ([]int, error) {
	segments := strings.Split(raw, "-")
	if len(segments) != want {
		return nil, fmt.Errorf("id %q must have %d dash-separated parts", raw, want)
	}
	out := make([]int, want)
	for i, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("id %q has non-numeric part %q", raw, seg)
		}
		out[i] = n
	}
	return out, nil
}
