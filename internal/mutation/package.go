package mutation

import (
	"encoding/json"

	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/platform/rmapi"
)

// PackageUpdate is a decoded package update. nil fields were absent.
type PackageUpdate struct {
	Name               *string          `json:"name"`
	IsSelected         *bool            `json:"isSelected"`
	CustomCoverage     *CoverageInput   `json:"customCoverage"`
	VisibilityData     *VisibilityInput `json:"visibilityData"`
	AllowKbToAddTitles *bool            `json:"allowKbToAddTitles"`
}

// ParsePackageUpdate decodes and validates package attributes.
func ParsePackageUpdate(raw json.RawMessage) (PackageUpdate, error) {
	var u PackageUpdate
	if err := decodeAttributes(raw, &u); err != nil {
		return PackageUpdate{}, err
	}
	if u.CustomCoverage != nil {
		if err := u.CustomCoverage.check(); err != nil {
			return PackageUpdate{}, err
		}
	}
	if u.IsSelected != nil && !*u.IsSelected && u.requiresSelection() {
		return PackageUpdate{}, packageNotSelected()
	}
	return u, nil
}

// requiresSelection reports whether u changes a setting that only applies to
// selected packages.
func (u PackageUpdate) requiresSelection() bool {
	return (u.CustomCoverage != nil && !u.CustomCoverage.IsZero()) ||
		u.VisibilityData.hides() ||
		(u.AllowKbToAddTitles != nil && *u.AllowKbToAddTitles)
}

// BuildPackagePut gates u against the current record and returns the full
// replacement body. The effective selection is u.IsSelected when present,
// else current.IsSelected. A deselected package carries no other settings.
func BuildPackagePut(u PackageUpdate, current *rmapi.Package) (rmapi.PackagePut, error) {
	selected := boolOr(u.IsSelected, current.IsSelected)
	if !selected {
		if u.requiresSelection() {
			return rmapi.PackagePut{}, packageNotSelected()
		}
		return rmapi.PackagePut{IsSelected: false}, nil
	}

	put := rmapi.PackagePut{
		IsSelected:            true,
		AllowEbscoToAddTitles: boolOr(u.AllowKbToAddTitles, current.AllowEbscoToAddTitles),
		IsHidden:              u.VisibilityData.hidden(current.VisibilityData.IsHidden),
		CustomCoverage:        current.CustomCoverage,
	}
	if u.CustomCoverage != nil {
		put.CustomCoverage = rmapi.CoverageDates(*u.CustomCoverage)
	}
	if current.IsCustom {
		put.PackageName = stringOr(u.Name, current.PackageName)
	}
	return put, nil
}

func packageNotSelected() error {
	return domain.NewValidationError(domain.ErrNotSelected, domain.TitlePackageNotSelected,
		"customCoverage, visibilityData.isHidden and allowKbToAddTitles require a selected package")
}
