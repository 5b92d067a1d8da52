package mutation

import (
	"encoding/json"
	"fmt"

	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/platform/rmapi"
)

// IdentifierInput is an inbound identifier. ID stays untyped so that a JSON
// number is rejected instead of coerced.
type IdentifierInput struct {
	ID      any    `json:"id"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
}

// ContributorInput is an inbound contributor.
type ContributorInput struct {
	Type        string `json:"type"`
	Contributor string `json:"contributor"`
}

// EmbargoInput is an inbound embargo period.
type EmbargoInput struct {
	EmbargoUnit  string `json:"embargoUnit"`
	EmbargoValue int    `json:"embargoValue"`
}

// ResourceUpdate is a decoded resource update. nil fields were absent.
type ResourceUpdate struct {
	IsSelected          *bool               `json:"isSelected"`
	VisibilityData      *VisibilityInput    `json:"visibilityData"`
	CustomCoverages     *[]CoverageInput    `json:"customCoverages"`
	CoverageStatement   *string             `json:"coverageStatement"`
	CustomEmbargoPeriod *EmbargoInput       `json:"customEmbargoPeriod"`
	URL                 *string             `json:"url"`
	Name                *string             `json:"name"`
	PublisherName       *string             `json:"publisherName"`
	PublicationType     *string             `json:"publicationType"`
	Edition             *string             `json:"edition"`
	IsPeerReviewed      *bool               `json:"isPeerReviewed"`
	Description         *string             `json:"description"`
	Identifiers         *[]IdentifierInput  `json:"identifiers"`
	Contributors        *[]ContributorInput `json:"contributors"`
}

// ResourceChanges is a validated resource update ready for gating.
type ResourceChanges struct {
	update          ResourceUpdate
	identifiers     []domain.Identifier
	contributors    []domain.Contributor
	embargo         *domain.EmbargoPeriod
	publicationType domain.PublicationType
}

// ParseResourceUpdate decodes and validates resource attributes in order:
// identifiers, contributors, embargo, then the remaining vocabularies. An
// explicit deselect combined with selected-only settings is rejected here,
// without the current record.
func ParseResourceUpdate(raw json.RawMessage) (ResourceChanges, error) {
	var u ResourceUpdate
	if err := decodeAttributes(raw, &u); err != nil {
		return ResourceChanges{}, err
	}
	c := ResourceChanges{update: u}

	if u.Identifiers != nil {
		c.identifiers = make([]domain.Identifier, 0, len(*u.Identifiers))
		for _, in := range *u.Identifiers {
			id, err := domain.NewIdentifier(in.ID, in.Type, in.Subtype)
			if err != nil {
				return ResourceChanges{}, err
			}
			c.identifiers = append(c.identifiers, id)
		}
	}

	if u.Contributors != nil {
		c.contributors = make([]domain.Contributor, 0, len(*u.Contributors))
		for _, in := range *u.Contributors {
			contributor, err := domain.NewContributor(in.Type, in.Contributor)
			if err != nil {
				return ResourceChanges{}, err
			}
			c.contributors = append(c.contributors, contributor)
		}
	}

	if u.CustomEmbargoPeriod != nil {
		e, err := domain.NewEmbargoPeriod(u.CustomEmbargoPeriod.EmbargoUnit, u.CustomEmbargoPeriod.EmbargoValue)
		if err != nil {
			return ResourceChanges{}, err
		}
		c.embargo = &e
	}

	if u.CustomCoverages != nil {
		for _, cov := range *u.CustomCoverages {
			if err := cov.check(); err != nil {
				return ResourceChanges{}, err
			}
		}
	}

	if u.PublicationType != nil {
		p, err := domain.ParsePublicationLabel(*u.PublicationType)
		if err != nil {
			return ResourceChanges{}, err
		}
		c.publicationType = p
	}

	if u.IsSelected != nil && !*u.IsSelected && c.requiresSelection() {
		return ResourceChanges{}, resourceNotSelected()
	}

	return c, nil
}

func resourceNotSelected() error {
	return domain.NewValidationError(domain.ErrNotSelected, domain.TitleResourceNotSelected,
		"coverage, visibility and embargo settings require a selected resource")
}

// requiresSelection reports whether the update changes a setting that only
// applies to selected resources.
func (c ResourceChanges) requiresSelection() bool {
	u := c.update
	if u.CustomCoverages != nil {
		for _, cov := range *u.CustomCoverages {
			if !cov.IsZero() {
				return true
			}
		}
	}
	return u.VisibilityData.hides() ||
		(c.embargo != nil && c.embargo.Value > 0) ||
		(u.CoverageStatement != nil && *u.CoverageStatement != "")
}

// BuildResourcePut gates the changes against the current record and merges
// them onto it, since the RM API replaces the whole resource on PUT. Title
// fields are only sent for custom titles.
func BuildResourcePut(c ResourceChanges, current *rmapi.Title) (rmapi.ResourcePut, error) {
	if len(current.CustomerResourcesList) == 0 {
		return rmapi.ResourcePut{}, domain.NewValidationError(domain.ErrNotFound, domain.TitleResourceNotFound,
			fmt.Sprintf("title %d has no resource in this package", current.TitleID))
	}
	cr := current.CustomerResourcesList[0]
	u := c.update

	selected := boolOr(u.IsSelected, cr.IsSelected)
	if !selected && c.requiresSelection() {
		return rmapi.ResourcePut{}, resourceNotSelected()
	}

	put := rmapi.ResourcePut{
		IsSelected:          selected,
		CustomCoverageList:  []rmapi.CoverageDates{},
		CustomEmbargoPeriod: rmapi.EmbargoPeriod{},
	}
	if selected {
		put.IsHidden = u.VisibilityData.hidden(cr.VisibilityData.IsHidden)
		put.CoverageStatement = stringOr(u.CoverageStatement, cr.CoverageStatement)
		put.CustomCoverageList = mergeCoverages(u.CustomCoverages, cr.CustomCoverageList)
		put.CustomEmbargoPeriod = cr.CustomEmbargoPeriod
		if c.embargo != nil {
			put.CustomEmbargoPeriod = rmapi.EmbargoPeriod{
				EmbargoUnit:  string(c.embargo.Unit),
				EmbargoValue: c.embargo.Value,
			}
		}
	}

	if cr.IsPackageCustom || current.IsTitleCustom {
		put.URL = stringOr(u.URL, cr.URL)
	}

	if current.IsTitleCustom {
		put.CustomTitlePut = c.customTitle(current)
	}
	return put, nil
}

func (c ResourceChanges) customTitle(current *rmapi.Title) *rmapi.CustomTitlePut {
	u := c.update
	title := &rmapi.CustomTitlePut{
		TitleName:        stringOr(u.Name, current.TitleName),
		PubType:          current.PubType,
		PublisherName:    stringOr(u.PublisherName, current.PublisherName),
		IsPeerReviewed:   boolOr(u.IsPeerReviewed, current.IsPeerReviewed),
		Edition:          stringOr(u.Edition, current.Edition),
		Description:      stringOr(u.Description, current.Description),
		IdentifiersList:  current.IdentifiersList,
		ContributorsList: current.ContributorsList,
	}
	if u.PublicationType != nil {
		title.PubType = string(c.publicationType)
	}
	if c.identifiers != nil {
		title.IdentifiersList = make([]rmapi.Identifier, 0, len(c.identifiers))
		for _, id := range c.identifiers {
			title.IdentifiersList = append(title.IdentifiersList, rmapi.Identifier{
				ID:      id.ID,
				Type:    int(id.Type),
				Subtype: int(id.Subtype),
			})
		}
	}
	if c.contributors != nil {
		title.ContributorsList = make([]rmapi.Contributor, 0, len(c.contributors))
		for _, contributor := range c.contributors {
			title.ContributorsList = append(title.ContributorsList, rmapi.Contributor{
				Type:        contributor.Type.Remote(),
				Contributor: contributor.Name,
			})
		}
	}
	if title.IdentifiersList == nil {
		title.IdentifiersList = []rmapi.Identifier{}
	}
	if title.ContributorsList == nil {
		title.ContributorsList = []rmapi.Contributor{}
	}
	return title
}

func mergeCoverages(update *[]CoverageInput, current []rmapi.CoverageDates) []rmapi.CoverageDates {
	if update == nil {
		if current == nil {
			return []rmapi.CoverageDates{}
		}
		return current
	}
	out := make([]rmapi.CoverageDates, 0, len(*update))
	for _, cov := range *update {
		if cov.IsZero() {
			continue
		}
		out = append(out, rmapi.CoverageDates(cov))
	}
	return out
}
