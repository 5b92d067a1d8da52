// Package transform renders RM API records as JSON:API resources.
package transform

import (
	"strconv"

	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/jsonapi"
	"github.com/phrazzld/eholdings-api/internal/platform/rmapi"
)

// Relationship names.
const (
	RelVendor            = "vendor"
	RelProvider          = "provider"
	RelCustomerResources = "customerResources"
	RelTitle             = "title"
	RelPackage           = "package"
)

// PackageID returns the JSON:API id of a package record.
func PackageID(p *rmapi.Package) string {
	return domain.PackageID{VendorID: p.VendorID, PackageID: p.PackageID}.String()
}

func resourceID(cr rmapi.CustomerResource) string {
	return domain.ResourceID{VendorID: cr.VendorID, PackageID: cr.PackageID, TitleID: cr.TitleID}.String()
}

func vendorRef(vendorID int) jsonapi.Relationship {
	return jsonapi.ToOne(jsonapi.TypeVendors, strconv.Itoa(vendorID))
}

// Package renders a package. Its customerResources relationship is marked
// as not included; use WithCustomerResources once the members are known.
func Package(p *rmapi.Package) jsonapi.Resource {
	vis := domain.VisibilityFromRemote(p.VisibilityData.IsHidden, p.VisibilityData.Reason)
	return jsonapi.Resource{
		Type: jsonapi.TypePackages,
		ID:   PackageID(p),
		Attributes: PackageAttributes{
			Name:               p.PackageName,
			PackageID:          p.PackageID,
			VendorID:           p.VendorID,
			VendorName:         p.VendorName,
			ContentType:        domain.ContentType(p.ContentType).Label(),
			PackageType:        p.PackageType,
			IsCustom:           p.IsCustom,
			IsSelected:         p.IsSelected,
			TitleCount:         p.TitleCount,
			SelectedCount:      p.SelectedCount,
			VisibilityData:     Visibility{IsHidden: vis.IsHidden, Reason: vis.Reason},
			CustomCoverage:     Coverage(p.CustomCoverage),
			AllowKbToAddTitles: p.AllowEbscoToAddTitles,
		},
		Relationships: map[string]jsonapi.Relationship{
			RelVendor:            vendorRef(p.VendorID),
			RelProvider:          vendorRef(p.VendorID),
			RelCustomerResources: jsonapi.NotIncluded(),
		},
	}
}

// WithCustomerResources replaces the customerResources relationship with
// linkage to members.
func WithCustomerResources(r jsonapi.Resource, members []jsonapi.Resource) jsonapi.Resource {
	refs := make([]jsonapi.ResourceIdentifier, 0, len(members))
	for _, m := range members {
		refs = append(refs, m.Ref())
	}
	rels := make(map[string]jsonapi.Relationship, len(r.Relationships))
	for k, v := range r.Relationships {
		rels[k] = v
	}
	rels[RelCustomerResources] = jsonapi.ToMany(refs)
	r.Relationships = rels
	return r
}

// Packages renders a package list.
func Packages(ps []rmapi.Package) []jsonapi.Resource {
	out := make([]jsonapi.Resource, 0, len(ps))
	for i := range ps {
		out = append(out, Package(&ps[i]))
	}
	return out
}

// Title renders a title. customerResources links every resource in the
// record.
func Title(t *rmapi.Title) jsonapi.Resource {
	refs := make([]jsonapi.ResourceIdentifier, 0, len(t.CustomerResourcesList))
	for _, cr := range t.CustomerResourcesList {
		refs = append(refs, jsonapi.ResourceIdentifier{Type: jsonapi.TypeCustomerResources, ID: resourceID(cr)})
	}

	attrs := titleAttributes(t, true)
	// A custom title has a single resource and its url is the title's.
	if t.IsTitleCustom && len(t.CustomerResourcesList) > 0 {
		attrs.URL = t.CustomerResourcesList[0].URL
	}

	return jsonapi.Resource{
		Type:       jsonapi.TypeTitles,
		ID:         strconv.Itoa(t.TitleID),
		Attributes: attrs,
		Relationships: map[string]jsonapi.Relationship{
			RelCustomerResources: jsonapi.ToMany(refs),
		},
	}
}

// Titles renders a title list.
func Titles(ts []rmapi.Title) []jsonapi.Resource {
	out := make([]jsonapi.Resource, 0, len(ts))
	for i := range ts {
		out = append(out, Title(&ts[i]))
	}
	return out
}

// CustomerResources renders every resource of a title as customerResources.
// Identifiers are left empty for resources in custom packages.
func CustomerResources(t *rmapi.Title) []jsonapi.Resource {
	out := make([]jsonapi.Resource, 0, len(t.CustomerResourcesList))
	for _, cr := range t.CustomerResourcesList {
		out = append(out, resource(jsonapi.TypeCustomerResources, t, cr, !cr.IsPackageCustom))
	}
	return out
}

// PackageCustomerResources renders the titles of a package listing as
// customerResources.
func PackageCustomerResources(ts []rmapi.Title) []jsonapi.Resource {
	out := make([]jsonapi.Resource, 0, len(ts))
	for i := range ts {
		out = append(out, CustomerResources(&ts[i])...)
	}
	return out
}

// Resource renders a title fetched through its package as a resources
// resource. ok is false when the record holds no customer resource.
func Resource(t *rmapi.Title) (jsonapi.Resource, bool) {
	if len(t.CustomerResourcesList) == 0 {
		return jsonapi.Resource{}, false
	}
	return resource(jsonapi.TypeResources, t, t.CustomerResourcesList[0], true), true
}

func resource(typ string, t *rmapi.Title, cr rmapi.CustomerResource, withIdentifiers bool) jsonapi.Resource {
	vis := domain.VisibilityFromRemote(cr.VisibilityData.IsHidden, cr.VisibilityData.Reason)
	pkgID := domain.PackageID{VendorID: cr.VendorID, PackageID: cr.PackageID}.String()

	title := titleAttributes(t, withIdentifiers)
	title.URL = cr.URL

	return jsonapi.Resource{
		Type: typ,
		ID:   resourceID(cr),
		Attributes: ResourceAttributes{
			TitleAttributes:      title,
			TitleID:              t.TitleID,
			PackageID:            pkgID,
			PackageName:          cr.PackageName,
			PackageType:          cr.PackageType,
			IsPackageCustom:      cr.IsPackageCustom,
			VendorID:             cr.VendorID,
			VendorName:           cr.VendorName,
			IsSelected:           cr.IsSelected,
			IsTokenNeeded:        cr.IsTokenNeeded,
			VisibilityData:       Visibility{IsHidden: vis.IsHidden, Reason: vis.Reason},
			ManagedCoverages:     coverages(cr.ManagedCoverageList),
			CustomCoverages:      coverages(cr.CustomCoverageList),
			ManagedEmbargoPeriod: embargo(cr.ManagedEmbargoPeriod),
			CustomEmbargoPeriod:  embargo(cr.CustomEmbargoPeriod),
			CoverageStatement:    cr.CoverageStatement,
		},
		Relationships: map[string]jsonapi.Relationship{
			RelTitle:   jsonapi.ToOne(jsonapi.TypeTitles, strconv.Itoa(t.TitleID)),
			RelPackage: jsonapi.ToOne(jsonapi.TypePackages, pkgID),
			RelVendor:  vendorRef(cr.VendorID),
		},
	}
}

// Vendor renders a vendor.
func Vendor(v *rmapi.Vendor) jsonapi.Resource {
	attrs := VendorAttributes{
		Name:             v.VendorName,
		PackagesTotal:    v.PackagesTotal,
		PackagesSelected: v.PackagesSelected,
	}
	if v.VendorToken != nil {
		tok := Token(*v.VendorToken)
		attrs.VendorToken = &tok
	}
	return jsonapi.Resource{
		Type:       jsonapi.TypeVendors,
		ID:         strconv.Itoa(v.VendorID),
		Attributes: attrs,
	}
}

// Status renders the configuration status.
func Status(valid bool) jsonapi.Resource {
	return jsonapi.Resource{
		Type:       jsonapi.TypeStatuses,
		ID:         "status",
		Attributes: StatusAttributes{IsConfigurationValid: valid},
	}
}

func titleAttributes(t *rmapi.Title, withIdentifiers bool) TitleAttributes {
	attrs := TitleAttributes{
		Name:            t.TitleName,
		PublisherName:   t.PublisherName,
		PublicationType: domain.PublicationType(t.PubType).Label(),
		IsTitleCustom:   t.IsTitleCustom,
		Edition:         t.Edition,
		IsPeerReviewed:  t.IsPeerReviewed,
		Description:     t.Description,
		Subjects:        make([]Subject, 0, len(t.SubjectsList)),
		Identifiers:     []Identifier{},
		Contributors:    make([]Contributor, 0, len(t.ContributorsList)),
	}
	for _, s := range t.SubjectsList {
		attrs.Subjects = append(attrs.Subjects, Subject(s))
	}
	for _, c := range t.ContributorsList {
		attrs.Contributors = append(attrs.Contributors, Contributor{
			Type:        string(domain.ContributorTypeFromRemote(c.Type)),
			Contributor: c.Contributor,
		})
	}
	if withIdentifiers {
		for _, id := range t.IdentifiersList {
			attrs.Identifiers = append(attrs.Identifiers, Identifier{
				ID:      id.ID,
				Type:    domain.IdentifierType(id.Type).String(),
				Subtype: domain.IdentifierSubtype(id.Subtype).String(),
			})
		}
	}
	return attrs
}

func coverages(in []rmapi.CoverageDates) []Coverage {
	out := make([]Coverage, 0, len(in))
	for _, c := range in {
		out = append(out, Coverage(c))
	}
	return out
}

func embargo(e rmapi.EmbargoPeriod) Embargo {
	return Embargo{
		EmbargoUnit:  string(domain.EmbargoUnitFromRemote(e.EmbargoUnit)),
		EmbargoValue: e.EmbargoValue,
	}
}
