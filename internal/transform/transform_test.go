package transform

import (
	"encoding/json"
	"testing"

	"github.com/phrazzld/eholdings-api/internal/jsonapi"
	"github.com/phrazzld/eholdings-api/internal/platform/rmapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePackage() *rmapi.Package {
	return &rmapi.Package{
		PackageID:      6581,
		PackageName:    "Academic Search",
		VendorID:       19,
		VendorName:     "EBSCO",
		ContentType:    "AggregatedFullText",
		IsSelected:     true,
		TitleCount:     10,
		SelectedCount:  10,
		VisibilityData: rmapi.VisibilityData{IsHidden: true, Reason: "Hidden by EP"},
	}
}

func sampleTitle(customPackage bool) *rmapi.Title {
	return &rmapi.Title{
		TitleID:       17061524,
		TitleName:     "My Title",
		PublisherName: "Pub",
		PubType:       "ThesisDissertation",
		IdentifiersList: []rmapi.Identifier{
			{ID: "1234-5678", Type: 0, Subtype: 1},
		},
		ContributorsList: []rmapi.Contributor{{Type: "author", Contributor: "Jane"}},
		CustomerResourcesList: []rmapi.CustomerResource{
			{
				TitleID:              17061524,
				PackageID:            2845013,
				VendorID:             123355,
				IsPackageCustom:      customPackage,
				IsSelected:           true,
				URL:                  "https://example.org",
				ManagedEmbargoPeriod: rmapi.EmbargoPeriod{EmbargoUnit: "months", EmbargoValue: 6},
				VisibilityData:       rmapi.VisibilityData{Reason: "Hidden by customer"},
			},
		},
	}
}

func TestPackage(t *testing.T) {
	r := Package(samplePackage())

	assert.Equal(t, "packages", r.Type)
	assert.Equal(t, "19-6581", r.ID)

	attrs := r.Attributes.(PackageAttributes)
	assert.Equal(t, 19, attrs.VendorID)
	assert.Equal(t, 6581, attrs.PackageID)
	assert.Equal(t, "Aggregated Full Text", attrs.ContentType)
	assert.Equal(t, Visibility{IsHidden: true, Reason: "Set by system"}, attrs.VisibilityData)

	assert.Equal(t, jsonapi.ToOne("vendors", "19"), r.Relationships[RelVendor])
	assert.Equal(t, jsonapi.ToOne("vendors", "19"), r.Relationships[RelProvider])
	assert.Equal(t, jsonapi.NotIncluded(), r.Relationships[RelCustomerResources])
}

func TestUnknownContentType(t *testing.T) {
	p := samplePackage()
	p.ContentType = "Hologram"
	assert.Equal(t, "Unknown", Package(p).Attributes.(PackageAttributes).ContentType)
}

func TestWithCustomerResources(t *testing.T) {
	base := Package(samplePackage())
	members := CustomerResources(sampleTitle(false))

	r := WithCustomerResources(base, members)
	assert.Equal(t, jsonapi.ToMany([]jsonapi.ResourceIdentifier{
		{Type: "customerResources", ID: "123355-2845013-17061524"},
	}), r.Relationships[RelCustomerResources])
	// the original is left untouched
	assert.Equal(t, jsonapi.NotIncluded(), base.Relationships[RelCustomerResources])
}

func TestTitle(t *testing.T) {
	r := Title(sampleTitle(false))
	assert.Equal(t, "titles", r.Type)
	assert.Equal(t, "17061524", r.ID)

	attrs := r.Attributes.(TitleAttributes)
	assert.Equal(t, "Thesis & Dissertation", attrs.PublicationType)
	assert.Equal(t, []Identifier{{ID: "1234-5678", Type: "ISSN", Subtype: "Print"}}, attrs.Identifiers)
	assert.Equal(t, []Contributor{{Type: "Author", Contributor: "Jane"}}, attrs.Contributors)
	assert.NotNil(t, attrs.Subjects)
	assert.Empty(t, attrs.Subjects)
}

func TestCustomerResourcesHideIdentifiersInCustomPackages(t *testing.T) {
	custom := CustomerResources(sampleTitle(true))
	require.Len(t, custom, 1)
	assert.Empty(t, custom[0].Attributes.(ResourceAttributes).Identifiers)

	managed := CustomerResources(sampleTitle(false))
	require.Len(t, managed, 1)
	assert.Len(t, managed[0].Attributes.(ResourceAttributes).Identifiers, 1)

	// the resources type always carries them
	res, ok := Resource(sampleTitle(true))
	require.True(t, ok)
	assert.Equal(t, "resources", res.Type)
	assert.Len(t, res.Attributes.(ResourceAttributes).Identifiers, 1)
}

func TestResourceAttributes(t *testing.T) {
	res, ok := Resource(sampleTitle(false))
	require.True(t, ok)

	attrs := res.Attributes.(ResourceAttributes)
	assert.Equal(t, "123355-2845013", attrs.PackageID)
	assert.Equal(t, "https://example.org", attrs.URL)
	assert.Equal(t, Embargo{EmbargoUnit: "Months", EmbargoValue: 6}, attrs.ManagedEmbargoPeriod)
	assert.Equal(t, Visibility{Reason: ""}, attrs.VisibilityData)
	assert.Equal(t, jsonapi.ToOne("packages", "123355-2845013"), res.Relationships[RelPackage])

	_, ok = Resource(&rmapi.Title{TitleID: 1})
	assert.False(t, ok)
}

func TestArraysNeverNull(t *testing.T) {
	res, ok := Resource(&rmapi.Title{
		TitleID:               1,
		CustomerResourcesList: []rmapi.CustomerResource{{TitleID: 1, PackageID: 2, VendorID: 3}},
	})
	require.True(t, ok)

	raw, err := json.Marshal(res.Attributes)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"subjects", "identifiers", "contributors", "managedCoverages", "customCoverages"} {
		assert.Equal(t, []any{}, decoded[key], key)
	}
}

func TestVendorAndStatus(t *testing.T) {
	v := Vendor(&rmapi.Vendor{VendorID: 19, VendorName: "EBSCO", PackagesTotal: 3, PackagesSelected: 1})
	assert.Equal(t, "19", v.ID)
	assert.Nil(t, v.Attributes.(VendorAttributes).VendorToken)

	s := Status(true)
	assert.Equal(t, "statuses", s.Type)
	assert.True(t, s.Attributes.(StatusAttributes).IsConfigurationValid)
}
