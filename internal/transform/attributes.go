package transform

// Visibility is the rendered visibility state.
type Visibility struct {
	IsHidden bool   `json:"isHidden"`
	Reason   string `json:"reason"`
}

// Coverage is a rendered begin/end coverage pair.
type Coverage struct {
	BeginCoverage string `json:"beginCoverage"`
	EndCoverage   string `json:"endCoverage"`
}

// Embargo is a rendered embargo period.
type Embargo struct {
	EmbargoUnit  string `json:"embargoUnit"`
	EmbargoValue int    `json:"embargoValue"`
}

// Identifier is a rendered identifier with named type and subtype.
type Identifier struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
}

// Contributor is a rendered contributor.
type Contributor struct {
	Type        string `json:"type"`
	Contributor string `json:"contributor"`
}

// Subject is a rendered subject heading.
type Subject struct {
	Type    string `json:"type"`
	Subject string `json:"subject"`
}

// PackageAttributes are the attributes of a packages resource.
type PackageAttributes struct {
	Name               string     `json:"name"`
	PackageID          int        `json:"packageId"`
	VendorID           int        `json:"vendorId"`
	VendorName         string     `json:"vendorName"`
	ContentType        string     `json:"contentType"`
	PackageType        string     `json:"packageType"`
	IsCustom           bool       `json:"isCustom"`
	IsSelected         bool       `json:"isSelected"`
	TitleCount         int        `json:"titleCount"`
	SelectedCount      int        `json:"selectedCount"`
	VisibilityData     Visibility `json:"visibilityData"`
	CustomCoverage     Coverage   `json:"customCoverage"`
	AllowKbToAddTitles bool       `json:"allowKbToAddTitles"`
}

// TitleAttributes are the attributes of a titles resource.
type TitleAttributes struct {
	Name            string        `json:"name"`
	PublisherName   string        `json:"publisherName"`
	PublicationType string        `json:"publicationType"`
	IsTitleCustom   bool          `json:"isTitleCustom"`
	Edition         string        `json:"edition"`
	IsPeerReviewed  bool          `json:"isPeerReviewed"`
	Description     string        `json:"description"`
	URL             string        `json:"url"`
	Subjects        []Subject     `json:"subjects"`
	Identifiers     []Identifier  `json:"identifiers"`
	Contributors    []Contributor `json:"contributors"`
}

// ResourceAttributes are the attributes shared by customerResources and
// resources: a title as held in one package.
type ResourceAttributes struct {
	TitleAttributes

	TitleID              int        `json:"titleId"`
	PackageID            string     `json:"packageId"`
	PackageName          string     `json:"packageName"`
	PackageType          string     `json:"packageType"`
	IsPackageCustom      bool       `json:"isPackageCustom"`
	VendorID             int        `json:"vendorId"`
	VendorName           string     `json:"vendorName"`
	IsSelected           bool       `json:"isSelected"`
	IsTokenNeeded        bool       `json:"isTokenNeeded"`
	VisibilityData       Visibility `json:"visibilityData"`
	ManagedCoverages     []Coverage `json:"managedCoverages"`
	CustomCoverages      []Coverage `json:"customCoverages"`
	ManagedEmbargoPeriod Embargo    `json:"managedEmbargoPeriod"`
	CustomEmbargoPeriod  Embargo    `json:"customEmbargoPeriod"`
	CoverageStatement    string     `json:"coverageStatement"`
}

// Token is a rendered vendor token.
type Token struct {
	FactName string `json:"factName"`
	Prompt   string `json:"prompt"`
	HelpText string `json:"helpText"`
	Value    any    `json:"value"`
}

// VendorAttributes are the attributes of a vendors resource.
type VendorAttributes struct {
	Name             string `json:"name"`
	PackagesTotal    int    `json:"packagesTotal"`
	PackagesSelected int    `json:"packagesSelected"`
	VendorToken      *Token `json:"vendorToken"`
}

// StatusAttributes are the attributes of the statuses resource.
type StatusAttributes struct {
	IsConfigurationValid bool `json:"isConfigurationValid"`
}
