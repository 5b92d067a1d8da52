package rmapi

// VisibilityData is the hidden flag and reason the RM API stores on packages
// and resources.
type VisibilityData struct {
	IsHidden bool   `json:"isHidden"`
	Reason   string `json:"reason"`
}

// CoverageDates is a begin/end pair in YYYY-MM-DD form. Either side may be
// empty.
type CoverageDates struct {
	BeginCoverage string `json:"beginCoverage"`
	EndCoverage   string `json:"endCoverage"`
}

// IsZero reports whether neither date is set.
func (c CoverageDates) IsZero() bool {
	return c.BeginCoverage == "" && c.EndCoverage == ""
}

// EmbargoPeriod is the RM API embargo representation.
type EmbargoPeriod struct {
	EmbargoUnit  string `json:"embargoUnit"`
	EmbargoValue int    `json:"embargoValue"`
}

// Identifier is an identifier with numeric type and subtype codes.
type Identifier struct {
	ID      string `json:"id"`
	Type    int    `json:"type"`
	Subtype int    `json:"subtype"`
}

// Contributor is a contributor with the RM API's lower-case role.
type Contributor struct {
	Type        string `json:"type"`
	Contributor string `json:"contributor"`
}

// Subject is a subject heading with its thesaurus.
type Subject struct {
	Type    string `json:"type"`
	Subject string `json:"subject"`
}

// Package is a package record.
type Package struct {
	PackageID             int            `json:"packageId"`
	PackageName           string         `json:"packageName"`
	VendorID              int            `json:"vendorId"`
	VendorName            string         `json:"vendorName"`
	IsCustom              bool           `json:"isCustom"`
	TitleCount            int            `json:"titleCount"`
	IsSelected            bool           `json:"isSelected"`
	SelectedCount         int            `json:"selectedCount"`
	ContentType           string         `json:"contentType"`
	VisibilityData        VisibilityData `json:"visibilityData"`
	CustomCoverage        CoverageDates  `json:"customCoverage"`
	AllowEbscoToAddTitles bool           `json:"allowEbscoToAddTitles"`
	PackageType           string         `json:"packageType"`
}

// PackageList is the envelope of a package search.
type PackageList struct {
	TotalResults int       `json:"totalResults"`
	PackagesList []Package `json:"packagesList"`
}

// CustomerResource is a title as held in one package.
type CustomerResource struct {
	TitleID              int             `json:"titleId"`
	PackageID            int             `json:"packageId"`
	PackageName          string          `json:"packageName"`
	PackageType          string          `json:"packageType"`
	IsPackageCustom      bool            `json:"isPackageCustom"`
	VendorID             int             `json:"vendorId"`
	VendorName           string          `json:"vendorName"`
	LocationID           int             `json:"locationId"`
	IsSelected           bool            `json:"isSelected"`
	IsTokenNeeded        bool            `json:"isTokenNeeded"`
	VisibilityData       VisibilityData  `json:"visibilityData"`
	ManagedCoverageList  []CoverageDates `json:"managedCoverageList"`
	CustomCoverageList   []CoverageDates `json:"customCoverageList"`
	CoverageStatement    string          `json:"coverageStatement"`
	ManagedEmbargoPeriod EmbargoPeriod   `json:"managedEmbargoPeriod"`
	CustomEmbargoPeriod  EmbargoPeriod   `json:"customEmbargoPeriod"`
	URL                  string          `json:"url"`
}

// Title is a title record. When fetched through a package the
// CustomerResourcesList holds exactly the one resource in that package.
type Title struct {
	TitleID               int                `json:"titleId"`
	TitleName             string             `json:"titleName"`
	PublisherName         string             `json:"publisherName"`
	IdentifiersList       []Identifier       `json:"identifiersList"`
	SubjectsList          []Subject          `json:"subjectsList"`
	ContributorsList      []Contributor      `json:"contributorsList"`
	IsTitleCustom         bool               `json:"isTitleCustom"`
	PubType               string             `json:"pubType"`
	Edition               string             `json:"edition"`
	IsPeerReviewed        bool               `json:"isPeerReviewed"`
	Description           string             `json:"description"`
	CustomerResourcesList []CustomerResource `json:"customerResourcesList"`
}

// TitleList is the envelope of a title search.
type TitleList struct {
	TotalResults int     `json:"totalResults"`
	Titles       []Title `json:"titles"`
}

// VendorToken describes the token a vendor requires before activation.
type VendorToken struct {
	FactName string `json:"factName"`
	Prompt   string `json:"prompt"`
	HelpText string `json:"helpText"`
	Value    any    `json:"value"`
}

// Vendor is a vendor (provider) record.
type Vendor struct {
	VendorID         int          `json:"vendorId"`
	VendorName       string       `json:"vendorName"`
	PackagesTotal    int          `json:"packagesTotal"`
	PackagesSelected int          `json:"packagesSelected"`
	IsCustomer       bool         `json:"isCustomer"`
	VendorToken      *VendorToken `json:"vendorToken"`
}

// VendorList is the envelope of a vendor search.
type VendorList struct {
	TotalResults int      `json:"totalResults"`
	Vendors      []Vendor `json:"vendors"`
}

// PackagePut is the full-replacement body of a package update.
type PackagePut struct {
	IsSelected            bool          `json:"isSelected"`
	AllowEbscoToAddTitles bool          `json:"allowEbscoToAddTitles"`
	IsHidden              bool          `json:"isHidden"`
	CustomCoverage        CoverageDates `json:"customCoverage"`
	PackageName           string        `json:"packageName,omitempty"`
}

// ResourcePut is the full-replacement body of a resource update. The
// embedded CustomTitlePut is only sent for custom titles.
type ResourcePut struct {
	IsSelected          bool            `json:"isSelected"`
	IsHidden            bool            `json:"isHidden"`
	CustomCoverageList  []CoverageDates `json:"customCoverageList"`
	CoverageStatement   string          `json:"coverageStatement"`
	CustomEmbargoPeriod EmbargoPeriod   `json:"customEmbargoPeriod"`
	URL                 string          `json:"url,omitempty"`
	*CustomTitlePut
}

// CustomTitlePut holds the title-level fields editable on custom titles.
type CustomTitlePut struct {
	TitleName        string        `json:"titleName"`
	PubType          string        `json:"pubType"`
	PublisherName    string        `json:"publisherName"`
	IsPeerReviewed   bool          `json:"isPeerReviewed"`
	Edition          string        `json:"edition"`
	Description      string        `json:"description"`
	IdentifiersList  []Identifier  `json:"identifiersList"`
	ContributorsList []Contributor `json:"contributorsList"`
}
