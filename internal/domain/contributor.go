package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContributorType is a contributor's role on a title.
type ContributorType string

// Contributor roles accepted by the RM API.
const (
	ContributorAuthor      ContributorType = "Author"
	ContributorEditor      ContributorType = "Editor"
	ContributorIllustrator ContributorType = "Illustrator"
)

var titleCaser = cases.Title(language.English)

// Valid reports whether t is one of the known roles.
func (t ContributorType) Valid() bool {
	switch t {
	case ContributorAuthor, ContributorEditor, ContributorIllustrator:
		return true
	}
	return false
}

// Remote returns the lower-case form the RM API stores.
func (t ContributorType) Remote() string {
	return strings.ToLower(string(t))
}

// ContributorTypeFromRemote normalizes the RM API's lower-case role names.
// Unknown roles are passed through title-cased so reads never fail.
func ContributorTypeFromRemote(raw string) ContributorType {
	return ContributorType(titleCaser.String(strings.TrimSpace(raw)))
}

// Contributor is a validated contributor entry.
type Contributor struct {
	Type ContributorType
	Name string
}

// NewContributor validates an inbound contributor. The role must match one
// of the known roles exactly.
func NewContributor(typeName, name string) (Contributor, error) {
	t := ContributorType(typeName)
	if !t.Valid() {
		return Contributor{}, NewValidationError(ErrInvalidContributor, TitleInvalidContributorType,
			"contributor type must be one of Author, Editor, Illustrator")
	}
	if strings.TrimSpace(name) == "" {
		return Contributor{}, NewValidationError(ErrInvalidContributor, TitleInvalidContributor,
			"contributor name is required")
	}
	return Contributor{Type: t, Name: name}, nil
}
