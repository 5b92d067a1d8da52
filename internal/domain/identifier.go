package domain

import "unicode/utf8"

// IdentifierType is the RM API code for an identifier scheme.
type IdentifierType int

// Identifier types known to the RM API.
const (
	IdentifierISSN IdentifierType = iota
	IdentifierISBN
	IdentifierTSDID
	IdentifierSPID
	IdentifierEjsJournalID
	IdentifierNewsbankDocID
	IdentifierZDBID
	IdentifierEPBookID
	IdentifierMid
	IdentifierBHM
)

var identifierTypes = []IdentifierType{
	IdentifierISSN, IdentifierISBN, IdentifierTSDID, IdentifierSPID,
	IdentifierEjsJournalID, IdentifierNewsbankDocID, IdentifierZDBID,
	IdentifierEPBookID, IdentifierMid, IdentifierBHM,
}

// String returns the client-facing name, or "" for an unknown code.
func (t IdentifierType) String() string {
	switch t {
	case IdentifierISSN:
		return "ISSN"
	case IdentifierISBN:
		return "ISBN"
	case IdentifierTSDID:
		return "TSDID"
	case IdentifierSPID:
		return "SPID"
	case IdentifierEjsJournalID:
		return "EjsJournalID"
	case IdentifierNewsbankDocID:
		return "NewsbankDocID"
	case IdentifierZDBID:
		return "ZDBID"
	case IdentifierEPBookID:
		return "EPBookID"
	case IdentifierMid:
		return "Mid"
	case IdentifierBHM:
		return "BHM"
	}
	return ""
}

// Editable reports whether tenants may attach identifiers of this type to a
// custom title.
func (t IdentifierType) Editable() bool {
	switch t {
	case IdentifierISSN, IdentifierISBN:
		return true
	}
	return false
}

// ParseIdentifierType resolves a client-facing name. Matching is exact.
func ParseIdentifierType(name string) (IdentifierType, bool) {
	for _, t := range identifierTypes {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// IdentifierSubtype is the RM API code for an identifier's format.
type IdentifierSubtype int

// Identifier subtypes known to the RM API. The gap before Unspecified is the
// RM API's own numbering.
const (
	SubtypeEmpty       IdentifierSubtype = 0
	SubtypePrint       IdentifierSubtype = 1
	SubtypeOnline      IdentifierSubtype = 2
	SubtypePreferred   IdentifierSubtype = 3
	SubtypeUnspecified IdentifierSubtype = 7
)

var identifierSubtypes = []IdentifierSubtype{
	SubtypeEmpty, SubtypePrint, SubtypeOnline, SubtypePreferred, SubtypeUnspecified,
}

// String returns the client-facing name, or "" for an unknown code.
func (s IdentifierSubtype) String() string {
	switch s {
	case SubtypeEmpty:
		return "Empty"
	case SubtypePrint:
		return "Print"
	case SubtypeOnline:
		return "Online"
	case SubtypePreferred:
		return "Preferred"
	case SubtypeUnspecified:
		return "Unspecified"
	}
	return ""
}

// Editable reports whether tenants may set this subtype on a custom title.
func (s IdentifierSubtype) Editable() bool {
	switch s {
	case SubtypePrint, SubtypeOnline:
		return true
	}
	return false
}

// ParseIdentifierSubtype resolves a client-facing name. Matching is exact.
func ParseIdentifierSubtype(name string) (IdentifierSubtype, bool) {
	for _, s := range identifierSubtypes {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// MaxIdentifierIDLength bounds the identifier value accepted on updates.
const MaxIdentifierIDLength = 20

// Identifier is a validated identifier attached to a title.
type Identifier struct {
	ID      string
	Type    IdentifierType
	Subtype IdentifierSubtype
}

// NewIdentifier validates an inbound identifier. id is the decoded JSON value
// so that numbers are rejected rather than coerced to strings.
func NewIdentifier(id any, typeName, subtypeName string) (Identifier, error) {
	value, ok := id.(string)
	if !ok || value == "" || utf8.RuneCountInString(value) > MaxIdentifierIDLength {
		return Identifier{}, NewValidationError(ErrInvalidIdentifier, TitleInvalidIdentifierID,
			"identifier id must be a string of 1 to 20 characters")
	}

	t, ok := ParseIdentifierType(typeName)
	if !ok || !t.Editable() {
		return Identifier{}, NewValidationError(ErrInvalidIdentifier, TitleInvalidIdentifierType,
			"identifier type must be ISSN or ISBN")
	}

	s, ok := ParseIdentifierSubtype(subtypeName)
	if !ok || !s.Editable() {
		return Identifier{}, NewValidationError(ErrInvalidIdentifier, TitleInvalidIdentifierSubType,
			"identifier subtype must be Print or Online")
	}

	return Identifier{ID: value, Type: t, Subtype: s}, nil
}
