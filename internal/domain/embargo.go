package domain

import "strings"

// EmbargoUnit is the unit of an embargo period.
type EmbargoUnit string

// Embargo units accepted by the RM API.
const (
	EmbargoDays   EmbargoUnit = "Days"
	EmbargoWeeks  EmbargoUnit = "Weeks"
	EmbargoMonths EmbargoUnit = "Months"
	EmbargoYears  EmbargoUnit = "Years"
)

// Valid reports whether u is a known unit.
func (u EmbargoUnit) Valid() bool {
	switch u {
	case EmbargoDays, EmbargoWeeks, EmbargoMonths, EmbargoYears:
		return true
	}
	return false
}

// EmbargoUnitFromRemote normalizes the RM API's unit names.
func EmbargoUnitFromRemote(raw string) EmbargoUnit {
	if raw == "" {
		return ""
	}
	return EmbargoUnit(titleCaser.String(strings.TrimSpace(raw)))
}

// EmbargoPeriod delays access to the most recent content of a resource.
type EmbargoPeriod struct {
	Unit  EmbargoUnit
	Value int
}

// NewEmbargoPeriod validates an inbound embargo period. An empty unit is
// only allowed together with a zero value, which clears the embargo.
func NewEmbargoPeriod(unit string, value int) (EmbargoPeriod, error) {
	if value < 0 {
		return EmbargoPeriod{}, NewValidationError(ErrInvalidEmbargo, TitleInvalidEmbargoValue,
			"embargo value must not be negative")
	}
	u := EmbargoUnit(unit)
	if u == "" && value == 0 {
		return EmbargoPeriod{}, nil
	}
	if !u.Valid() {
		return EmbargoPeriod{}, NewValidationError(ErrInvalidEmbargo, TitleInvalidEmbargoUnit,
			"embargo unit must be one of Days, Weeks, Months, Years")
	}
	return EmbargoPeriod{Unit: u, Value: value}, nil
}
