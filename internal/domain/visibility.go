package domain

import "strings"

// VisibilityReasonSystem is shown when the provider, not the tenant, hid the
// record.
const VisibilityReasonSystem = "Set by system"

// remoteReasonHiddenByEP is the RM API reason for records hidden by the
// provider's embargo/platform rules.
const remoteReasonHiddenByEP = "Hidden by EP"

// Visibility is the client-facing visibility state of a package or resource.
type Visibility struct {
	IsHidden bool
	Reason   string
}

// VisibilityFromRemote derives the client-facing state from the RM API's
// hidden flag and reason. Only the system reason survives; anything a
// customer set renders as an empty reason.
func VisibilityFromRemote(isHidden bool, reason string) Visibility {
	v := Visibility{IsHidden: isHidden}
	if strings.EqualFold(strings.TrimSpace(reason), remoteReasonHiddenByEP) {
		v.Reason = VisibilityReasonSystem
	}
	return v
}
