package domain

// SelectionFilter maps a filter[selected] value to the RM API selection
// parameter.
func SelectionFilter(value string) (string, bool) {
	switch value {
	case "true":
		return "selected", true
	case "false":
		return "notselected", true
	case "ebsco":
		return "orderedthroughebsco", true
	}
	return "", false
}
