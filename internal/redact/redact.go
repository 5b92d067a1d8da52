// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. RM API keys, customer ids embedded in RM API paths,
// Okapi tokens and upstream hosts all travel through error messages produced by
// the outbound HTTP clients, so every error logged by a handler passes through Error.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder        = "[REDACTED]"
	RedactedKeyPlaceholder      = "[REDACTED_KEY]"
	RedactedTokenPlaceholder    = "[REDACTED_TOKEN]"
	RedactedJWTPlaceholder      = "[REDACTED_JWT]"
	RedactedCustomerPlaceholder = "[REDACTED_CUSTOMER]"
	RedactedHostPlaceholder     = "[REDACTED_HOST]"
	RedactedEmailPlaceholder    = "[REDACTED_EMAIL]"
	StackTracePlaceholder       = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// Rules run in order; later rules see the output of earlier ones.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		replacement: StackTracePlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		replacement: RedactedJWTPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(x-okapi-token)(["'\s:=]+)[^\s"',&]+`),
		replacement: "${1}${2}" + RedactedTokenPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(x-api-key|api[_-]?key)(["'\s:=]+)[A-Za-z0-9_\-.~+/]{4,}`),
		replacement: "${1}${2}" + RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(rmaccounts/)[^/\s"'?]+`),
		replacement: "${1}" + RedactedCustomerPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(customer[_-]?id)(["'\s:=]+)[A-Za-z0-9_.\-]+`),
		replacement: "${1}${2}" + RedactedCustomerPlaceholder,
	},
	{
		// userinfo is swallowed along with the host
		pattern:     regexp.MustCompile(`(?i)(https?://)[^/\s"'?#]+`),
		replacement: "${1}" + RedactedHostPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		replacement: RedactedEmailPlaceholder,
	},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
