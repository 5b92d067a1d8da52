package rmapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrTransport wraps failures to reach the RM API at all.
	ErrTransport = errors.New("rm api request failed")

	// ErrMalformedResponse wraps 2xx responses whose body cannot be decoded.
	ErrMalformedResponse = errors.New("rm api response malformed")
)

// ErrorEntry is one entry of the RM API error envelope.
type ErrorEntry struct {
	Code    int    `json:"Code"`
	Message string `json:"Message"`
	SubCode int    `json:"SubCode"`
}

// StatusError is a non-2xx RM API response.
type StatusError struct {
	StatusCode int
	Entries    []ErrorEntry
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	msgs := e.Messages()
	if len(msgs) == 0 {
		return fmt.Sprintf("rm api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("rm api returned status %d: %s", e.StatusCode, strings.Join(msgs, "; "))
}

// Messages returns the non-empty upstream messages. When the body carried
// none, it falls back to the status text.
func (e *StatusError) Messages() []string {
	msgs := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		if m := strings.TrimSpace(entry.Message); m != "" {
			msgs = append(msgs, m)
		}
	}
	if len(msgs) == 0 {
		if text := http.StatusText(e.StatusCode); text != "" {
			msgs = append(msgs, text)
		}
	}
	return msgs
}

// newStatusError decodes the error body. The RM API uses
// {"Errors":[{"Code","Message","SubCode"}]} but a bare {"Message"} object and
// a bare array of entries also occur.
func newStatusError(status int, body []byte) *StatusError {
	se := &StatusError{StatusCode: status}

	var envelope struct {
		Errors  []ErrorEntry `json:"Errors"`
		Message string       `json:"Message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		se.Entries = envelope.Errors
		if len(se.Entries) == 0 && envelope.Message != "" {
			se.Entries = []ErrorEntry{{Message: envelope.Message}}
		}
		return se
	}

	var entries []ErrorEntry
	if err := json.Unmarshal(body, &entries); err == nil {
		se.Entries = entries
	}
	return se
}
