package testutils

import (
	"io"
	"net/http"
	"net/url"
	"sync"
	"testing"
)

// RMCall is one request seen by a FakeRM.
type RMCall struct {
	Method string
	Path   string
	Query  url.Values
	APIKey string
	Body   string
}

// FakeRM is a stand-in RM API. It records every request and answers from a
// route table keyed by method and path; unknown routes get an RM style 404.
type FakeRM struct {
	URL string

	mu     sync.Mutex
	calls  []RMCall
	routes map[string]stub
}

type stub struct {
	status int
	body   string
}

// NewFakeRM starts a FakeRM that is closed when the test ends.
func NewFakeRM(t *testing.T) *FakeRM {
	t.Helper()
	f := &FakeRM{routes: map[string]stub{}}
	f.URL = CreateTestServer(t, http.HandlerFunc(f.serve)).URL
	return f
}

// On answers method+path with status and a JSON body.
func (f *FakeRM) On(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = stub{status: status, body: body}
}

// Calls returns the requests seen so far.
func (f *FakeRM) Calls() []RMCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RMCall(nil), f.calls...)
}

// CallsWithMethod filters Calls by method.
func (f *FakeRM) CallsWithMethod(method string) []RMCall {
	var out []RMCall
	for _, c := range f.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (f *FakeRM) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls = append(f.calls, RMCall{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		APIKey: r.Header.Get("x-api-key"),
		Body:   string(body),
	})
	s, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"Errors":[{"Code":1002,"Message":"Route not stubbed","SubCode":0}]}`))
		return
	}
	w.WriteHeader(s.status)
	_, _ = w.Write([]byte(s.body))
}

// OkapiAccount is the RM API account a FakeOkapi reports for its tenant.
type OkapiAccount struct {
	CustomerID string
	APIKey     string
	URL        string
}

// NewFakeOkapi serves the configuration entries of one tenant. A nil account
// yields an empty entry list; status, when non-zero, replaces the response
// with a bare error status.
func NewFakeOkapi(t *testing.T, account *OkapiAccount, status int) string {
	t.Helper()
	return CreateTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != 0 {
			w.WriteHeader(status)
			return
		}
		if r.URL.Path != "/configurations/entries" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if account == nil {
			_, _ = w.Write([]byte(`{"configs":[],"totalRecords":0}`))
			return
		}
		_, _ = w.Write([]byte(`{"configs":[` +
			entry("kb.ebsco.customerId", account.CustomerID) + `,` +
			entry("kb.ebsco.apiKey", account.APIKey) + `,` +
			entry("kb.ebsco.url", account.URL) +
			`],"totalRecords":3}`))
	})).URL
}

func entry(code, value string) string {
	return `{"module":"EKB","configName":"api_access","code":"` + code + `","value":"` + value + `"}`
}
