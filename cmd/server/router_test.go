package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/eholdings-api/internal/config"
	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tenantAccount is the RM API account the fake Okapi reports for "diku".
func tenantAccount(rm *testutils.FakeRM) *testutils.OkapiAccount {
	return &testutils.OkapiAccount{CustomerID: "apidvcorp", APIKey: "tenant-key", URL: rm.URL}
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "debug", ShutdownTimeoutSeconds: 1},
		RMAPI:  config.RMAPIConfig{BaseURL: "http://127.0.0.1:1", TimeoutSeconds: 5},
		Okapi:  config.OkapiConfig{TimeoutSeconds: 5},
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	app, err := buildApplication(cfg, slog.New(slog.NewJSONHandler(io.Discard, nil)))
	require.NoError(t, err)
	return app.setupRouter()
}

func tenantRequest(method, target, okapiURL string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(domain.HeaderOkapiURL, okapiURL)
	req.Header.Set(domain.HeaderOkapiTenant, "diku")
	req.Header.Set(domain.HeaderOkapiToken, "okapi-token")
	return req
}

func TestMissingTenantHeaderNeverCallsUpstream(t *testing.T) {
	rm := testutils.NewFakeRM(t)
	okapi := testutils.NewFakeOkapi(t, tenantAccount(rm), 0)
	router := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/eholdings/titles", nil)
	req.Header.Set(domain.HeaderOkapiURL, okapi)
	req.Header.Set(domain.HeaderOkapiTenant, "diku")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing header X-OKAPI-TOKEN", rec.Body.String())
	assert.Empty(t, rm.Calls())
}

func TestListTitlesUsesTenantAccount(t *testing.T) {
	rm := testutils.NewFakeRM(t)
	rm.On(http.MethodGet, "/rm/rmaccounts/apidvcorp/titles", http.StatusOK, `{
		"totalResults": 1,
		"titles": [{"titleId": 12345, "titleName": "Ebsco Journal", "pubType": "Journal", "customerResourcesList": []}]
	}`)
	okapi := testutils.NewFakeOkapi(t, tenantAccount(rm), 0)
	router := newTestRouter(t, testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, tenantRequest(http.MethodGet, "/eholdings/titles?q=ebsco", okapi, nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/vnd.api+json", rec.Header().Get("Content-Type"))

	doc := testutils.DecodeJSON(t, rec)
	assert.Equal(t, float64(1), doc["meta"].(map[string]any)["totalResults"])
	data := doc["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "titles", data[0].(map[string]any)["type"])
	assert.Equal(t, "12345", data[0].(map[string]any)["id"])

	calls := rm.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "tenant-key", calls[0].APIKey)
	assert.Equal(t, "ebsco", calls[0].Query.Get("search"))
	assert.Equal(t, "relevance", calls[0].Query.Get("orderby"))
	assert.Equal(t, "titlename", calls[0].Query.Get("searchfield"))
	assert.Equal(t, "25", calls[0].Query.Get("count"))
	assert.Equal(t, "1", calls[0].Query.Get("offset"))
}

func TestInvalidInputNeverCallsUpstream(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
		status int
		title  string
	}{
		{"unknown package filter", http.MethodGet, "/eholdings/packages?filter[bogus]=x", "", http.StatusBadRequest, "Invalid filter parameter"},
		{"bad package id", http.MethodGet, "/eholdings/packages/abc", "", http.StatusBadRequest, "Invalid package id"},
		{"bad resource id", http.MethodDelete, "/eholdings/resources/19-1", "", http.StatusBadRequest, "Invalid resource id"},
		{"bad count", http.MethodGet, "/eholdings/titles?count=0", "", http.StatusBadRequest, "Invalid count parameter"},
		{"wrong body type", http.MethodPut, "/eholdings/packages/19-1", `{"data":{"type":"titles","attributes":{}}}`, http.StatusUnprocessableEntity, "Invalid resource type"},
		{"bad identifier type", http.MethodPut, "/eholdings/resources/19-1-5",
			`{"data":{"type":"resources","attributes":{"identifiers":[{"id":"1234-5678","type":"DOI","subtype":"Print"}]}}}`,
			http.StatusUnprocessableEntity, "Invalid IdentifierType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := testutils.NewFakeRM(t)
			okapi := testutils.NewFakeOkapi(t, tenantAccount(rm), 0)
			router := newTestRouter(t, testConfig())

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, tenantRequest(tt.method, tt.target, okapi, body))

			testutils.AssertErrorResponse(t, rec, tt.status, tt.title)
			assert.Empty(t, rm.Calls())
		})
	}
}

func TestHidingUnselectedPackageIsRejected(t *testing.T) {
	rm := testutils.NewFakeRM(t)
	rm.On(http.MethodGet, "/rm/rmaccounts/apidvcorp/vendors/19/packages/1", http.StatusOK, `{
		"packageId": 1, "vendorId": 19, "packageName": "Ebsco Package", "isSelected": false
	}`)
	okapi := testutils.NewFakeOkapi(t, tenantAccount(rm), 0)
	router := newTestRouter(t, testConfig())

	body := `{"data":{"type":"packages","attributes":{"visibilityData":{"isHidden":true}}}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, tenantRequest(http.MethodPut, "/eholdings/packages/19-1", okapi, strings.NewReader(body)))

	testutils.AssertErrorResponse(t, rec, http.StatusUnprocessableEntity, "Package is not selected")
	assert.Empty(t, rm.CallsWithMethod(http.MethodPut))
}

func TestSelectPackageSendsFullBody(t *testing.T) {
	rm := testutils.NewFakeRM(t)
	rm.On(http.MethodGet, "/rm/rmaccounts/apidvcorp/vendors/19/packages/1", http.StatusOK, `{
		"packageId": 1, "vendorId": 19, "packageName": "Ebsco Package", "isSelected": false,
		"customCoverage": {"beginCoverage": "", "endCoverage": ""}
	}`)
	rm.On(http.MethodPut, "/rm/rmaccounts/apidvcorp/vendors/19/packages/1", http.StatusNoContent, "")
	okapi := testutils.NewFakeOkapi(t, tenantAccount(rm), 0)
	router := newTestRouter(t, testConfig())

	body := `{"data":{"type":"packages","attributes":{"isSelected":true}}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, tenantRequest(http.MethodPut, "/eholdings/packages/19-1", okapi, strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	puts := rm.CallsWithMethod(http.MethodPut)
	require.Len(t, puts, 1)
	assert.JSONEq(t, `{
		"isSelected": true,
		"allowEbscoToAddTitles": false,
		"isHidden": false,
		"customCoverage": {"beginCoverage": "", "endCoverage": ""}
	}`, puts[0].Body)
}

func TestUpstreamErrorPassesThrough(t *testing.T) {
	rm := testutils.NewFakeRM(t)
	rm.On(http.MethodGet, "/rm/rmaccounts/apidvcorp/vendors/999", http.StatusNotFound,
		`{"Errors":[{"Code":1002,"Message":"Vendor not found","SubCode":0}]}`)
	okapi := testutils.NewFakeOkapi(t, tenantAccount(rm), 0)
	router := newTestRouter(t, testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, tenantRequest(http.MethodGet, "/eholdings/vendors/999", okapi, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"errors":[{"status":"404","title":"Vendor not found"}]}`, rec.Body.String())
}

func TestDeleteResource(t *testing.T) {
	rm := testutils.NewFakeRM(t)
	rm.On(http.MethodDelete, "/rm/rmaccounts/apidvcorp/vendors/19/packages/1/titles/5", http.StatusNoContent, "")
	okapi := testutils.NewFakeOkapi(t, tenantAccount(rm), 0)
	router := newTestRouter(t, testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, tenantRequest(http.MethodDelete, "/eholdings/resources/19-1-5", okapi, nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestStatus(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		rm := testutils.NewFakeRM(t)
		okapi := testutils.NewFakeOkapi(t, nil, 0)
		router := newTestRouter(t, testConfig())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, tenantRequest(http.MethodGet, "/eholdings/status", okapi, nil))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t,
			`{"data":{"type":"statuses","id":"status","attributes":{"isConfigurationValid":false}}}`,
			rec.Body.String())
		assert.Empty(t, rm.Calls())
	})

	t.Run("valid credentials", func(t *testing.T) {
		rm := testutils.NewFakeRM(t)
		rm.On(http.MethodGet, "/rm/rmaccounts/apidvcorp/vendors", http.StatusOK, `{"totalResults":0,"vendors":[]}`)
		okapi := testutils.NewFakeOkapi(t, tenantAccount(rm), 0)
		router := newTestRouter(t, testConfig())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, tenantRequest(http.MethodGet, "/eholdings/status", okapi, nil))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t,
			`{"data":{"type":"statuses","id":"status","attributes":{"isConfigurationValid":true}}}`,
			rec.Body.String())
	})
}

func TestOkapiUnavailableWithoutFallback(t *testing.T) {
	okapi := testutils.NewFakeOkapi(t, nil, http.StatusInternalServerError)
	router := newTestRouter(t, testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, tenantRequest(http.MethodGet, "/eholdings/titles", okapi, nil))

	testutils.AssertErrorResponse(t, rec, http.StatusBadGateway, "RM API configuration unavailable")
}

func TestStaticAccountFallback(t *testing.T) {
	rm := testutils.NewFakeRM(t)
	rm.On(http.MethodGet, "/rm/rmaccounts/static-cust/packages", http.StatusOK, `{"totalResults":0,"packagesList":[]}`)
	okapi := testutils.NewFakeOkapi(t, nil, 0)

	cfg := testConfig()
	cfg.RMAPI.BaseURL = rm.URL
	cfg.RMAPI.CustomerID = "static-cust"
	cfg.RMAPI.APIKey = "static-key"
	router := newTestRouter(t, cfg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, tenantRequest(http.MethodGet, "/eholdings/packages", okapi, nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"data":[],"meta":{"totalResults":0}}`, rec.Body.String())

	calls := rm.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "static-key", calls[0].APIKey)
}

func TestHealthAndUnknownRoutes(t *testing.T) {
	router := newTestRouter(t, testConfig())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	testutils.AssertErrorResponse(t, rec, http.StatusNotFound, "Not found")
}
