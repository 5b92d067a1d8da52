package okapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRMAPISettings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/configurations/entries", r.URL.Path)
		assert.Equal(t, apiAccessQuery, r.URL.Query().Get("query"))
		assert.Equal(t, "fs", r.Header.Get(domain.HeaderOkapiTenant))
		assert.Equal(t, "tok", r.Header.Get(domain.HeaderOkapiToken))

		_, _ = io.WriteString(w, `{"configs":[
			{"module":"EKB","configName":"api_access","code":"kb.ebsco.customerId","value":"apidvcorp"},
			{"module":"EKB","configName":"api_access","code":"kb.ebsco.apiKey","value":" secret "},
			{"module":"EKB","configName":"api_access","code":"kb.ebsco.url","value":"https://api.ebsco.io","enabled":false}
		],"totalRecords":3}`)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), nil)
	settings, err := client.RMAPISettings(context.Background(),
		domain.TenantContext{URL: srv.URL + "/", Tenant: "fs", Token: "tok"})
	require.NoError(t, err)

	assert.Equal(t, RMAPISettings{CustomerID: "apidvcorp", APIKey: "secret"}, settings)
	assert.True(t, settings.Complete())
}

func TestRMAPISettingsFailures(t *testing.T) {
	t.Run("non-200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		_, err := NewClient(srv.Client(), nil).RMAPISettings(context.Background(),
			domain.TenantContext{URL: srv.URL, Tenant: "fs", Token: "tok"})
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewClient(nil, nil).RMAPISettings(context.Background(),
			domain.TenantContext{URL: url, Tenant: "fs", Token: "tok"})
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
