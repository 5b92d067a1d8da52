package catalog

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/eholdings-api/internal/config"
	"github.com/phrazzld/eholdings-api/internal/domain"
	"github.com/phrazzld/eholdings-api/internal/platform/okapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSettings struct {
	mock.Mock
}

func (m *mockSettings) RMAPISettings(ctx context.Context, tenant domain.TenantContext) (okapi.RMAPISettings, error) {
	args := m.Called(ctx, tenant)
	return args.Get(0).(okapi.RMAPISettings), args.Error(1)
}

var tenant = domain.TenantContext{URL: "http://okapi", Tenant: "fs", Token: "tok"}

// recordingRMAPI returns a server URL and a pointer to the last request path.
func recordingRMAPI(t *testing.T) (string, *string) {
	t.Helper()
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = io.WriteString(w, `{"totalResults":0,"vendors":[]}`)
	}))
	t.Cleanup(srv.Close)
	return srv.URL, &path
}

func TestForTenantUsesTenantSettings(t *testing.T) {
	rmURL, path := recordingRMAPI(t)

	settings := new(mockSettings)
	settings.On("RMAPISettings", mock.Anything, tenant).
		Return(okapi.RMAPISettings{CustomerID: "tenantcust", APIKey: "k"}, nil)

	r := NewResolver(settings, config.RMAPIConfig{
		BaseURL: rmURL, CustomerID: "static", APIKey: "s", TimeoutSeconds: 5,
	}, nil)

	cat, err := r.ForTenant(context.Background(), tenant)
	require.NoError(t, err)
	require.NoError(t, cat.VerifyCredentials(context.Background()))
	assert.Equal(t, "/rm/rmaccounts/tenantcust/vendors", *path)
	settings.AssertExpectations(t)
}

func TestForTenantFallsBack(t *testing.T) {
	rmURL, path := recordingRMAPI(t)
	cfg := config.RMAPIConfig{BaseURL: rmURL, CustomerID: "static", APIKey: "s", TimeoutSeconds: 5}

	tests := []struct {
		name     string
		settings okapi.RMAPISettings
		err      error
	}{
		{name: "tenant not configured", settings: okapi.RMAPISettings{CustomerID: "only-id"}},
		{name: "okapi unavailable", err: okapi.ErrUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settings := new(mockSettings)
			settings.On("RMAPISettings", mock.Anything, tenant).Return(tc.settings, tc.err)

			cat, err := NewResolver(settings, cfg, nil).ForTenant(context.Background(), tenant)
			require.NoError(t, err)
			require.NoError(t, cat.VerifyCredentials(context.Background()))
			assert.Equal(t, "/rm/rmaccounts/static/vendors", *path)
		})
	}
}

func TestForTenantWithoutAnyCredentials(t *testing.T) {
	cfg := config.RMAPIConfig{BaseURL: "https://sandbox.ebsco.io", TimeoutSeconds: 5}

	t.Run("not configured", func(t *testing.T) {
		settings := new(mockSettings)
		settings.On("RMAPISettings", mock.Anything, tenant).Return(okapi.RMAPISettings{}, nil)

		_, err := NewResolver(settings, cfg, nil).ForTenant(context.Background(), tenant)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("unavailable", func(t *testing.T) {
		settings := new(mockSettings)
		settings.On("RMAPISettings", mock.Anything, tenant).
			Return(okapi.RMAPISettings{}, errors.New("boom"))

		_, err := NewResolver(settings, cfg, nil).ForTenant(context.Background(), tenant)
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
