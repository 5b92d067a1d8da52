// Package okapi reads tenant settings from the Okapi configuration module.
package okapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/phrazzld/eholdings-api/internal/domain"
)

// Configuration codes holding the RM API credentials of a tenant.
const (
	CodeCustomerID = "kb.ebsco.customerId"
	CodeAPIKey     = "kb.ebsco.apiKey"
	CodeURL        = "kb.ebsco.url"
)

const apiAccessQuery = "(module=EKB AND configName=api_access)"

// ErrUnavailable wraps every failure to read configuration from Okapi.
var ErrUnavailable = errors.New("okapi configuration unavailable")

// RMAPISettings are the RM API credentials stored for a tenant. Fields the
// tenant has not configured are empty.
type RMAPISettings struct {
	CustomerID string
	APIKey     string
	URL        string
}

// Complete reports whether both the customer id and key are set.
func (s RMAPISettings) Complete() bool {
	return s.CustomerID != "" && s.APIKey != ""
}

type configEntry struct {
	Module     string `json:"module"`
	ConfigName string `json:"configName"`
	Code       string `json:"code"`
	Value      string `json:"value"`
	Enabled    *bool  `json:"enabled"`
}

type configEntries struct {
	Configs      []configEntry `json:"configs"`
	TotalRecords int           `json:"totalRecords"`
}

// Client calls back into Okapi on behalf of the requesting tenant.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client. httpClient carries the timeout.
func NewClient(httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{httpClient: httpClient, logger: logger.With("component", "okapi")}
}

// RMAPISettings fetches the tenant's api_access entries. Disabled entries are
// ignored.
func (c *Client) RMAPISettings(ctx context.Context, tenant domain.TenantContext) (RMAPISettings, error) {
	endpoint := strings.TrimRight(tenant.URL, "/") + "/configurations/entries?" +
		url.Values{"query": {apiAccessQuery}, "limit": {"100"}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return RMAPISettings{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(domain.HeaderOkapiTenant, tenant.Tenant)
	req.Header.Set(domain.HeaderOkapiToken, tenant.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RMAPISettings{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return RMAPISettings{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var entries configEntries
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return RMAPISettings{}, fmt.Errorf("%w: decoding entries: %w", ErrUnavailable, err)
	}

	var settings RMAPISettings
	for _, entry := range entries.Configs {
		if entry.Enabled != nil && !*entry.Enabled {
			continue
		}
		switch entry.Code {
		case CodeCustomerID:
			settings.CustomerID = strings.TrimSpace(entry.Value)
		case CodeAPIKey:
			settings.APIKey = strings.TrimSpace(entry.Value)
		case CodeURL:
			settings.URL = strings.TrimSpace(entry.Value)
		}
	}

	c.logger.DebugContext(ctx, "loaded rm api settings",
		"tenant", tenant.Tenant,
		"entries", len(entries.Configs),
		"complete", settings.Complete())

	return settings, nil
}
