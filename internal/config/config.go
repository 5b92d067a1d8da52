package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	RMAPI  RMAPIConfig  `mapstructure:"rmapi" validate:"required"`
	Okapi  OkapiConfig  `mapstructure:"okapi" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gte=1"`
}

// RMAPIConfig contains settings for the EBSCO RM API.
// CustomerID and APIKey are fallback credentials used only when a tenant has
// no RM API configuration stored in Okapi.
type RMAPIConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	CustomerID     string `mapstructure:"customer_id"`
	APIKey         string `mapstructure:"api_key" validate:"required_with=CustomerID"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1,lte=300"`
}

// HasFallbackCredentials reports whether static RM API credentials are set.
func (c RMAPIConfig) HasFallbackCredentials() bool {
	return c.CustomerID != "" && c.APIKey != ""
}

// OkapiConfig contains settings for calls back into Okapi.
type OkapiConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=1,lte=300"`
}
