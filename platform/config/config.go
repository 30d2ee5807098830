// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// SessionConfig provides session token settings for the auth service
// and the session middleware.
type SessionConfig interface {
	GetSessionSecret() string
	GetSessionTTL() time.Duration
}

// UpstreamConfig provides settings for the upstream field-service API client.
type UpstreamConfig interface {
	GetUpstreamBaseURL() string
	GetUpstreamAPIKey() string
	IsUpstreamEnabled() bool
}

// MessagesConfig provides settings for the file-backed message store.
type MessagesConfig interface {
	GetMessagesFile() string
}

// AttachmentPolicyConfig controls whether the binary attachment endpoints
// require a session. Open by default so browser <img> tags can load files
// without custom headers (documented demo trait).
type AttachmentPolicyConfig interface {
	AttachmentsArePublic() bool
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env               string
	HTTPAddr          string
	SessionSecret     string
	SessionTTL        time.Duration
	UpstreamBaseURL   string
	UpstreamAPIKey    string
	MessagesFile      string
	AttachmentsPublic bool
	CORSAllowAll      bool
	CORSOrigins       []string
	CORSAllowCreds    bool
}

// SessionConfig implementation
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetSessionTTL() time.Duration { return c.SessionTTL }

// UpstreamConfig implementation
func (c *Config) GetUpstreamBaseURL() string { return c.UpstreamBaseURL }
func (c *Config) GetUpstreamAPIKey() string  { return c.UpstreamAPIKey }
func (c *Config) IsUpstreamEnabled() bool    { return c.UpstreamAPIKey != "" }

// MessagesConfig implementation
func (c *Config) GetMessagesFile() string { return c.MessagesFile }

// AttachmentPolicyConfig implementation
func (c *Config) AttachmentsArePublic() bool { return c.AttachmentsPublic }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		SessionSecret:     getEnv("SESSION_SECRET", ""),
		SessionTTL:        mustDuration(getEnv("SESSION_TTL", "24h")),
		UpstreamBaseURL:   getEnv("SERVICEM8_BASE_URL", "https://api.servicem8.com/api_1.0"),
		UpstreamAPIKey:    getEnv("SERVICEM8_API_KEY", ""),
		MessagesFile:      getEnv("MESSAGES_FILE", "data/messages.json"),
		AttachmentsPublic: strings.EqualFold(getEnv("ATTACHMENTS_PUBLIC", "true"), "true"),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		CORSAllowCreds:    strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be a positive duration")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
