package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SESSION_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected development default, got %q", cfg.Env)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected :8080 default, got %q", cfg.HTTPAddr)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected 24h session ttl, got %v", cfg.SessionTTL)
	}
	if cfg.MessagesFile != "data/messages.json" {
		t.Fatalf("expected default messages file, got %q", cfg.MessagesFile)
	}
	if !cfg.AttachmentsPublic {
		t.Fatal("expected attachments public by default")
	}
	if cfg.IsUpstreamEnabled() {
		t.Fatal("expected upstream disabled without an api key")
	}
}

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error without SESSION_SECRET")
	}
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_TTL", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an unparseable TTL")
	}
}

func TestLoadUpstreamEnabledByAPIKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICEM8_API_KEY", "key-123")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.IsUpstreamEnabled() {
		t.Fatal("expected upstream enabled with an api key")
	}
}

func TestLoadWildcardOriginImpliesAllowAll(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.CORSAllowAll {
		t.Fatal("expected wildcard origin to enable allow-all")
	}
}

func TestLoadRejectsAllowAllWithCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ALLOW_ALL", "true")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for allow-all with credentials")
	}
}

func TestSplitCSVTrimsAndDropsEmpty(t *testing.T) {
	got := splitCSV(" http://a.test , ,http://b.test")
	if len(got) != 2 || got[0] != "http://a.test" || got[1] != "http://b.test" {
		t.Fatalf("unexpected result: %v", got)
	}
}
