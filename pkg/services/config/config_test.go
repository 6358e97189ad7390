package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/netops-tools/te-reporter/pkg/models/domain"
)

func writeCredentials(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credentials")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write credentials file: %v", err)
	}
	return path
}

func TestLoad_EnvKey_PopulatesDefaults(t *testing.T) {
	// Given
	t.Setenv("TE_API_KEY", "env-key")
	t.Setenv("TE_BASE_URL", "")

	// When
	cfg, err := Load(Options{})

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("expected APIKey=env-key, got %s", cfg.APIKey)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %s", cfg.BaseURL)
	}
	if cfg.AccountsFile != DefaultAccountsFile {
		t.Errorf("expected default accounts file, got %s", cfg.AccountsFile)
	}
	if cfg.Prefix != DefaultPrefix {
		t.Errorf("expected default prefix, got %s", cfg.Prefix)
	}
}

func TestLoad_EnvBaseURL_OverridesDefault(t *testing.T) {
	// Given
	t.Setenv("TE_API_KEY", "env-key")
	t.Setenv("TE_BASE_URL", "https://api.example.test/v7")

	// When
	cfg, err := Load(Options{})

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.BaseURL != "https://api.example.test/v7" {
		t.Errorf("expected env base URL, got %s", cfg.BaseURL)
	}
}

func TestLoad_Overrides_BeatDefaults(t *testing.T) {
	// Given
	t.Setenv("TE_API_KEY", "env-key")

	// When
	cfg, err := Load(Options{AccountsFile: "orgs.xlsx", OutputDir: "/tmp/reports", Prefix: "te"})

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.AccountsFile != "orgs.xlsx" {
		t.Errorf("expected AccountsFile=orgs.xlsx, got %s", cfg.AccountsFile)
	}
	if cfg.OutputDir != "/tmp/reports" {
		t.Errorf("expected OutputDir=/tmp/reports, got %s", cfg.OutputDir)
	}
	if cfg.Prefix != "te" {
		t.Errorf("expected Prefix=te, got %s", cfg.Prefix)
	}
}

func TestLoad_CredentialsFallback_DefaultProfile(t *testing.T) {
	// Given
	t.Setenv("TE_API_KEY", "")
	path := writeCredentials(t, "[default]\napi_key = file-key\n")

	// When
	cfg, err := Load(Options{CredentialsFile: path})

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.APIKey != "file-key" {
		t.Errorf("expected APIKey=file-key, got %s", cfg.APIKey)
	}
}

func TestLoad_CredentialsFallback_NamedProfile(t *testing.T) {
	// Given
	t.Setenv("TE_API_KEY", "")
	path := writeCredentials(t, "[default]\napi_key = default-key\n\n[prod]\napi_key = prod-key\n")

	// When
	cfg, err := Load(Options{CredentialsFile: path, Profile: "prod"})

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.APIKey != "prod-key" {
		t.Errorf("expected APIKey=prod-key, got %s", cfg.APIKey)
	}
}

func TestLoad_NoKeyAnywhere_ReturnsConfigError(t *testing.T) {
	// Given
	t.Setenv("TE_API_KEY", "")
	missing := filepath.Join(t.TempDir(), "credentials")

	// When
	_, err := Load(Options{CredentialsFile: missing})

	// Then
	if err == nil {
		t.Fatal("expected error when no API key source is available")
	}
	var cfgErr *domain.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("expected ConfigError, got %T", err)
	}
}

func TestRegistry_GetAPIKey(t *testing.T) {
	// Given
	path := writeCredentials(t, "[default]\napi_key = k1\n\n[empty]\napi_key =\n")
	registry, err := NewRegistry(path)
	if err != nil {
		t.Fatalf("expected registry to load, got %v", err)
	}

	// When / Then
	key, err := registry.GetAPIKey("default")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if key != "k1" {
		t.Errorf("expected k1, got %s", key)
	}

	if _, err := registry.GetAPIKey("absent"); err == nil {
		t.Error("expected error for unknown profile")
	}
	if _, err := registry.GetAPIKey("empty"); err == nil {
		t.Error("expected error for profile without api_key")
	}
}
