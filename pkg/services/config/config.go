package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/netops-tools/te-reporter/pkg/models/domain"
)

const (
	envPrefix = "TE"

	DefaultBaseURL      = "https://api.thousandeyes.com/v7"
	DefaultAccountsFile = "account_ids.xlsx"
	DefaultPrefix       = "thousandeyes_data"
	DefaultProfile      = "default"
)

type Config struct {
	APIKey       string
	BaseURL      string
	AccountsFile string
	OutputDir    string
	Prefix       string
}

// Options carries command-line overrides. Zero values mean "not set" and fall
// through to environment, credentials file, then defaults.
type Options struct {
	AccountsFile    string
	OutputDir       string
	Prefix          string
	Profile         string
	CredentialsFile string
}

// Load resolves the run configuration. The API key comes from TE_API_KEY or,
// failing that, from the named profile of the credentials file; the base URL
// from TE_BASE_URL. A run without an API key cannot do anything useful, so
// that is the one hard requirement.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cfg := &Config{
		APIKey:       v.GetString("api_key"),
		BaseURL:      v.GetString("base_url"),
		AccountsFile: opts.AccountsFile,
		OutputDir:    opts.OutputDir,
		Prefix:       opts.Prefix,
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.AccountsFile == "" {
		cfg.AccountsFile = DefaultAccountsFile
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}

	if cfg.APIKey == "" {
		key, err := keyFromCredentials(opts)
		if err != nil {
			return nil, &domain.ConfigError{
				Reason: "no API key: TE_API_KEY unset and credentials lookup failed",
				Err:    err,
			}
		}
		cfg.APIKey = key
	}

	return cfg, nil
}

func keyFromCredentials(opts Options) (string, error) {
	path := opts.CredentialsFile
	if path == "" {
		var err error
		path, err = DefaultCredentialsPath()
		if err != nil {
			return "", err
		}
	}

	registry, err := NewRegistry(path)
	if err != nil {
		return "", err
	}

	profile := opts.Profile
	if profile == "" {
		profile = DefaultProfile
	}
	return registry.GetAPIKey(profile)
}

// DefaultCredentialsPath is ~/.thousandeyes/credentials.
func DefaultCredentialsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".thousandeyes", "credentials"), nil
}
