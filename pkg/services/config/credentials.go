package config

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Registry reads API keys from an AWS-style credentials file: one INI section
// per profile, each with an api_key entry.
type Registry interface {
	GetProfiles() []string
	GetAPIKey(profile string) (string, error)
}

type credsRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %s: %w", path, err)
	}
	return &credsRegistry{cfg: cfg}, nil
}

func (cr *credsRegistry) GetProfiles() []string {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles
}

func (cr *credsRegistry) GetAPIKey(profile string) (string, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return "", fmt.Errorf("profile %s not found: %w", profile, err)
	}

	key := section.Key("api_key").String()
	if key == "" {
		return "", fmt.Errorf("profile %s has no api_key", profile)
	}
	return key, nil
}
