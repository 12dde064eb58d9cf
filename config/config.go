// Package config provides configuration loading for the vocabulary
// validator. No configuration file is required: defaults cover the
// federation's published endpoints, and a YAML file only overrides them.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/vocval/registry"
	"github.com/c360studio/vocval/vocabulary"
)

// Config represents the complete validator configuration.
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	HTTP     HTTPConfig     `yaml:"http"`
	Rules    RulesConfig    `yaml:"rules"`
}

// RegistryConfig configures vocabulary discovery.
type RegistryConfig struct {
	// ListingURL is where the vocabs.conf listing lives.
	ListingURL string `yaml:"listing_url"`
	// BaseURI is the root under which vocabularies are published.
	BaseURI string `yaml:"base_uri"`
}

// HTTPConfig configures outbound requests.
type HTTPConfig struct {
	// Timeout is the per-request timeout.
	Timeout time.Duration `yaml:"timeout"`
	// UserAgent is sent on every request.
	UserAgent string `yaml:"user_agent"`
}

// UnmarshalYAML accepts Go duration strings ("30s", "2m") for the timeout.
func (h *HTTPConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Timeout   string `yaml:"timeout"`
		UserAgent string `yaml:"user_agent"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("http.timeout: %w", err)
		}
		h.Timeout = d
	}
	if raw.UserAgent != "" {
		h.UserAgent = raw.UserAgent
	}
	return nil
}

// RulesConfig configures rule evaluation.
type RulesConfig struct {
	// Skip lists rule IDs excluded from evaluation.
	Skip []string `yaml:"skip"`
}

// DefaultConfig returns a Config with the federation defaults.
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			ListingURL: registry.DefaultListingURL,
			BaseURI:    vocabulary.IvoaBaseURI,
		},
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "vocval",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Registry.ListingURL == "" {
		return fmt.Errorf("registry.listing_url is required")
	}
	if c.Registry.BaseURI == "" {
		return fmt.Errorf("registry.base_uri is required")
	}
	if !strings.HasSuffix(c.Registry.BaseURI, "/") {
		return fmt.Errorf("registry.base_uri must end with a slash")
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return config, nil
}

// Merge merges another config into this one; non-zero values of other take
// precedence.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Registry.ListingURL != "" {
		c.Registry.ListingURL = other.Registry.ListingURL
	}
	if other.Registry.BaseURI != "" {
		c.Registry.BaseURI = other.Registry.BaseURI
	}
	if other.HTTP.Timeout != 0 {
		c.HTTP.Timeout = other.HTTP.Timeout
	}
	if other.HTTP.UserAgent != "" {
		c.HTTP.UserAgent = other.HTTP.UserAgent
	}
	if len(other.Rules.Skip) > 0 {
		c.Rules.Skip = other.Rules.Skip
	}
}
