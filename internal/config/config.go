package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/rm-hull/trip-cost-calculator/internal/geo"
	"github.com/rm-hull/trip-cost-calculator/internal/prerender"
)

const (
	DefaultFile = "tripcost.yml"
	envPrefix   = "TRIPCOST_"
)

type Config struct {
	DistDir          string        `koanf:"dist_dir"`
	BaseURL          string        `koanf:"base_url"`
	PageRoot         string        `koanf:"page_root"`
	PricesFile       string        `koanf:"prices_file"`
	ORSAPIKey        string        `koanf:"ors_api_key"`
	ORSBaseURL       string        `koanf:"ors_base_url"`
	NominatimBaseURL string        `koanf:"nominatim_base_url"`
	OSRMBaseURL      string        `koanf:"osrm_base_url"`
	UserAgent        string        `koanf:"user_agent"`
	HTTPTimeout      time.Duration `koanf:"http_timeout"`
	SearchLimit      int           `koanf:"search_limit"`
	LookupCacheTTL   time.Duration `koanf:"lookup_cache_ttl"`
}

func DefaultConfig() *Config {
	opts := geo.DefaultOptions()
	return &Config{
		DistDir:          "dist",
		BaseURL:          prerender.DefaultBaseURL,
		PageRoot:         prerender.DefaultRoot,
		ORSBaseURL:       opts.ORSBaseURL,
		NominatimBaseURL: opts.NominatimBaseURL,
		OSRMBaseURL:      opts.OSRMBaseURL,
		UserAgent:        opts.UserAgent,
		HTTPTimeout:      opts.Timeout,
		SearchLimit:      5,
		LookupCacheTTL:   time.Hour,
	}
}

// Load reads the YAML file at path when it exists, then overlays
// TRIPCOST_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DistDir == "" {
		return fmt.Errorf("dist_dir is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("base_url %q must be an absolute URL", c.BaseURL)
	}
	if strings.Trim(c.PageRoot, "/") == "" {
		return fmt.Errorf("page_root is required")
	}
	for name, value := range map[string]string{
		"ors_base_url":       c.ORSBaseURL,
		"nominatim_base_url": c.NominatimBaseURL,
		"osrm_base_url":      c.OSRMBaseURL,
	} {
		if u, err := url.Parse(value); err != nil || !u.IsAbs() {
			return fmt.Errorf("%s %q must be an absolute URL", name, value)
		}
	}
	if c.SearchLimit < 1 {
		return fmt.Errorf("search_limit must be at least 1")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("http_timeout must be positive")
	}
	if c.LookupCacheTTL < 0 {
		return fmt.Errorf("lookup_cache_ttl must be non-negative")
	}
	return nil
}

// GeoOptions maps the collaborator settings onto the geo clients.
func (c *Config) GeoOptions() geo.Options {
	return geo.Options{
		NominatimBaseURL: c.NominatimBaseURL,
		ORSBaseURL:       c.ORSBaseURL,
		ORSAPIKey:        c.ORSAPIKey,
		OSRMBaseURL:      c.OSRMBaseURL,
		UserAgent:        c.UserAgent,
		Timeout:          c.HTTPTimeout,
	}
}
