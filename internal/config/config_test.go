package config

import (
	"errors"
	"testing"
	"time"
)

// validConfig returns a minimal valid configuration for tests.
func validConfig() *Config {
	cfg := NewConfig()
	cfg.BrandURLs = []string{"https://example.com"}
	return cfg
}

// TestNewConfig tests that defaults are sensible.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.DefaultTerm != DefaultProductTerm {
		t.Errorf("DefaultTerm = %q, want %q", cfg.DefaultTerm, DefaultProductTerm)
	}
	if cfg.MaxMarkets != DefaultMaxMarkets {
		t.Errorf("MaxMarkets = %d, want %d", cfg.MaxMarkets, DefaultMaxMarkets)
	}
	if cfg.MaxHeadings != DefaultMaxHeadings {
		t.Errorf("MaxHeadings = %d, want %d", cfg.MaxHeadings, DefaultMaxHeadings)
	}
	if cfg.ComtradeEndpoint != DefaultComtradeEndpoint {
		t.Errorf("ComtradeEndpoint = %q, want %q", cfg.ComtradeEndpoint, DefaultComtradeEndpoint)
	}
	if cfg.ComtradeAPIKey != DefaultComtradeAPIKey {
		t.Errorf("ComtradeAPIKey = %q, want %q", cfg.ComtradeAPIKey, DefaultComtradeAPIKey)
	}
	if cfg.Distributors == nil {
		t.Error("Distributors map should be initialized")
	}
}

// TestConfigTerm tests product term resolution.
func TestConfigTerm(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if got := cfg.Term(); got != DefaultProductTerm {
		t.Errorf("Term() = %q, want default %q", got, DefaultProductTerm)
	}

	cfg.ProductTerm = "Wheelchairs"
	if got := cfg.Term(); got != "Wheelchairs" {
		t.Errorf("Term() = %q, want %q", got, "Wheelchairs")
	}
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config",
			mutate:  func(_ *Config) {},
			wantErr: nil,
		},
		{
			name:    "no brand URL",
			mutate:  func(c *Config) { c.BrandURLs = nil },
			wantErr: ErrNoBrandURL,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Timeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Timeout = -time.Second },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "zero batch size",
			mutate:  func(c *Config) { c.BatchSize = 0 },
			wantErr: ErrInvalidBatchSize,
		},
		{
			name: "conflicting report formats",
			mutate: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name: "link with json",
			mutate: func(c *Config) {
				c.DownloadLink = true
				c.JSONReport = true
			},
			wantErr: ErrLinkRequiresMarkdown,
		},
		{
			name:    "zero max markets",
			mutate:  func(c *Config) { c.MaxMarkets = 0 },
			wantErr: ErrInvalidMaxMarkets,
		},
		{
			name:    "negative max body size",
			mutate:  func(c *Config) { c.MaxBodySize = -1 },
			wantErr: ErrInvalidMaxBodySize,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
