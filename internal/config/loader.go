package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".exportscout"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk YAML configuration.
type File struct {
	// Comtrade holds the trade-data API settings.
	Comtrade ComtradeConfig `yaml:"comtrade"`

	// DefaultTerm overrides the built-in fallback product term.
	DefaultTerm string `yaml:"default_term"`

	// Distributors maps country names to ordered distributor-name lists.
	// Entries are merged over the built-in directory; a country present in
	// both is replaced by the file's list.
	Distributors map[string][]string `yaml:"distributors"`
}

// ComtradeConfig holds the UN Comtrade API settings.
type ComtradeConfig struct {
	// Endpoint is the API base URL. Empty means the default.
	Endpoint string `yaml:"endpoint"`

	// APIKey is the subscription key sent with every market query.
	APIKey string `yaml:"api_key"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound; callers
// decide whether that matters based on whether the path was explicit.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if cf.Distributors == nil {
		cf.Distributors = make(map[string][]string)
	}

	return &cf, nil
}

// Apply merges file settings into a Config. Only non-empty file values
// override; flag-provided values were applied earlier and take priority,
// so Apply skips fields the caller already changed from their defaults.
func (f *File) Apply(c *Config) {
	if f.Comtrade.Endpoint != "" && c.ComtradeEndpoint == DefaultComtradeEndpoint {
		c.ComtradeEndpoint = f.Comtrade.Endpoint
	}
	if f.Comtrade.APIKey != "" && c.ComtradeAPIKey == DefaultComtradeAPIKey {
		c.ComtradeAPIKey = f.Comtrade.APIKey
	}
	if f.DefaultTerm != "" {
		c.DefaultTerm = f.DefaultTerm
	}
	for country, names := range f.Distributors {
		c.Distributors[country] = names
	}
}

// FindConfigFile searches for the configuration file in order:
// 1. the explicit path, when given
// 2. .exportscout in the current directory
// 3. .exportscout in the user's home directory
// 4. config.yaml in the XDG config directory
//
// Returns the path if found, or empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	p := filepath.Join(XDGConfigDir(), "config.yaml")
	if _, err := os.Stat(p); err == nil {
		return p
	}

	return ""
}
