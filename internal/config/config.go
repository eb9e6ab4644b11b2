package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// Where applicable these mirror the behavior of the original research
// prototype this tool replaces.
const (
	// DefaultTimeout bounds each of the two outbound HTTP calls (the brand
	// site scrape and the trade-data query). Neither call is retried, so a
	// generous timeout would only delay the inevitable error.
	DefaultTimeout = 10 * time.Second

	// DefaultProductTerm is the market-query fallback used when the user
	// supplies no product keywords.
	DefaultProductTerm = "Mobility equipment"

	// DefaultMaxMarkets caps the export-opportunity table. The upstream
	// preview endpoint returns many rows; only the first few are useful
	// for a one-page report.
	DefaultMaxMarkets = 5

	// DefaultMaxHeadings caps the product headings extracted from a brand
	// site. Ten headings is enough to characterize a catalog page without
	// flooding the report.
	DefaultMaxHeadings = 10

	// DefaultMinHeadingLength filters navigation stubs ("Home", "Shop")
	// out of the heading list. Only headings whose trimmed text is longer
	// than this survive.
	DefaultMinHeadingLength = 5

	// DefaultBatchSize is the number of concurrent research runs when
	// multiple brand URLs are given.
	DefaultBatchSize = 4

	// DefaultUserAgent identifies ExportScout in HTTP requests. A
	// descriptive User-Agent lets site operators identify the traffic.
	DefaultUserAgent = "ExportScout/1.0 (+https://github.com/exportscout/exportscout)"

	// DefaultMaxBodySize limits how much of a scraped page is read.
	// 5MB covers any realistic brand page while bounding memory use.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// DefaultComtradeEndpoint is the UN Comtrade public preview API base.
	DefaultComtradeEndpoint = "https://comtradeapi.un.org/public/v1/preview"

	// DefaultComtradeAPIKey is the placeholder subscription key. The
	// preview endpoint rejects it; users supply a real key via the config
	// file or --api-key.
	DefaultComtradeAPIKey = "YOUR_COMTRADE_API_KEY"

	// ComtradePeriodStart and ComtradePeriodEnd bound the fixed annual
	// historical window queried for every product term.
	ComtradePeriodStart = 2010
	ComtradePeriodEnd   = 2022

	// AppName is the application name used for XDG directory paths.
	AppName = "exportscout"
)

// Config holds all configuration options for a research run.
// It is populated from CLI flags and the optional YAML config file and
// passed through the application explicitly; there is no ambient global
// state.
type Config struct {
	// BrandURLs are the websites to research. At least one is required.
	BrandURLs []string

	// ProductTerm is the optional product keyword for the market query.
	// Empty means use DefaultTerm.
	ProductTerm string

	// DefaultTerm is the fallback product term. Normally
	// DefaultProductTerm, but overridable from the config file.
	DefaultTerm string

	// BuyersCSV is the path to a user-supplied buyer list CSV. Empty means
	// use the built-in fixture list.
	BuyersCSV string

	// Timeout bounds each outbound HTTP request.
	Timeout time.Duration

	// MaxMarkets caps the market table size.
	MaxMarkets int

	// MaxHeadings caps the scraped heading list.
	MaxHeadings int

	// MinHeadingLength is the minimum trimmed heading length to keep.
	MinHeadingLength int

	// UserAgent is sent with the brand-site scrape request.
	UserAgent string

	// MaxBodySize limits the scraped response body in bytes.
	MaxBodySize int64

	// ComtradeEndpoint is the trade-data API base URL.
	ComtradeEndpoint string

	// ComtradeAPIKey is the subscription key sent with market queries.
	// Treated as a credential: the logging handler masks it.
	ComtradeAPIKey string

	// Offline selects the fixture market source instead of the live
	// Comtrade client. Useful for demos and tests.
	Offline bool

	// Distributors holds extra country -> distributor-name entries merged
	// over the built-in directory. Populated from the config file.
	Distributors map[string][]string

	// BatchSize is the number of concurrent runs for multiple URLs.
	BatchSize int

	// JSONReport selects JSON report output. Mutually exclusive with
	// MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown report output.
	MarkdownReport bool

	// DownloadLink wraps the Markdown report in a self-contained
	// base64 data-URI download link (the downloadable artifact).
	DownloadLink bool

	// ReportFile is the output path. Empty means stdout.
	ReportFile string

	// ConfigFilePath is an explicit config file path. Empty triggers the
	// default search (cwd, home, XDG config dir).
	ConfigFilePath string

	// Verbose enables slog.LevelDebug output.
	Verbose bool
}

// NewConfig creates a Config with default values. Callers override
// specific fields from flags and the config file afterwards.
//
// Design decision: a constructor rather than zero values because most
// defaults are non-zero, and the constructor doubles as documentation of
// what they are.
func NewConfig() *Config {
	return &Config{
		DefaultTerm:      DefaultProductTerm,
		Timeout:          DefaultTimeout,
		MaxMarkets:       DefaultMaxMarkets,
		MaxHeadings:      DefaultMaxHeadings,
		MinHeadingLength: DefaultMinHeadingLength,
		UserAgent:        DefaultUserAgent,
		MaxBodySize:      DefaultMaxBodySize,
		ComtradeEndpoint: DefaultComtradeEndpoint,
		ComtradeAPIKey:   DefaultComtradeAPIKey,
		BatchSize:        DefaultBatchSize,
		Distributors:     make(map[string][]string),
	}
}

// Term resolves the effective product term: the user's keywords when
// present, otherwise the default term.
func (c *Config) Term() string {
	if c.ProductTerm != "" {
		return c.ProductTerm
	}
	return c.DefaultTerm
}

// XDGConfigDir returns the XDG config directory for ExportScout.
// On Linux: ~/.config/exportscout.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns the first problem found.
// Called once after CLI parsing, before any network traffic.
func (c *Config) Validate() error {
	if len(c.BrandURLs) == 0 {
		return ErrNoBrandURL
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.DownloadLink && c.JSONReport {
		return ErrLinkRequiresMarkdown
	}
	if c.MaxMarkets <= 0 {
		return ErrInvalidMaxMarkets
	}
	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}
	return nil
}
