package config

import "errors"

// Configuration validation errors returned by Config.Validate().
//
// Design decision: package-level sentinel errors rather than fmt.Errorf
// in Validate() so callers can use errors.Is() while the messages stay
// human readable.
var (
	// ErrNoBrandURL is returned when no brand website URL is given.
	ErrNoBrandURL = errors.New("no brand URL specified: provide at least one website URL")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrLinkRequiresMarkdown is returned when --link is combined with
	// --json; the download artifact embeds the Markdown report.
	ErrLinkRequiresMarkdown = errors.New("download link output embeds the Markdown report: --link cannot be used with --json")

	// ErrInvalidMaxMarkets is returned when the market table cap is not positive.
	ErrInvalidMaxMarkets = errors.New("invalid max markets: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")
)
