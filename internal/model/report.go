package model

import "time"

// ResearchReport accumulates the output of every pipeline stage for a
// single brand URL. It is created empty by NewResearchReport and filled
// in by the pipeline steps; nothing outlives the run except the rendered
// report artifact.
//
// Design decision: per-section degradation notes (BuyerError, the market
// error row, the fatal ErrorMessage) live on the report rather than being
// swallowed at the source. The report writers decide per section whether
// to render real content or a placeholder, so no failure disappears
// silently.
type ResearchReport struct {
	// BrandURL is the website URL this research run was triggered for.
	BrandURL string `json:"brand_url"`

	// ProductTerm is the product keyword used for the market query. When
	// the user supplies no keyword, this holds the configured default term.
	ProductTerm string `json:"product_term"`

	// DateGenerated records when the run started.
	DateGenerated time.Time `json:"date_generated"`

	// Site is the scraped brand summary. Nil until the scrape stage runs;
	// a nil Site together with a non-empty ErrorMessage means the scrape
	// failed and the run was halted.
	Site *SiteSummary `json:"site,omitempty"`

	// Markets is the ranked export-opportunity table (at most the
	// configured maximum, 5 by default). On market-source failure it holds
	// the single error sentinel row instead.
	Markets []MarketRow `json:"markets"`

	// Buyers is the buyer contact table, either parsed from a user CSV or
	// the built-in fixture list.
	Buyers []BuyerRecord `json:"buyers"`

	// BuyersFromUpload is true when Buyers came from a user-supplied file
	// rather than the fixture source.
	BuyersFromUpload bool `json:"buyers_from_upload"`

	// BuyerError carries the user-visible message when an uploaded buyer
	// file could not be parsed. In that case Buyers stays empty; the
	// pipeline never falls back to fixture data on a parse failure.
	BuyerError string `json:"buyer_error,omitempty"`

	// Distributors is the combined per-country distributor table, grouped
	// by country in first-appearance order of the market table.
	Distributors []DistributorRecord `json:"distributors"`

	// PerformedStages lists the names of the pipeline steps that ran, in
	// order. Useful for debugging partial runs.
	PerformedStages []string `json:"performed_stages"`

	// Error holds the fatal error that halted the pipeline, if any.
	// Excluded from JSON because error values don't marshal usefully;
	// ErrorMessage carries the text instead.
	Error error `json:"-"`

	// ErrorMessage is the human-readable form of Error.
	ErrorMessage string `json:"error_message,omitempty"`

	// TimedOut is true when the run was cancelled before completion.
	TimedOut bool `json:"timed_out"`
}

// NewResearchReport creates an empty report for the given brand URL.
// An empty product term falls back to defaultTerm, mirroring the market
// query contract.
func NewResearchReport(brandURL, productTerm, defaultTerm string) *ResearchReport {
	if productTerm == "" {
		productTerm = defaultTerm
	}
	return &ResearchReport{
		BrandURL:        brandURL,
		ProductTerm:     productTerm,
		DateGenerated:   time.Now(),
		Markets:         make([]MarketRow, 0),
		Buyers:          make([]BuyerRecord, 0),
		Distributors:    make([]DistributorRecord, 0),
		PerformedStages: make([]string, 0),
	}
}

// DistributorGroups returns the combined distributor table grouped by
// country, preserving first-appearance order.
func (r *ResearchReport) DistributorGroups() []DistributorGroup {
	return GroupDistributors(r.Distributors)
}

// Failed reports whether the run was halted by a fatal error.
func (r *ResearchReport) Failed() bool {
	return r.Error != nil || r.ErrorMessage != ""
}

// MarketFailed reports whether the market table holds the error sentinel
// row instead of real data.
func (r *ResearchReport) MarketFailed() bool {
	return len(r.Markets) == 1 && IsMarketSentinel(r.Markets[0].Country)
}
