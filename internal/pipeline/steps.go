package pipeline

import (
	"context"
	"fmt"

	"github.com/exportscout/exportscout/internal/buyers"
	"github.com/exportscout/exportscout/internal/distributor"
	"github.com/exportscout/exportscout/internal/market"
	"github.com/exportscout/exportscout/internal/model"
	"github.com/exportscout/exportscout/internal/scraper"
)

// ScrapeStep fetches the brand website and fills in the site summary.
// This is the only fatal step: without the brand summary there is no
// report to compose, so a scrape failure halts the run.
type ScrapeStep struct {
	scraper *scraper.Scraper
}

// NewScrapeStep creates a ScrapeStep.
func NewScrapeStep(s *scraper.Scraper) *ScrapeStep {
	return &ScrapeStep{scraper: s}
}

// Name returns the step name.
func (s *ScrapeStep) Name() string { return "scrape-site" }

// Do scrapes the report's brand URL. Any failure is returned and halts
// the pipeline.
func (s *ScrapeStep) Do(ctx context.Context, report *model.ResearchReport) error {
	summary, err := s.scraper.Scrape(ctx, report.BrandURL)
	if err != nil {
		return fmt.Errorf("unable to scrape site: %w", err)
	}

	report.Site = summary
	return nil
}

// MarketStep queries the market source for the report's product term.
// Failures degrade to the single error sentinel row; the pipeline
// continues.
type MarketStep struct {
	source market.Source
}

// NewMarketStep creates a MarketStep backed by the given source.
func NewMarketStep(source market.Source) *MarketStep {
	return &MarketStep{source: source}
}

// Name returns the step name.
func (s *MarketStep) Name() string { return "suggest-markets" }

// Do fetches the market table. On failure the table is replaced with a
// one-row error placeholder and the error is NOT propagated: market data
// is best-effort.
func (s *MarketStep) Do(ctx context.Context, report *model.ResearchReport) error {
	rows, err := s.source.FetchMarkets(ctx, report.ProductTerm)
	if err != nil {
		report.Markets = model.MarketErrorRow(err.Error())
		return nil
	}

	report.Markets = rows
	return nil
}

// BuyerStep loads the buyer list for the report's product term.
// A parse failure of a user-supplied file surfaces inline and leaves the
// buyer table empty; there is no fixture fallback for bad uploads.
type BuyerStep struct {
	source     buyers.Source
	fromUpload bool
}

// NewBuyerStep creates a BuyerStep. fromUpload records whether the source
// reads a user-supplied file, which the report surfaces to the reader.
func NewBuyerStep(source buyers.Source, fromUpload bool) *BuyerStep {
	return &BuyerStep{source: source, fromUpload: fromUpload}
}

// Name returns the step name.
func (s *BuyerStep) Name() string { return "load-buyers" }

// Do loads the buyer table.
func (s *BuyerStep) Do(ctx context.Context, report *model.ResearchReport) error {
	report.BuyersFromUpload = s.fromUpload

	records, err := s.source.Buyers(ctx, report.ProductTerm)
	if err != nil {
		report.BuyerError = err.Error()
		report.Buyers = make([]model.BuyerRecord, 0)
		return nil
	}

	report.Buyers = records
	return nil
}

// DistributorStep looks up trusted distributors for every distinct
// country in the market table, skipping error sentinel rows.
type DistributorStep struct {
	directory *distributor.Directory
}

// NewDistributorStep creates a DistributorStep.
func NewDistributorStep(directory *distributor.Directory) *DistributorStep {
	return &DistributorStep{directory: directory}
}

// Name returns the step name.
func (s *DistributorStep) Name() string { return "find-distributors" }

// Do fills in the combined distributor table. The lookup is pure and
// in-memory, so this step cannot fail.
func (s *DistributorStep) Do(_ context.Context, report *model.ResearchReport) error {
	countries := make([]string, 0, len(report.Markets))
	for _, row := range report.Markets {
		countries = append(countries, row.Country)
	}

	report.Distributors = s.directory.LookupAll(countries)
	return nil
}
