package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/exportscout/exportscout/internal/buyers"
	"github.com/exportscout/exportscout/internal/config"
	"github.com/exportscout/exportscout/internal/distributor"
	ilog "github.com/exportscout/exportscout/internal/log"
	"github.com/exportscout/exportscout/internal/market"
	"github.com/exportscout/exportscout/internal/model"
	"github.com/exportscout/exportscout/internal/pipeline"
	"github.com/exportscout/exportscout/internal/report"
	"github.com/exportscout/exportscout/internal/scraper"
)

// NewResearchCmd creates the research command.
func NewResearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "research [brand-url]",
		Short: "Research export opportunities for a brand website",
		Long: `Research runs the full export research pipeline for a brand website.

It scrapes the site for title, meta description, and product headings,
queries UN Comtrade for promising export markets, loads a buyer list
(your CSV or the built-in samples), maps market countries to trusted
distributors, and composes an export opportunity report.

Examples:
  # Research a single brand site
  exportscout research https://example-brand.com

  # Add product keywords for the market query
  exportscout research -k "Mobility equipment" https://example-brand.com

  # Use your own buyer list
  exportscout research --buyers buyers.csv https://example-brand.com

  # Write a Markdown report file
  exportscout research -m -o export_report.md https://example-brand.com

  # Emit a self-contained download link instead of a plain file
  exportscout research --link -o report_link.html https://example-brand.com

  # Research several brands concurrently
  exportscout research site1.com site2.com site3.com`,
		Args: cobra.ArbitraryArgs,
		RunE: runResearchCmd,
	}

	// Pipeline input flags
	cmd.Flags().StringP("keywords", "k", "",
		"Product category keywords for the market query")
	cmd.Flags().String("buyers", "",
		"Path to a buyer list CSV (arbitrary columns; company/country/contact recognized)")

	// Network behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each outbound HTTP request")
	cmd.Flags().Bool("offline", false,
		"Use built-in fixture market data instead of the live trade API")
	cmd.Flags().String("api-key", "",
		"UN Comtrade subscription key (overrides the config file)")

	// Batch flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent runs when multiple URLs are given")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .exportscout in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().BoolP("link", "l", false,
		"Output the Markdown report as a base64 data-URI download link")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runResearchCmd executes the research command.
func runResearchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Structured logging with credential masking: the Comtrade
	// subscription key must never reach the log sink in clear text.
	logger := ilog.NewMaskingLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runResearch(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// config file. Flags take priority over file values.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ProductTerm, err = cmd.Flags().GetString("keywords")
	if err != nil {
		return nil, err
	}

	cfg.BuyersCSV, err = cmd.Flags().GetString("buyers")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.Offline, err = cmd.Flags().GetBool("offline")
	if err != nil {
		return nil, err
	}

	apiKey, err := cmd.Flags().GetString("api-key")
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		cfg.ComtradeAPIKey = apiKey
	}

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load the config file. An explicitly specified path that does not
	// exist is an error; a missing default-location file is not.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.DownloadLink, err = cmd.Flags().GetBool("link")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are the brand URLs
	cfg.BrandURLs = args

	return cfg, nil
}

// runResearch executes the research pipeline for all configured URLs.
func runResearch(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting research",
		"brandURLs", cfg.BrandURLs,
		"productTerm", cfg.Term(),
		"offline", cfg.Offline,
		"batchSize", cfg.BatchSize,
	)

	newReport := func(brandURL string) *model.ResearchReport {
		return model.NewResearchReport(brandURL, cfg.ProductTerm, cfg.DefaultTerm)
	}

	if len(cfg.BrandURLs) > 1 && cfg.BatchSize > 1 {
		return runBatchResearch(ctx, cfg, newReport, logger)
	}

	return runSequentialResearch(ctx, cfg, newReport, logger)
}

// runSequentialResearch researches URLs one at a time.
func runSequentialResearch(ctx context.Context, cfg *config.Config, newReport func(string) *model.ResearchReport, logger *slog.Logger) error {
	for _, brandURL := range cfg.BrandURLs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p := createPipeline(cfg, logger)
		researchReport := newReport(brandURL)

		fmt.Printf("Researching %s...\n", brandURL)
		startTime := time.Now()

		if err := p.Execute(ctx, researchReport); err != nil {
			// The scrape is the only fatal stage: surface the error and
			// skip report generation for this URL, nothing downstream ran.
			logger.Error("research failed", "brandURL", brandURL, "error", err)
			fmt.Fprintf(os.Stderr, "Research error for %s: %v\n", brandURL, err)
			continue
		}

		fmt.Printf("Research completed in %s\n\n", time.Since(startTime).Round(time.Millisecond))

		if err := outputReport(cfg, researchReport); err != nil {
			logger.Error("report failed", "brandURL", brandURL, "error", err)
		}
	}

	return nil
}

// runBatchResearch researches multiple URLs concurrently.
func runBatchResearch(ctx context.Context, cfg *config.Config, newReport func(string) *model.ResearchReport, logger *slog.Logger) error {
	fmt.Printf("Starting batch research of %d brands (concurrency: %d)...\n\n",
		len(cfg.BrandURLs), cfg.BatchSize)

	startTime := time.Now()

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline { return createPipeline(cfg, logger) },
		newReport,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)

	var mu sync.Mutex
	err := bp.ProcessBatchWithCallback(ctx, cfg.BrandURLs, func(r *model.ResearchReport, index int) {
		mu.Lock()
		defer mu.Unlock()

		if r.Failed() {
			fmt.Fprintf(os.Stderr, "[%d/%d] Research error for %s: %s\n",
				index+1, len(cfg.BrandURLs), r.BrandURL, r.ErrorMessage)
			return
		}

		fmt.Printf("[%d/%d] Research completed: %s\n", index+1, len(cfg.BrandURLs), r.BrandURL)

		if err := outputReport(cfg, r); err != nil {
			logger.Error("report failed", "brandURL", r.BrandURL, "error", err)
		}
	})

	fmt.Printf("\nBatch research completed in %s\n", time.Since(startTime).Round(time.Millisecond))

	return err
}

// createPipeline assembles the research pipeline from the configuration.
func createPipeline(cfg *config.Config, logger *slog.Logger) *pipeline.Pipeline {
	siteScraper := scraper.New(cfg.Timeout,
		scraper.WithUserAgent(cfg.UserAgent),
		scraper.WithMaxBodySize(cfg.MaxBodySize),
		scraper.WithMaxHeadings(cfg.MaxHeadings),
		scraper.WithMinHeadingLength(cfg.MinHeadingLength),
	)

	var marketSource market.Source
	if cfg.Offline {
		marketSource = market.NewFixtureSource()
	} else {
		marketSource = market.NewComtradeClient(
			cfg.ComtradeEndpoint,
			cfg.ComtradeAPIKey,
			cfg.Timeout,
			market.WithMaxRows(cfg.MaxMarkets),
			market.WithPeriod(config.ComtradePeriodStart, config.ComtradePeriodEnd),
		)
	}

	var buyerSource buyers.Source
	fromUpload := cfg.BuyersCSV != ""
	if fromUpload {
		buyerSource = buyers.NewCSVSource(cfg.BuyersCSV)
	} else {
		buyerSource = buyers.NewFixtureSource()
	}

	directory := distributor.NewDirectory(cfg.Distributors)

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewScrapeStep(siteScraper),
		pipeline.NewMarketStep(marketSource),
		pipeline.NewBuyerStep(buyerSource, fromUpload),
		pipeline.NewDistributorStep(directory),
	)

	return p
}

// outputReport renders the report in the requested format.
//
// When writing to a file, the human-readable rendering still goes to the
// terminal so the run's tables stay visible on screen alongside the
// artifact.
func outputReport(cfg *config.Config, researchReport *model.ResearchReport) error {
	dest := os.Stdout
	toFile := cfg.ReportFile != ""

	if toFile {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close() //nolint:errcheck // Flushed by the writer below
		dest = f
	}

	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewFullJSONWriter(dest, getVersion(), report.WithPrettyPrint())
	case cfg.DownloadLink:
		w = report.NewArtifactWriter(dest)
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(dest)
	default:
		w = report.NewSimpleWriter(dest)
	}

	if toFile {
		w = report.NewMultiWriter(report.NewSimpleWriter(os.Stdout), w)
	}

	_, err := w.Write(researchReport)
	return err
}
