package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/exportscout/exportscout/internal/model"
)

// BatchProcessor researches multiple brand URLs concurrently.
// Concurrency exists only across URLs; each individual run stays
// sequential (the scrape gates its downstream stages).
//
// Design decision: a separate BatchProcessor rather than batch support in
// Pipeline keeps the Pipeline focused on single-run execution and gives
// each run a fresh pipeline via the factory, so no state leaks between
// brands.
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each run.
	pipelineFactory func() *Pipeline

	// newReport creates the empty report for a brand URL. Injected so the
	// processor doesn't need to know about keyword/default-term resolution.
	newReport func(brandURL string) *model.ResearchReport

	// concurrency is the maximum number of concurrent runs.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed reports, ordered like the input URLs.
	results []*model.ResearchReport
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent runs. Default 4.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a BatchProcessor.
func NewBatchProcessor(
	pipelineFactory func() *Pipeline,
	newReport func(brandURL string) *model.ResearchReport,
	opts ...BatchOption,
) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		newReport:       newReport,
		concurrency:     4,
		results:         make([]*model.ResearchReport, 0),
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch researches all URLs concurrently, respecting the
// concurrency limit and context cancellation.
//
// Design decision: errgroup.SetLimit rather than a worker pool; each URL
// gets its own goroutine but only 'concurrency' run simultaneously.
//
// Returns all reports in input order, one per URL, never nil: runs that
// failed carry the failure on the report, and runs skipped because the
// batch was cancelled carry the cancellation error with TimedOut set.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, brandURLs []string) ([]*model.ResearchReport, error) {
	bp.logger.Info("starting batch research",
		"totalURLs", len(brandURLs),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	bp.results = make([]*model.ResearchReport, len(brandURLs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, brandURL := range brandURLs {
		i, brandURL := i, brandURL
		g.Go(func() error {
			select {
			case <-ctx.Done():
				bp.mu.Lock()
				bp.results[i] = bp.cancelledReport(brandURL, ctx.Err())
				bp.mu.Unlock()
				return ctx.Err()
			default:
			}

			report := bp.newReport(brandURL)
			p := bp.pipelineFactory()
			err := p.Execute(ctx, report)

			bp.mu.Lock()
			bp.results[i] = report
			bp.mu.Unlock()

			if err != nil {
				bp.logger.Warn("research failed",
					"brandURL", brandURL,
					"error", err,
				)
				// The failure lives on the report; other runs continue.
				return nil
			}

			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch research complete",
		"totalURLs", len(brandURLs),
		"elapsed", time.Since(startTime),
	)

	return bp.results, err
}

// cancelledReport builds the placeholder report for a run that never
// started because the batch was cancelled.
func (bp *BatchProcessor) cancelledReport(brandURL string, cause error) *model.ResearchReport {
	report := bp.newReport(brandURL)
	report.TimedOut = true
	report.Error = cause
	report.ErrorMessage = cause.Error()
	return report
}

// ProcessBatchWithCallback researches all URLs and calls the callback for
// each run with the report and its input index, including runs skipped by
// cancellation. The callback runs on the goroutine that finished the run
// and must be thread-safe if it touches shared state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	brandURLs []string,
	callback func(report *model.ResearchReport, index int),
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, brandURL := range brandURLs {
		i, brandURL := i, brandURL
		g.Go(func() error {
			select {
			case <-ctx.Done():
				callback(bp.cancelledReport(brandURL, ctx.Err()), i)
				return ctx.Err()
			default:
			}

			report := bp.newReport(brandURL)
			p := bp.pipelineFactory()
			_ = p.Execute(ctx, report) //nolint:errcheck // Error is stored on the report

			callback(report, i)

			return nil
		})
	}

	return g.Wait()
}
