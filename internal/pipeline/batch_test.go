package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/exportscout/exportscout/internal/model"
)

// urlStep records the brand URL it ran for, failing on demand.
type urlStep struct {
	failFor string
}

func (s *urlStep) Name() string { return "url-step" }

func (s *urlStep) Do(_ context.Context, report *model.ResearchReport) error {
	if s.failFor != "" && strings.Contains(report.BrandURL, s.failFor) {
		return errors.New("step failed for " + report.BrandURL)
	}
	return nil
}

// newTestBatchProcessor wires a BatchProcessor with a single urlStep.
func newTestBatchProcessor(failFor string, opts ...BatchOption) *BatchProcessor {
	factory := func() *Pipeline {
		p := New(WithLogger(quietLogger()))
		p.AddSteps(&urlStep{failFor: failFor})
		return p
	}
	newReport := func(brandURL string) *model.ResearchReport {
		return model.NewResearchReport(brandURL, "term", "default")
	}
	opts = append(opts, WithBatchLogger(quietLogger()))
	return NewBatchProcessor(factory, newReport, opts...)
}

// TestProcessBatch tests concurrent batch research.
func TestProcessBatch(t *testing.T) {
	t.Parallel()

	t.Run("results keep input order", func(t *testing.T) {
		t.Parallel()

		urls := []string{
			"https://a.example.com",
			"https://b.example.com",
			"https://c.example.com",
		}

		bp := newTestBatchProcessor("")
		reports, err := bp.ProcessBatch(context.Background(), urls)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(reports) != len(urls) {
			t.Fatalf("len(reports) = %d, want %d", len(reports), len(urls))
		}
		for i, r := range reports {
			if r.BrandURL != urls[i] {
				t.Errorf("reports[%d].BrandURL = %q, want %q", i, r.BrandURL, urls[i])
			}
		}
	})

	t.Run("failed runs stay in the results with the error recorded", func(t *testing.T) {
		t.Parallel()

		urls := []string{"https://ok.example.com", "https://bad.example.com"}

		bp := newTestBatchProcessor("bad")
		reports, err := bp.ProcessBatch(context.Background(), urls)
		if err != nil {
			t.Fatalf("one failed run must not fail the batch, got %v", err)
		}

		if reports[0].Failed() {
			t.Errorf("reports[0] should have succeeded: %+v", reports[0])
		}
		if !reports[1].Failed() {
			t.Error("reports[1] should carry the step failure")
		}
	})

	t.Run("cancellation leaves no nil results", func(t *testing.T) {
		t.Parallel()

		urls := []string{"https://a.example.com", "https://b.example.com", "https://c.example.com"}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		bp := newTestBatchProcessor("", WithConcurrency(1))
		reports, err := bp.ProcessBatch(ctx, urls)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("ProcessBatch() error = %v, want context.Canceled", err)
		}

		if len(reports) != len(urls) {
			t.Fatalf("len(reports) = %d, want %d", len(reports), len(urls))
		}
		for i, r := range reports {
			if r == nil {
				t.Fatalf("reports[%d] is nil", i)
			}
			if !r.TimedOut {
				t.Errorf("reports[%d].TimedOut = false, want true", i)
			}
			if !r.Failed() {
				t.Errorf("reports[%d] should carry the cancellation error", i)
			}
			if r.BrandURL != urls[i] {
				t.Errorf("reports[%d].BrandURL = %q, want %q", i, r.BrandURL, urls[i])
			}
		}
	})

	t.Run("respects a concurrency of one", func(t *testing.T) {
		t.Parallel()

		urls := []string{"https://a.example.com", "https://b.example.com", "https://c.example.com"}

		bp := newTestBatchProcessor("", WithConcurrency(1))
		reports, err := bp.ProcessBatch(context.Background(), urls)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != 3 {
			t.Errorf("len(reports) = %d, want 3", len(reports))
		}
	})
}

// TestProcessBatchWithCallback tests per-run callbacks.
func TestProcessBatchWithCallback(t *testing.T) {
	t.Parallel()

	urls := []string{"https://a.example.com", "https://b.example.com"}

	var mu sync.Mutex
	got := make(map[int]string)

	bp := newTestBatchProcessor("")
	err := bp.ProcessBatchWithCallback(context.Background(), urls,
		func(report *model.ResearchReport, index int) {
			mu.Lock()
			defer mu.Unlock()
			got[index] = report.BrandURL
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("callback ran %d times, want 2", len(got))
	}
	for i, url := range urls {
		if got[i] != url {
			t.Errorf("callback index %d = %q, want %q", i, got[i], url)
		}
	}
}
