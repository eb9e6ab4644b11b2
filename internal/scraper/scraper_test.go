package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/exportscout/exportscout/internal/model"
)

// serve starts an httptest server returning the given HTML.
func serve(t *testing.T, html string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(server.Close)
	return server
}

// TestScrape tests the full extraction path against a local server.
func TestScrape(t *testing.T) {
	t.Parallel()

	server := serve(t, `<!DOCTYPE html>
<html>
<head>
<title>Acme Mobility</title>
<meta name="description" content="Quality mobility equipment since 1985.">
</head>
<body>
<h1>Power Wheelchairs</h1>
<h2>Nav</h2>
<h2>Mobility Scooters for Everyday Use</h2>
<h3>Walking Aids and Rollators</h3>
</body>
</html>`)

	s := New(10 * time.Second)
	summary, err := s.Scrape(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Title != "Acme Mobility" {
		t.Errorf("Title = %q, want %q", summary.Title, "Acme Mobility")
	}
	if summary.Description != "Quality mobility equipment since 1985." {
		t.Errorf("Description = %q", summary.Description)
	}

	// "Nav" is 3 characters, below the 5-character floor.
	want := []string{
		"Power Wheelchairs",
		"Mobility Scooters for Everyday Use",
		"Walking Aids and Rollators",
	}
	if !reflect.DeepEqual(summary.Headings, want) {
		t.Errorf("Headings = %v, want %v", summary.Headings, want)
	}
}

// TestScrapeTitleVerbatim tests that the title text is not trimmed.
func TestScrapeTitleVerbatim(t *testing.T) {
	t.Parallel()

	server := serve(t, "<html><head><title>  Acme Mobility  </title></head><body></body></html>")

	s := New(10 * time.Second)
	summary, err := s.Scrape(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Title != "  Acme Mobility  " {
		t.Errorf("Title = %q, want whitespace preserved", summary.Title)
	}
}

// TestScrapeFallbacks tests missing title and description.
func TestScrapeFallbacks(t *testing.T) {
	t.Parallel()

	server := serve(t, "<html><head></head><body><p>hello</p></body></html>")

	s := New(10 * time.Second)
	summary, err := s.Scrape(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Title != model.NoTitleFound {
		t.Errorf("Title = %q, want %q", summary.Title, model.NoTitleFound)
	}
	if summary.Description != model.NoDescriptionFound {
		t.Errorf("Description = %q, want %q", summary.Description, model.NoDescriptionFound)
	}
	if len(summary.Headings) != 0 {
		t.Errorf("Headings = %v, want empty", summary.Headings)
	}
}

// TestScrapeHeadingFilters tests the length floor and the heading cap.
func TestScrapeHeadingFilters(t *testing.T) {
	t.Parallel()

	t.Run("boundary length is excluded", func(t *testing.T) {
		t.Parallel()

		// "Exact" is exactly 5 characters; the filter keeps only strictly
		// longer headings.
		server := serve(t, `<html><body>
<h1>Exact</h1>
<h2>Longer heading</h2>
</body></html>`)

		s := New(10 * time.Second)
		summary, err := s.Scrape(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(summary.Headings, []string{"Longer heading"}) {
			t.Errorf("Headings = %v, want [Longer heading]", summary.Headings)
		}
	})

	t.Run("length is counted in characters, not bytes", func(t *testing.T) {
		t.Parallel()

		// "日本語" is 3 characters (9 bytes) and must be filtered out;
		// "車椅子とシニアカー" is 9 characters and must survive.
		server := serve(t, `<html><body>
<h1>日本語</h1>
<h2>車椅子とシニアカー</h2>
</body></html>`)

		s := New(10 * time.Second)
		summary, err := s.Scrape(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(summary.Headings, []string{"車椅子とシニアカー"}) {
			t.Errorf("Headings = %v, want only the 9-character heading", summary.Headings)
		}
	})

	t.Run("headings are trimmed before filtering", func(t *testing.T) {
		t.Parallel()

		server := serve(t, "<html><body><h1>   Wheelchair Range   </h1></body></html>")

		s := New(10 * time.Second)
		summary, err := s.Scrape(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(summary.Headings, []string{"Wheelchair Range"}) {
			t.Errorf("Headings = %v, want trimmed text", summary.Headings)
		}
	})

	t.Run("heading list is capped", func(t *testing.T) {
		t.Parallel()

		var html string
		for i := 0; i < 15; i++ {
			html += "<h2>Product heading number " + string(rune('A'+i)) + "</h2>"
		}
		server := serve(t, "<html><body>"+html+"</body></html>")

		s := New(10 * time.Second)
		summary, err := s.Scrape(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(summary.Headings) != 10 {
			t.Errorf("len(Headings) = %d, want 10", len(summary.Headings))
		}
	})

	t.Run("lower heading levels are ignored", func(t *testing.T) {
		t.Parallel()

		server := serve(t, `<html><body>
<h3>Level three heading</h3>
<h4>Level four heading</h4>
<h5>Level five heading</h5>
</body></html>`)

		s := New(10 * time.Second)
		summary, err := s.Scrape(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(summary.Headings, []string{"Level three heading"}) {
			t.Errorf("Headings = %v, want only h1-h3 content", summary.Headings)
		}
	})
}

// TestScrapeErrors tests the fatal error paths.
func TestScrapeErrors(t *testing.T) {
	t.Parallel()

	t.Run("non-2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		t.Cleanup(server.Close)

		s := New(10 * time.Second)
		if _, err := s.Scrape(context.Background(), server.URL); err == nil {
			t.Error("expected error for 404 response")
		}
	})

	t.Run("connection refused", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		server.Close() // nothing listens here anymore

		s := New(10 * time.Second)
		if _, err := s.Scrape(context.Background(), server.URL); err == nil {
			t.Error("expected error for refused connection")
		}
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(500 * time.Millisecond)
			_, _ = w.Write([]byte("<html></html>"))
		}))
		t.Cleanup(server.Close)

		s := New(50 * time.Millisecond)
		if _, err := s.Scrape(context.Background(), server.URL); err == nil {
			t.Error("expected timeout error")
		}
	})

	t.Run("invalid URL", func(t *testing.T) {
		t.Parallel()

		s := New(10 * time.Second)
		if _, err := s.Scrape(context.Background(), "://not-a-url"); err == nil {
			t.Error("expected error for invalid URL")
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		server := serve(t, "<html></html>")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := New(10 * time.Second)
		if _, err := s.Scrape(ctx, server.URL); err == nil {
			t.Error("expected error for canceled context")
		}
	})
}

// TestScrapeOptions tests functional option wiring.
func TestScrapeOptions(t *testing.T) {
	t.Parallel()

	t.Run("user agent is sent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("<html></html>"))
		}))
		t.Cleanup(server.Close)

		s := New(10*time.Second, WithUserAgent("custom-agent/2.0"))
		if _, err := s.Scrape(context.Background(), server.URL); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotUA != "custom-agent/2.0" {
			t.Errorf("User-Agent = %q, want %q", gotUA, "custom-agent/2.0")
		}
	})

	t.Run("max headings override", func(t *testing.T) {
		t.Parallel()

		server := serve(t, `<html><body>
<h1>First long heading</h1>
<h1>Second long heading</h1>
<h1>Third long heading</h1>
</body></html>`)

		s := New(10*time.Second, WithMaxHeadings(2))
		summary, err := s.Scrape(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(summary.Headings) != 2 {
			t.Errorf("len(Headings) = %d, want 2", len(summary.Headings))
		}
	})
}
