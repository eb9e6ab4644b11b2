package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/exportscout/exportscout/internal/model"
)

// Scraper fetches and parses brand websites.
//
// Design decision: we use goquery rather than walking the x/net/html tree
// by hand because the extraction is selector-shaped (title, one meta tag,
// heading levels 1-3) and goquery handles malformed real-world HTML the
// same way browsers do.
type Scraper struct {
	// client is the HTTP client used for the single GET. Its Timeout
	// bounds the whole request including body read.
	client *http.Client

	// userAgent is sent with the request.
	userAgent string

	// maxBodySize caps how many bytes of the response are parsed.
	maxBodySize int64

	// maxHeadings caps the extracted heading list.
	maxHeadings int

	// minHeadingLength is the minimum trimmed heading length to keep.
	// Shorter headings are navigation stubs, not product text.
	minHeadingLength int
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithHTTPClient replaces the HTTP client. Mainly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) {
		s.client = client
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(s *Scraper) {
		s.userAgent = ua
	}
}

// WithMaxBodySize caps the response body size in bytes.
func WithMaxBodySize(size int64) Option {
	return func(s *Scraper) {
		s.maxBodySize = size
	}
}

// WithMaxHeadings caps the extracted heading list.
func WithMaxHeadings(n int) Option {
	return func(s *Scraper) {
		s.maxHeadings = n
	}
}

// WithMinHeadingLength sets the minimum trimmed heading length to keep.
func WithMinHeadingLength(n int) Option {
	return func(s *Scraper) {
		s.minHeadingLength = n
	}
}

// New creates a Scraper with the given request timeout.
func New(timeout time.Duration, opts ...Option) *Scraper {
	s := &Scraper{
		client:           &http.Client{Timeout: timeout},
		userAgent:        "ExportScout/1.0",
		maxBodySize:      5 * 1024 * 1024, // 5MB
		maxHeadings:      10,
		minHeadingLength: 5,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scrape fetches the URL and extracts a SiteSummary.
// Any network, HTTP-status, or parse failure is returned as an error;
// there are no retries and the caller treats the failure as fatal.
func (s *Scraper) Scrape(ctx context.Context, url string) (*model.SiteSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid brand URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close() //nolint:errcheck // Read-only body

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	body := io.LimitReader(resp.Body, s.maxBodySize)
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}

	return s.extract(doc), nil
}

// extract pulls the summary fields out of a parsed document.
func (s *Scraper) extract(doc *goquery.Document) *model.SiteSummary {
	summary := model.NewSiteSummary()

	// Title is taken verbatim: reports must show exactly what the page
	// declares. The fallback applies only when the element is absent.
	if title := doc.Find("title"); title.Length() > 0 {
		summary.Title = title.First().Text()
	}

	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		summary.Description = content
	}

	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		// Length is counted in characters, not bytes, so multi-byte
		// headings are filtered the same as ASCII ones.
		if utf8.RuneCountInString(text) <= s.minHeadingLength {
			return true
		}
		summary.Headings = append(summary.Headings, text)
		return len(summary.Headings) < s.maxHeadings
	})

	return summary
}
