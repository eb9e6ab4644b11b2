// Package scraper fetches a brand website and extracts its descriptive
// text: document title, meta description, and product headings.
//
// The scrape is a single bounded-timeout GET with no retries. Its failure
// is fatal to the whole research run, unlike the downstream stages which
// degrade to placeholder output.
package scraper
