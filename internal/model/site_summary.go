package model

// Fallback values used by the scraper when a page lacks the
// corresponding element. These literals are part of the report contract:
// downstream consumers and tests match on them.
const (
	// NoTitleFound is the title fallback for pages without a <title> element.
	NoTitleFound = "No title found"

	// NoDescriptionFound is the description fallback for pages without a
	// meta description tag (or with a malformed one).
	NoDescriptionFound = "No description found"
)

// SiteSummary holds the descriptive text extracted from a brand website.
// It is produced once by the scraper and never mutated afterwards.
type SiteSummary struct {
	// Title is the page's document title, verbatim. The scraper does not
	// trim or otherwise alter it. Falls back to NoTitleFound.
	Title string `json:"title"`

	// Description is the content attribute of the page's meta description
	// tag. Falls back to NoDescriptionFound.
	Description string `json:"description"`

	// Headings contains the first qualifying h1-h3 text nodes in document
	// order. The scraper caps this list (10 by default) and only keeps
	// headings whose trimmed text is longer than a minimum length.
	Headings []string `json:"headings"`
}

// NewSiteSummary creates a SiteSummary with fallback title and description
// and no headings. The scraper overwrites fields as it finds content.
func NewSiteSummary() *SiteSummary {
	return &SiteSummary{
		Title:       NoTitleFound,
		Description: NoDescriptionFound,
		Headings:    make([]string, 0),
	}
}
