package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/exportscout/exportscout/internal/model"
)

// Section headers of the Markdown report, in render order. Exported as
// constants because tests and downstream consumers match on them.
const (
	SectionTitle        = "Export Opportunity Report"
	SectionBrandSummary = "Brand Summary"
	SectionHeadings     = "Sample Product Headings"
	SectionMarkets      = "Top Markets"
	SectionBuyers       = "Buyer Leads"
	SectionDistributors = "Trusted Distributors by Country"
)

// MarkdownWriter renders reports as GitHub Flavored Markdown.
//
// Design decision: the nao1215/markdown library rather than hand-rolled
// string interpolation gives type-safe tables, bullet lists, and alerts,
// and keeps column escaping out of this package.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the report in Markdown format.
//
// Assembly never raises past this boundary: a panic while composing
// (malformed inputs, nil sections) is recovered and the whole body is
// replaced with a single error message line.
func (w *MarkdownWriter) Write(report *model.ResearchReport) (int, error) {
	return w.output.Write([]byte(w.render(report)))
}

// render builds the full Markdown body.
func (w *MarkdownWriter) render(report *model.ResearchReport) (body string) {
	defer func() {
		if r := recover(); r != nil {
			body = fmt.Sprintf("Report generation failed: %v\n", r)
		}
	}()

	var buf strings.Builder
	md := markdown.NewMarkdown(&buf)

	w.writeHeader(md, report)
	w.writeBrandSummary(md, report)
	w.writeMarkets(md, report)
	w.writeBuyers(md, report)
	w.writeDistributors(md, report)
	w.writeFooter(md)

	if err := md.Build(); err != nil {
		return fmt.Sprintf("Report generation failed: %v\n", err)
	}

	return buf.String()
}

// writeHeader writes the report title and run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ResearchReport) {
	md.H1(SectionTitle)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Brand URL", report.BrandURL},
			{"Product Term", report.ProductTerm},
			{"Generated", report.DateGenerated.Format("2006-01-02 15:04:05 MST")},
			{"Status", w.statusText(report)},
		},
	})
	md.PlainText("")
}

// statusText summarizes the run outcome for the header table.
func (w *MarkdownWriter) statusText(report *model.ResearchReport) string {
	if report.TimedOut {
		return "Timed out (partial results)"
	}
	if report.Failed() {
		return "Error - " + report.ErrorMessage
	}
	return "Complete"
}

// writeBrandSummary writes the scraped site information.
func (w *MarkdownWriter) writeBrandSummary(md *markdown.Markdown, report *model.ResearchReport) {
	md.H2(SectionBrandSummary)
	md.PlainText("")

	site := report.Site
	if site == nil {
		site = model.NewSiteSummary()
	}

	md.PlainText("**Brand Title:** " + site.Title)
	md.PlainText("")
	md.PlainText("**Meta Description:** " + site.Description)
	md.PlainText("")

	md.H3(SectionHeadings)
	md.PlainText("")
	if len(site.Headings) == 0 {
		md.PlainText("No product headings found.")
	} else {
		md.PlainText(strings.Join(site.Headings, ", "))
	}
	md.PlainText("")
}

// writeMarkets writes the export-opportunity table.
func (w *MarkdownWriter) writeMarkets(md *markdown.Markdown, report *model.ResearchReport) {
	md.H2(SectionMarkets)
	md.PlainText("")

	if len(report.Markets) == 0 {
		md.PlainText("No market data available.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Markets))
	for i, row := range report.Markets {
		rows[i] = []string{row.Country, row.DemandScore}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Country", "Demand Score"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.MarketFailed() {
		md.Warningf("Market data could not be retrieved: %s", report.Markets[0].DemandScore)
		md.PlainText("")
	}
}

// writeBuyers writes the buyer leads table.
func (w *MarkdownWriter) writeBuyers(md *markdown.Markdown, report *model.ResearchReport) {
	md.H2(SectionBuyers)
	md.PlainText("")

	if report.BuyerError != "" {
		md.Warningf("Buyer list could not be read: %s", report.BuyerError)
		md.PlainText("")
		return
	}

	if len(report.Buyers) == 0 {
		md.PlainText("No buyer leads available.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Buyers))
	for i, buyer := range report.Buyers {
		rows[i] = []string{buyer.Company, buyer.Country, buyer.Contact}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Company", "Country", "Contact"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeDistributors writes the per-country distributor groups: a bold
// country heading followed by one bullet per distributor, groups ordered
// by first appearance in the combined table.
func (w *MarkdownWriter) writeDistributors(md *markdown.Markdown, report *model.ResearchReport) {
	md.H2(SectionDistributors)
	md.PlainText("")

	groups := report.DistributorGroups()
	if len(groups) == 0 {
		md.PlainText("No distributor data available.")
		md.PlainText("")
		return
	}

	for _, group := range groups {
		md.PlainTextf("**%s Distributors:**", group.Country)
		md.PlainText("")
		md.BulletList(group.Distributors...)
		md.PlainText("")
	}
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by [ExportScout](https://github.com/exportscout/exportscout)*")
}
