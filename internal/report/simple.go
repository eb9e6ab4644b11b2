package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/exportscout/exportscout/internal/model"
)

// SimpleWriter renders a human-readable report for terminal display.
// This is the tool's on-screen display surface: each intermediate table
// (markets, buyers, distributors) is rendered as a bordered text table.
//
// Design decision: go-pretty for the tables rather than hand-aligned
// columns; it handles wide runes and keeps the rendering code declarative.
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no content are shown.
	showEmpty bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the report in human-readable format.
func (w *SimpleWriter) Write(report *model.ResearchReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeBrandSummary(&sb, report)
	w.writeMarkets(&sb, report)
	w.writeBuyers(&sb, report)
	w.writeDistributors(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.ResearchReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                    EXPORT OPPORTUNITY REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Brand URL:    %s\n", report.BrandURL))
	sb.WriteString(fmt.Sprintf("Product Term: %s\n", report.ProductTerm))
	sb.WriteString(fmt.Sprintf("Generated:    %s\n", report.DateGenerated.Format("2006-01-02 15:04:05 MST")))

	if report.TimedOut {
		sb.WriteString("Status:       TIMED OUT (partial results)\n")
	} else if report.Failed() {
		sb.WriteString(fmt.Sprintf("Status:       ERROR - %s\n", report.ErrorMessage))
	} else {
		sb.WriteString("Status:       Complete\n")
	}

	sb.WriteString("\n")
}

// sectionHeader writes a dashed section divider.
func (w *SimpleWriter) sectionHeader(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}

// writeBrandSummary writes the scraped site information.
func (w *SimpleWriter) writeBrandSummary(sb *strings.Builder, report *model.ResearchReport) {
	if report.Site == nil && !w.showEmpty {
		return
	}

	w.sectionHeader(sb, "BRAND SUMMARY")

	site := report.Site
	if site == nil {
		site = model.NewSiteSummary()
	}

	sb.WriteString(fmt.Sprintf("  Title:       %s\n", site.Title))
	sb.WriteString(fmt.Sprintf("  Description: %s\n", site.Description))

	if len(site.Headings) > 0 {
		sb.WriteString("  Headings:\n")
		for _, h := range site.Headings {
			sb.WriteString(fmt.Sprintf("    * %s\n", h))
		}
	} else {
		sb.WriteString("  Headings:    none found\n")
	}
	sb.WriteString("\n")
}

// writeMarkets writes the export-opportunity table.
func (w *SimpleWriter) writeMarkets(sb *strings.Builder, report *model.ResearchReport) {
	if len(report.Markets) == 0 && !w.showEmpty {
		return
	}

	w.sectionHeader(sb, "TOP EXPORT MARKETS")

	if len(report.Markets) == 0 {
		sb.WriteString("  No market data available\n\n")
		return
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Country", "Demand Score"})
	for _, row := range report.Markets {
		t.AppendRow(table.Row{row.Country, row.DemandScore})
	}
	sb.WriteString(t.Render())
	sb.WriteString("\n\n")
}

// writeBuyers writes the buyer leads table.
func (w *SimpleWriter) writeBuyers(sb *strings.Builder, report *model.ResearchReport) {
	if len(report.Buyers) == 0 && report.BuyerError == "" && !w.showEmpty {
		return
	}

	w.sectionHeader(sb, "BUYER LEADS")

	if report.BuyerError != "" {
		sb.WriteString(fmt.Sprintf("  [!] Buyer list could not be read: %s\n\n", report.BuyerError))
		return
	}

	if len(report.Buyers) == 0 {
		sb.WriteString("  No buyer leads available\n\n")
		return
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Company", "Country", "Contact"})
	for _, buyer := range report.Buyers {
		t.AppendRow(table.Row{buyer.Company, buyer.Country, buyer.Contact})
	}
	sb.WriteString(t.Render())
	sb.WriteString("\n\n")
}

// writeDistributors writes the grouped distributor listing.
func (w *SimpleWriter) writeDistributors(sb *strings.Builder, report *model.ResearchReport) {
	groups := report.DistributorGroups()
	if len(groups) == 0 && !w.showEmpty {
		return
	}

	w.sectionHeader(sb, "TRUSTED DISTRIBUTORS")

	if len(groups) == 0 {
		sb.WriteString("  No distributor data available\n\n")
		return
	}

	for _, group := range groups {
		sb.WriteString(fmt.Sprintf("  %s:\n", group.Country))
		for _, name := range group.Distributors {
			sb.WriteString(fmt.Sprintf("    - %s\n", name))
		}
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by ExportScout\n")
	sb.WriteString("https://github.com/exportscout/exportscout\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
