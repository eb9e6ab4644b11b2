package report

import (
	"io"

	"github.com/exportscout/exportscout/internal/model"
)

// Writer defines the interface for report output.
// Implementations render a research report in a specific format.
//
// Design decision: an interface so different formats and destinations
// (terminal, file, buffer) share one API, and so the CLI can fan a report
// out to several destinations at once via MultiWriter.
type Writer interface {
	// Write renders the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.ResearchReport) (int, error)
}

// MultiWriter writes a report to multiple Writers, e.g. a terminal
// rendering plus a Markdown file.
//
// Design decision: a separate type rather than io.MultiWriter because our
// Writer renders reports, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the report with every configured Writer.
// Returns the total bytes written; stops on the first error.
func (m *MultiWriter) Write(report *model.ResearchReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
