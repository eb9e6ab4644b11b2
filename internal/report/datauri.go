package report

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/exportscout/exportscout/internal/model"
)

// ArtifactFilename is the download name of the report artifact.
const ArtifactFilename = "export_report.md"

// DefaultLinkText is the anchor text of the generated download link.
const DefaultLinkText = "Download Full Report"

// DataURI encodes content as an inline base64 data URI.
func DataURI(content []byte) string {
	return "data:file/txt;base64," + base64.StdEncoding.EncodeToString(content)
}

// DownloadLink wraps content in a self-contained HTML download anchor.
// The result embeds the full content, so it works without any server.
func DownloadLink(content []byte, filename, linkText string) string {
	return fmt.Sprintf(`<a href="%s" download="%s">%s</a>`, DataURI(content), filename, linkText)
}

// ArtifactWriter renders the Markdown report and wraps it in a
// self-contained base64 download link. This is the report's downloadable
// artifact form: the output is a single HTML anchor that embeds
// export_report.md inline.
//
// A rendering or write failure degrades to an inline error message
// rather than propagating, matching the composer's never-raise contract.
type ArtifactWriter struct {
	baseWriter

	// filename is the artifact's download name.
	filename string

	// linkText is the anchor text.
	linkText string
}

// ArtifactOption configures an ArtifactWriter.
type ArtifactOption func(*ArtifactWriter)

// WithFilename overrides the artifact's download filename.
func WithFilename(name string) ArtifactOption {
	return func(w *ArtifactWriter) {
		w.filename = name
	}
}

// WithLinkText overrides the anchor text.
func WithLinkText(text string) ArtifactOption {
	return func(w *ArtifactWriter) {
		w.linkText = text
	}
}

// NewArtifactWriter creates an ArtifactWriter that outputs to the given writer.
func NewArtifactWriter(output io.Writer, opts ...ArtifactOption) *ArtifactWriter {
	w := &ArtifactWriter{
		baseWriter: newBaseWriter(output),
		filename:   ArtifactFilename,
		linkText:   DefaultLinkText,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the Markdown report and outputs its download link.
func (w *ArtifactWriter) Write(report *model.ResearchReport) (int, error) {
	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(report); err != nil {
		return w.output.Write([]byte(fmt.Sprintf("Error generating download link: %v\n", err)))
	}

	link := DownloadLink(buf.Bytes(), w.filename, w.linkText)
	return w.output.Write([]byte(link + "\n"))
}
