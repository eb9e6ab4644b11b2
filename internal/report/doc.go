// Package report renders research reports in multiple formats:
// Markdown for sharing, JSON for tooling, a human-readable terminal
// rendering, and a self-contained base64 download-link artifact.
package report
