// Package pipeline orchestrates the research stages for a brand URL.
//
// A run executes four steps in order: scrape the brand site, suggest
// export markets, load the buyer list, and look up trusted distributors.
// The scrape gates everything: its failure halts the run. The remaining
// steps degrade to placeholder output instead of failing, recording what
// went wrong on the report.
package pipeline
