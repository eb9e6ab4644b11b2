// Package main provides the entry point for the ExportScout CLI.
//
// ExportScout is a single-session export research aid: it scrapes a brand
// website, suggests export markets, loads a buyer list, maps market
// countries to trusted distributors, and composes an export opportunity
// report.
//
// Usage:
//
//	exportscout research <brand-url>
//	exportscout research --keywords "Mobility equipment" <brand-url>
//
// See --help for all available options.
package main

// main is the entry point for ExportScout.
func main() {
	Execute()
}
