// Package model defines the data structures shared across the research
// pipeline: the scraped site summary, market rows, buyer records,
// distributor records, and the research report that accumulates them.
//
// All entities are transient, request-scoped value records. Nothing in
// this package performs I/O; producers live in the scraper, market,
// buyers, and distributor packages.
package model
