// Package market suggests export markets for a product term.
//
// The package exposes a small Source capability with two implementations:
// a live client for the UN Comtrade preview API and a deterministic
// fixture for offline use and tests. Callers pick the implementation via
// configuration; the pipeline treats both identically.
package market
