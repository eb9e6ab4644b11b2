package market

import (
	"context"

	"github.com/exportscout/exportscout/internal/model"
)

// Source fetches an export-opportunity table for a product term.
//
// Design decision: an interface rather than a concrete client so the live
// Comtrade integration and the fixture data are interchangeable. The
// original prototype hardcoded its mock data inline; keeping both behind
// one capability preserves testability without that.
type Source interface {
	// FetchMarkets returns at most the source's configured maximum number
	// of rows for the term. Implementations return an error rather than a
	// placeholder table; the pipeline step decides how to degrade.
	FetchMarkets(ctx context.Context, term string) ([]model.MarketRow, error)
}
