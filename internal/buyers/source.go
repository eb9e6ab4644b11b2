package buyers

import (
	"context"

	"github.com/exportscout/exportscout/internal/model"
)

// Source supplies a buyer contact table for a product term.
type Source interface {
	// Buyers returns the buyer records. An error means the table is
	// unusable (e.g. a malformed upload); the pipeline surfaces it inline
	// and leaves the buyer table empty rather than substituting fixtures.
	Buyers(ctx context.Context, term string) ([]model.BuyerRecord, error)
}
