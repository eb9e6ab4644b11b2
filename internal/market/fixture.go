package market

import (
	"context"

	"github.com/exportscout/exportscout/internal/model"
)

// FixtureSource returns a fixed market table regardless of the product
// term. It stands in for the live API in offline mode and in tests.
type FixtureSource struct{}

// NewFixtureSource creates a FixtureSource.
func NewFixtureSource() *FixtureSource {
	return &FixtureSource{}
}

// fixtureRows is the canonical offline market table. The demand-score
// column carries the same flow labels the live API returns.
var fixtureRows = []model.MarketRow{
	{Country: "USA", DemandScore: "Import"},
	{Country: "Mexico", DemandScore: "Import"},
	{Country: "Philippines", DemandScore: "Import"},
	{Country: "Germany", DemandScore: "Import"},
	{Country: "Japan", DemandScore: "Import"},
}

// FetchMarkets returns a copy of the fixture table. The term is accepted
// for interface compatibility but does not vary the output.
func (s *FixtureSource) FetchMarkets(_ context.Context, _ string) ([]model.MarketRow, error) {
	rows := make([]model.MarketRow, len(fixtureRows))
	copy(rows, fixtureRows)
	return rows, nil
}
