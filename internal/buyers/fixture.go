package buyers

import (
	"context"

	"github.com/exportscout/exportscout/internal/model"
)

// FixtureSource returns a fixed table of exactly three buyer records.
//
// This is a known stub, not a real lookup: the product term is accepted
// but does not vary the output. It exists so the pipeline produces a
// complete report before a real buyer-list integration is wired in.
type FixtureSource struct{}

// NewFixtureSource creates a FixtureSource.
func NewFixtureSource() *FixtureSource {
	return &FixtureSource{}
}

// fixtureBuyers is the built-in buyer list.
var fixtureBuyers = []model.BuyerRecord{
	{Company: "ExportYeti Buyers Co.", Country: "USA", Contact: "contact@buyexportyeti.com"},
	{Company: "Global Import Ventures", Country: "Mexico", Contact: "sales@globalimport.mx"},
	{Company: "AsiaMed Devices", Country: "Philippines", Contact: "info@asiamed.ph"},
}

// Buyers returns a copy of the fixture table regardless of the term.
func (s *FixtureSource) Buyers(_ context.Context, _ string) ([]model.BuyerRecord, error) {
	records := make([]model.BuyerRecord, len(fixtureBuyers))
	copy(records, fixtureBuyers)
	return records, nil
}
