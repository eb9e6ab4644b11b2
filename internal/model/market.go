package model

// Sentinel country values that may appear in a market table when the
// upstream query fails. Rows carrying these countries are excluded from
// distributor lookup.
const (
	// MarketCountryError marks the single-row error table produced when
	// the market query fails.
	MarketCountryError = "Error"

	// MarketCountryException is a legacy sentinel kept for compatibility
	// with older report consumers; it is treated exactly like
	// MarketCountryError during distributor lookup.
	MarketCountryException = "Exception"

	// MarketFieldNA is the placeholder for a missing field in an upstream
	// market entry.
	MarketFieldNA = "N/A"
)

// MarketRow is one country-level entry in the ranked export-opportunity
// table returned by a market source.
//
// DemandScore is an opaque pass-through of an upstream label, not a
// numeric score. The upstream trade API documents the field as a flow
// description, so callers must not parse, compare, or sort it as a
// number. If a real ranking metric is ever sourced, this field should be
// replaced rather than coerced.
type MarketRow struct {
	// Country is the partner country name, or MarketFieldNA when the
	// upstream entry omits it.
	Country string `json:"country"`

	// DemandScore is the upstream label for this entry (see type comment).
	DemandScore string `json:"demand_score"`
}

// MarketErrorRow builds the single-row table that replaces market data
// when the upstream query fails. The failure message rides in the
// DemandScore column so the table shape stays constant.
func MarketErrorRow(msg string) []MarketRow {
	return []MarketRow{{Country: MarketCountryError, DemandScore: msg}}
}

// IsMarketSentinel reports whether the country is one of the error
// sentinels rather than a real country name.
func IsMarketSentinel(country string) bool {
	return country == MarketCountryError || country == MarketCountryException
}
