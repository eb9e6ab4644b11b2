package distributor

import (
	"golang.org/x/text/cases"

	"github.com/exportscout/exportscout/internal/model"
)

// Directory is an in-memory static mapping of country names to ordered
// trusted distributor lists. Lookup is a pure function: the same country
// always yields the same ordered list, and nothing is mutated after
// construction.
type Directory struct {
	// entries maps case-folded country names to distributor names in
	// directory order.
	entries map[string][]string
}

// builtinEntries is the reference distributor data shipped with the tool.
var builtinEntries = map[string][]string{
	"USA":         {"MedEquip USA", "Trusted Medical Supplies"},
	"Mexico":      {"Distribuciones SaludMX", "Grupo Médico MX"},
	"Philippines": {"PhilMed Distributors", "Manila Health Corp"},
}

// folder normalizes country names for case-insensitive matching.
// Unicode case folding rather than ToLower so names like "İstanbul"
// match regardless of locale casing rules.
var folder = cases.Fold()

// NewDirectory creates a Directory with the built-in reference data plus
// any extra entries, typically loaded from the config file. An extra
// entry for a country already present replaces the built-in list.
func NewDirectory(extra map[string][]string) *Directory {
	entries := make(map[string][]string, len(builtinEntries)+len(extra))

	for country, names := range builtinEntries {
		entries[folder.String(country)] = names
	}
	for country, names := range extra {
		copied := make([]string, len(names))
		copy(copied, names)
		entries[folder.String(country)] = copied
	}

	return &Directory{entries: entries}
}

// Lookup returns the trusted distributor records for a country.
// Matching is case-insensitive, but the returned records carry the
// country exactly as the caller requested it. Unknown countries produce
// a single sentinel record.
func (d *Directory) Lookup(country string) []model.DistributorRecord {
	names, ok := d.entries[folder.String(country)]
	if !ok {
		return []model.DistributorRecord{
			{Distributor: model.NoTrustedPartners, Country: country},
		}
	}

	records := make([]model.DistributorRecord, 0, len(names))
	for _, name := range names {
		records = append(records, model.DistributorRecord{
			Distributor: name,
			Country:     country,
		})
	}
	return records
}

// LookupAll runs Lookup once per distinct country, in input order, and
// concatenates the results preserving per-country grouping. Market error
// sentinels ("Error", "Exception") are skipped, as are repeated
// countries.
func (d *Directory) LookupAll(countries []string) []model.DistributorRecord {
	seen := make(map[string]bool, len(countries))
	combined := make([]model.DistributorRecord, 0)

	for _, country := range countries {
		if model.IsMarketSentinel(country) {
			continue
		}
		key := folder.String(country)
		if seen[key] {
			continue
		}
		seen[key] = true

		combined = append(combined, d.Lookup(country)...)
	}

	return combined
}
