package model

// NoTrustedPartners is the sentinel distributor name returned for
// countries absent from the distributor directory. It pairs with the
// requested country so the combined table stays well formed.
const NoTrustedPartners = "No trusted partners listed"

// DistributorRecord pairs a trusted distributor name with the country it
// serves. Produced by the distributor directory, one group per country.
type DistributorRecord struct {
	// Distributor is the distributor's name, or NoTrustedPartners.
	Distributor string `json:"distributor"`

	// Country is the country the lookup was performed for, exactly as
	// requested by the caller.
	Country string `json:"country"`
}

// DistributorGroup is a per-country slice of distributor names, used for
// the grouped report rendering.
type DistributorGroup struct {
	// Country is the group's country, as it appeared in the combined table.
	Country string `json:"country"`

	// Distributors are the names in directory order.
	Distributors []string `json:"distributors"`
}

// GroupDistributors groups a combined distributor table by country,
// preserving each country's first appearance order and the per-country
// record order.
//
// Design decision: grouping lives in the model rather than the report
// writers because every output format (Markdown, JSON, terminal) renders
// distributors grouped the same way.
func GroupDistributors(records []DistributorRecord) []DistributorGroup {
	groups := make([]DistributorGroup, 0)
	index := make(map[string]int)

	for _, rec := range records {
		i, ok := index[rec.Country]
		if !ok {
			i = len(groups)
			index[rec.Country] = i
			groups = append(groups, DistributorGroup{
				Country:      rec.Country,
				Distributors: make([]string, 0, 1),
			})
		}
		groups[i].Distributors = append(groups[i].Distributors, rec.Distributor)
	}

	return groups
}
