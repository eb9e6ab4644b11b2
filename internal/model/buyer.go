package model

// BuyerRecord is a contact entry representing a prospective purchasing
// company abroad. Records come either from a user-supplied CSV (arbitrary
// schema, unvalidated) or from the built-in fixture list.
type BuyerRecord struct {
	// Company is the buyer's company name.
	Company string `json:"company"`

	// Country is the buyer's country.
	Country string `json:"country"`

	// Contact is a free-form contact string, typically an email address.
	Contact string `json:"contact"`
}
