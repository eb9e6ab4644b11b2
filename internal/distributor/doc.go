// Package distributor maps countries to trusted local distributor names
// using an in-memory static directory.
package distributor
