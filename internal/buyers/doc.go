// Package buyers supplies buyer contact lists, either parsed from a
// user-provided CSV or from a built-in fixture table.
package buyers
