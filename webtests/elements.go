package webtests

import "strings"

// The admin page follows two naming conventions, so steps can derive element
// ids from the names used in test phrasing instead of maintaining a lookup
// table. Input fields have ids like "product_name" (the field name lowercased
// with spaces as underscores, behind a fixed prefix); buttons have ids like
// "search-btn" (the label lowercased with spaces as underscores, plus a fixed
// suffix). This couples test phrasing to the markup, which is the intended
// trade: adding a field to the page needs no harness change.
const (
	fieldIDPrefix  = "product_"
	buttonIDSuffix = "-btn"

	searchResultsID = "search_results"
	flashMessageID  = "flash_message"
)

// FieldElementID derives the id of an input field from its human-readable
// name, e.g. "Name" becomes "product_name" and "Sale Price" would become
// "product_sale_price".
func FieldElementID(name string) string {
	return fieldIDPrefix + strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// ButtonElementID derives the id of a button from its label, e.g. "Search"
// becomes "search-btn".
func ButtonElementID(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_") + buttonIDSuffix
}

// columnIndexes maps results-table column names to their cell position.
// These must be adjusted if the page's table layout changes.
var columnIndexes = map[string]int{
	"Id":          0,
	"Name":        1,
	"Description": 2,
	"Price":       3,
	"Available":   4,
	"Category":    5,
}
