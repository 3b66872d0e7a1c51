// Package catalog contains the domain vocabulary shared by both test suites:
// the Product payload as the service encodes it, the category labels, a
// factory for generating test products, and an HTTP client for the service's
// REST API. The harness never owns a live Product; these types only describe
// what is sent to and received from the service under test.
package catalog

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Category is one of the fixed category labels the service accepts.
type Category string

const (
	CategoryUnknown    Category = "UNKNOWN"
	CategoryCloths     Category = "CLOTHS"
	CategoryFood       Category = "FOOD"
	CategoryHousewares Category = "HOUSEWARES"
	CategoryAutomotive Category = "AUTOMOTIVE"
	CategoryTools      Category = "TOOLS"
)

// Categories lists every valid category label.
var Categories = []Category{
	CategoryUnknown,
	CategoryCloths,
	CategoryFood,
	CategoryHousewares,
	CategoryAutomotive,
	CategoryTools,
}

// Product mirrors the service's JSON representation of a product. Price is
// carried as a decimal so that "19.9" and "19.90" compare equal; on the wire
// it is a decimal-as-string.
type Product struct {
	ID          int             `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
	Category    Category        `json:"category"`
}

// AsMap returns the product's JSON fields as a map, so tests can remove or
// corrupt individual fields before sending a request.
func (p Product) AsMap() map[string]interface{} {
	data, err := json.Marshal(p)
	if err != nil {
		panic(err) // a Product is always marshalable
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		panic(err)
	}
	return m
}
