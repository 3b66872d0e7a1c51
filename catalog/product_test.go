package catalog

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductMarshalsPriceAsDecimalString(t *testing.T) {
	p := Product{
		Name:        "Hat",
		Description: "A red fedora",
		Price:       decimal.RequireFromString("59.95"),
		Available:   true,
		Category:    CategoryCloths,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "59.95", raw["price"])
	assert.Equal(t, "Hat", raw["name"])
	assert.Equal(t, true, raw["available"])
	assert.Equal(t, "CLOTHS", raw["category"])
	assert.NotContains(t, raw, "id") // server-assigned, omitted when unset
}

func TestProductUnmarshalAcceptsQuotedAndUnquotedPrice(t *testing.T) {
	for _, body := range []string{
		`{"id": 3, "name": "Hat", "price": "19.90"}`,
		`{"id": 3, "name": "Hat", "price": 19.9}`,
	} {
		var p Product
		require.NoError(t, json.Unmarshal([]byte(body), &p), body)
		assert.True(t, p.Price.Equal(decimal.RequireFromString("19.9")), body)
	}
}

func TestProductAsMapAllowsFieldRemoval(t *testing.T) {
	p := RandomProduct()
	m := p.AsMap()
	require.Contains(t, m, "name")
	delete(m, "name")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"name"`)
}

func TestRandomProductIsWithinExpectedRanges(t *testing.T) {
	lower := decimal.RequireFromString("0.50")
	upper := decimal.RequireFromString("2000.00")
	for i := 0; i < 100; i++ {
		p := RandomProduct()
		assert.Contains(t, productNames, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.Contains(t, Categories, p.Category)
		assert.True(t, p.Price.GreaterThanOrEqual(lower), "price %s too low", p.Price)
		assert.True(t, p.Price.LessThanOrEqual(upper), "price %s too high", p.Price)
	}
}

func TestRandomProductsGeneratesDistinctDescriptions(t *testing.T) {
	products := RandomProducts(5)
	require.Len(t, products, 5)
	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.Description], "duplicate description %q", p.Description)
		seen[p.Description] = true
	}
}
