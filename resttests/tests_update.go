package resttests

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoundofi/tdd-bdd-final-project/catalog"
)

func DoUpdateTests(t *T) {
	t.Run("update an existing product", func(t *T) {
		product := t.CreateProducts(1)[0]

		product.Description = "Updated description for testing"
		product.Price = decimal.RequireFromString("99.99")
		product.Available = false
		product.Category = catalog.CategoryAutomotive

		resp, err := t.client.UpdateProduct(product.ID, product)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Status)
		updated := requireSameProduct(t, product, resp)
		assert.Equal(t, product.ID, updated.ID)

		// the change must be persisted, not just echoed
		readBack, err := t.client.GetProduct(product.ID)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, readBack.Status)
		requireSameProduct(t, product, readBack)
	})

	t.Run("update a missing product", func(t *T) {
		resp, err := t.client.UpdateProduct(0, catalog.RandomProduct())
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.Status)
		assert.Contains(t, resp.Message(), "was not found")
	})

	t.Run("update with no data is rejected", func(t *T) {
		product := t.CreateProducts(1)[0]

		resp, err := t.client.UpdateProduct(product.ID, map[string]interface{}{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})

	t.Run("update with a non-numeric price is rejected", func(t *T) {
		product := t.CreateProducts(1)[0]
		payload := product.AsMap()
		payload["price"] = "not-a-number"

		resp, err := t.client.UpdateProduct(product.ID, payload)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})

	t.Run("update with the wrong content type is rejected", func(t *T) {
		product := t.CreateProducts(1)[0]

		resp, err := t.client.UpdateProductRaw(product.ID, "text/plain", []byte("bad data"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.Status)
	})
}
