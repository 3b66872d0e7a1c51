package resttests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoDeleteTests(t *T) {
	t.Run("delete an existing product", func(t *T) {
		products := t.CreateProducts(3)
		require.Equal(t, 3, t.ProductCount())

		resp, err := t.client.DeleteProduct(products[0].ID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.Status)
		assert.Empty(t, resp.Body, "a 204 response must have no body")

		readBack, err := t.client.GetProduct(products[0].ID)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, readBack.Status)
		assert.Equal(t, 2, t.ProductCount())
	})

	t.Run("delete a missing product is not an error", func(t *T) {
		resp, err := t.client.DeleteProduct(0)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.Status)
	})
}
