package resttests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoReadTests(t *T) {
	t.Run("read a single product", func(t *T) {
		product := t.CreateProducts(1)[0]

		resp, err := t.client.GetProduct(product.ID)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Status)
		requireSameProduct(t, product, resp)
	})

	t.Run("read a missing product", func(t *T) {
		resp, err := t.client.GetProduct(0)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.Status)
		assert.Contains(t, resp.Message(), "was not found")
	})
}
