package resttests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoServiceTests(t *T) {
	t.Run("index page shows the administration UI", func(t *T) {
		resp, err := t.client.Index()
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Contains(t, string(resp.Body), "Product Catalog Administration")
	})

	t.Run("health resource reports OK", func(t *T) {
		resp, err := t.client.Health()
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
		assert.Equal(t, "OK", resp.Message())
	})
}
