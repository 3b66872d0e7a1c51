package resttests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoundofi/tdd-bdd-final-project/catalog"
)

// requireSameProduct checks every client-supplied field of a returned
// product payload against the product that was sent.
func requireSameProduct(t *T, expected catalog.Product, resp catalog.Response) catalog.Product {
	actual, err := resp.DecodeProduct()
	require.NoError(t, err)
	assert.Equal(t, expected.Name, actual.Name)
	assert.Equal(t, expected.Description, actual.Description)
	assert.True(t, expected.Price.Equal(actual.Price),
		"expected price %s but got %s", expected.Price, actual.Price)
	assert.Equal(t, expected.Available, actual.Available)
	assert.Equal(t, expected.Category, actual.Category)
	return actual
}

func DoCreateTests(t *T) {
	t.Run("create returns the new product and its location", func(t *T) {
		product := catalog.RandomProduct()

		resp, err := t.client.CreateProduct(product)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.Status)
		require.NotEmpty(t, resp.Location, "Location header must be set")

		created := requireSameProduct(t, product, resp)
		assert.NotZero(t, created.ID)

		// the location must resolve to the same product
		readBack, err := t.client.GetPath(resp.Location)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, readBack.Status)
		requireSameProduct(t, product, readBack)
	})

	t.Run("create without a name is rejected", func(t *T) {
		payload := catalog.RandomProduct().AsMap()
		delete(payload, "name")

		resp, err := t.client.CreateProduct(payload)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
	})

	t.Run("create with no content type is rejected", func(t *T) {
		resp, err := t.client.CreateProductRaw("", []byte("bad data"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.Status)
	})

	t.Run("create with the wrong content type is rejected", func(t *T) {
		resp, err := t.client.CreateProductRaw("text/plain", []byte("bad data"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.Status)
	})
}
