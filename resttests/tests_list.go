package resttests

import (
	"net/http"
	"strconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/jhoundofi/tdd-bdd-final-project/catalog"
)

func DoListTests(t *T) {
	t.Run("list all products", func(t *T) {
		t.CreateProducts(5)

		resp, err := t.client.ListProducts(catalog.ProductFilter{})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Status)
		products, err := resp.DecodeProducts()
		require.NoError(t, err)
		assert.Len(t, products, 5)
	})

	t.Run("list with an empty store", func(t *T) {
		resp, err := t.client.ListProducts(catalog.ProductFilter{})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Status)
		products, err := resp.DecodeProducts()
		require.NoError(t, err)
		assert.Empty(t, products)
		assert.JSONEq(t, "[]", string(resp.Body))
	})

	t.Run("filter by name", func(t *T) {
		products := t.CreateProducts(5)
		name := products[0].Name
		expected := 0
		for _, p := range products {
			if p.Name == name {
				expected++
			}
		}

		resp, err := t.client.ListProducts(catalog.ProductFilter{
			Name: ldvalue.NewOptionalString(name),
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Status)
		matched, err := resp.DecodeProducts()
		require.NoError(t, err)
		assert.Len(t, matched, expected)
		for _, p := range matched {
			assert.Equal(t, name, p.Name)
		}
	})

	t.Run("filter by a name that matches nothing", func(t *T) {
		t.CreateProducts(3)

		resp, err := t.client.ListProducts(catalog.ProductFilter{
			Name: ldvalue.NewOptionalString("NonExistentName"),
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Status)
		matched, err := resp.DecodeProducts()
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("filter by category", func(t *T) {
		products := t.CreateProducts(10)
		category := products[0].Category
		expected := 0
		for _, p := range products {
			if p.Category == category {
				expected++
			}
		}

		resp, err := t.client.ListProducts(catalog.ProductFilter{
			Category: ldvalue.NewOptionalString(string(category)),
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Status)
		matched, err := resp.DecodeProducts()
		require.NoError(t, err)
		assert.Len(t, matched, expected)
		for _, p := range matched {
			assert.Equal(t, category, p.Category)
		}
	})

	t.Run("filter by a category that matches nothing", func(t *T) {
		t.CreateProducts(3)

		resp, err := t.client.ListProducts(catalog.ProductFilter{
			Category: ldvalue.NewOptionalString("INVALID_CATEGORY"),
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Status)
		matched, err := resp.DecodeProducts()
		require.NoError(t, err)
		assert.Empty(t, matched)
	})

	t.Run("filter by availability", func(t *T) {
		products := t.CreateProducts(10)
		available := products[0].Available
		expected := 0
		for _, p := range products {
			if p.Available == available {
				expected++
			}
		}

		resp, err := t.client.ListProducts(catalog.ProductFilter{
			Available: ldvalue.NewOptionalString(strconv.FormatBool(available)),
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.Status)
		matched, err := resp.DecodeProducts()
		require.NoError(t, err)
		assert.Len(t, matched, expected)
		for _, p := range matched {
			assert.Equal(t, available, p.Available)
		}
	})

	t.Run("filter by an unparseable availability token", func(t *T) {
		t.CreateProducts(3)

		resp, err := t.client.ListProducts(catalog.ProductFilter{
			Available: ldvalue.NewOptionalString("maybe"),
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
		assert.Contains(t, resp.Message(), "Invalid boolean value for available")
	})
}
