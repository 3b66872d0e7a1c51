package catalog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestCreateProductSendsJSONToProductsPath(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(http.StatusCreated))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := NewClient(server.URL, nil)
		p := Product{Name: "Hat", Price: decimal.RequireFromString("59.95"), Category: CategoryCloths}

		resp, err := client.CreateProduct(p)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.Status)

		info := <-requests
		assert.Equal(t, "POST", info.Request.Method)
		assert.Equal(t, "/products", info.Request.URL.Path)
		assert.Equal(t, "application/json", info.Request.Header.Get("Content-Type"))
		assert.Contains(t, string(info.Body), `"name":"Hat"`)
		assert.Contains(t, string(info.Body), `"price":"59.95"`)
	})
}

func TestCreateProductRawSendsGivenContentType(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(http.StatusUnsupportedMediaType))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := NewClient(server.URL, nil)

		resp, err := client.CreateProductRaw("text/plain", []byte("bad data"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.Status)

		info := <-requests
		assert.Equal(t, "text/plain", info.Request.Header.Get("Content-Type"))
	})
}

func TestListProductsEncodesFilterQuery(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(http.StatusOK, nil, []byte("[]")))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := NewClient(server.URL, nil)

		_, err := client.ListProducts(ProductFilter{
			Name:      ldvalue.NewOptionalString("Big Mac"),
			Available: ldvalue.NewOptionalString("true"),
		})
		require.NoError(t, err)

		info := <-requests
		query := info.Request.URL.Query()
		assert.Equal(t, "Big Mac", query.Get("name"))
		assert.Equal(t, "true", query.Get("available"))
		assert.False(t, query.Has("category"))
	})
}

func TestListProductsWithEmptyFilterHasNoQueryString(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(http.StatusOK, nil, []byte("[]")))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := NewClient(server.URL, nil)

		_, err := client.ListProducts(ProductFilter{})
		require.NoError(t, err)

		info := <-requests
		assert.Equal(t, "", info.Request.URL.RawQuery)
	})
}

func TestGetPathFollowsAbsoluteLocationURL(t *testing.T) {
	handler, requests := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(http.StatusOK, nil, []byte(`{"id": 7, "name": "Hat"}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := NewClient("http://example.invalid", nil) // base URL must not be used

		resp, err := client.GetPath(server.URL + "/products/7")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)

		info := <-requests
		assert.Equal(t, "/products/7", info.Request.URL.Path)
	})
}

func TestDeleteAllProductsDeletesEachListedProduct(t *testing.T) {
	var deleted []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id": 1, "name": "Hat"}, {"id": 2, "name": "Shoes"}]`))
		case "DELETE":
			deleted = append(deleted, r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	})
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		client := NewClient(server.URL, nil)
		require.NoError(t, client.DeleteAllProducts())
		assert.Equal(t, []string{"/products/1", "/products/2"}, deleted)
	})
}

func TestResponseDecodeProduct(t *testing.T) {
	resp := Response{Body: []byte(`{"id": 5, "name": "Hat", "price": "19.90", "available": true, "category": "CLOTHS"}`)}
	p, err := resp.DecodeProduct()
	require.NoError(t, err)
	assert.Equal(t, 5, p.ID)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("19.9")))
	assert.Equal(t, CategoryCloths, p.Category)

	_, err = Response{Body: []byte(`not json`)}.DecodeProduct()
	assert.Error(t, err)
}

func TestResponseMessage(t *testing.T) {
	resp := Response{Body: []byte(`{"message": "Product with id '0' was not found."}`)}
	assert.Contains(t, resp.Message(), "was not found")

	assert.Equal(t, "", Response{Body: []byte(`[]`)}.Message())
}
