package stubcatalog

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateAssignsIDAndLocation(t *testing.T) {
	handler := New().Handler()

	rec := doRequest(t, handler, "POST", "/products", "application/json",
		`{"name": "Hat", "price": "59.95", "available": true, "category": "CLOTHS"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/products/1", rec.Header().Get("Location"))
	assert.Contains(t, rec.Body.String(), `"id":1`)
	assert.Contains(t, rec.Body.String(), `"price":"59.95"`)
}

func TestCreateRequiresJSONContentType(t *testing.T) {
	handler := New().Handler()

	rec := doRequest(t, handler, "POST", "/products", "", "bad data")
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = doRequest(t, handler, "POST", "/products", "text/plain", "bad data")
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestCreateRequiresName(t *testing.T) {
	handler := New().Handler()

	rec := doRequest(t, handler, "POST", "/products", "application/json",
		`{"price": "10.00"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing name")
}

func TestGetMissingProductSaysNotFound(t *testing.T) {
	handler := New().Handler()

	rec := doRequest(t, handler, "GET", "/products/0", "", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "was not found")
}

func TestDeleteIsIdempotent(t *testing.T) {
	handler := New().Handler()

	rec := doRequest(t, handler, "DELETE", "/products/123", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestListFiltersByAvailabilityToken(t *testing.T) {
	handler := New().Handler()
	doRequest(t, handler, "POST", "/products", "application/json",
		`{"name": "Hat", "available": true}`)
	doRequest(t, handler, "POST", "/products", "application/json",
		`{"name": "Shoes", "available": false}`)

	rec := doRequest(t, handler, "GET", "/products?available=true", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hat")
	assert.NotContains(t, rec.Body.String(), "Shoes")

	rec = doRequest(t, handler, "GET", "/products?available=maybe", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid boolean value for available")
}

func TestListWithEmptyStoreReturnsEmptyArray(t *testing.T) {
	handler := New().Handler()

	rec := doRequest(t, handler, "GET", "/products", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestUpdatePersistsChanges(t *testing.T) {
	handler := New().Handler()
	doRequest(t, handler, "POST", "/products", "application/json",
		`{"name": "Hat", "price": "59.95"}`)

	rec := doRequest(t, handler, "PUT", "/products/1", "application/json",
		`{"name": "Fedora", "price": "49.95"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, "GET", "/products/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fedora")
	assert.NotContains(t, rec.Body.String(), "Hat")
}

func TestIndexAndHealth(t *testing.T) {
	handler := New().Handler()

	rec := doRequest(t, handler, "GET", "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product Catalog Administration")

	rec = doRequest(t, handler, "GET", "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "OK"}`, rec.Body.String())
}
