// Package resttests is the HTTP contract suite for the product catalog
// service's REST API. It contains no business logic of its own: every test
// arranges preconditions through creation requests, performs one target
// request, and asserts the status code, JSON field values, and headers.
package resttests

import (
	"net/http"

	"github.com/stretchr/testify/require"

	"github.com/jhoundofi/tdd-bdd-final-project/catalog"
	"github.com/jhoundofi/tdd-bdd-final-project/framework"
)

// T represents a test or subtest in the REST suite. The assert and require
// packages accept it in place of a *testing.T.
type T struct {
	context *framework.Context
	client  *catalog.Client
}

func newTestScope(context *framework.Context, client *catalog.Client) *T {
	return &T{context: context, client: client}
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. The service's store is emptied first, so every test
// case starts from the same state regardless of what ran before it.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		t1 := newTestScope(c, t.client)
		require.NoError(t1, t1.client.DeleteAllProducts(), "could not reset the product store")
		action(t1)
	})
}

// Debug logs some debug output for the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// CreateProducts creates count random products through the API and returns
// them with their server-assigned ids filled in. The test fails immediately
// if any creation request is rejected.
func (t *T) CreateProducts(count int) []catalog.Product {
	products := catalog.RandomProducts(count)
	for i, p := range products {
		resp, err := t.client.CreateProduct(p)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.Status, "could not create test product")
		created, err := resp.DecodeProduct()
		require.NoError(t, err)
		products[i].ID = created.ID
	}
	return products
}

// ProductCount returns how many products the service currently has.
func (t *T) ProductCount() int {
	resp, err := t.client.ListProducts(catalog.ProductFilter{})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.Status)
	products, err := resp.DecodeProducts()
	require.NoError(t, err)
	return len(products)
}
