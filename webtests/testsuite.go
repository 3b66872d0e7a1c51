package webtests

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoundofi/tdd-bdd-final-project/browser"
	"github.com/jhoundofi/tdd-bdd-final-project/catalog"
	"github.com/jhoundofi/tdd-bdd-final-project/framework"
)

// seedProducts is the fixed dataset every scenario starts from.
var seedProducts = []catalog.Product{
	{Name: "Hat", Description: "A red fedora", Price: decimal.RequireFromString("59.95"), Available: true, Category: catalog.CategoryCloths},
	{Name: "Shoes", Description: "Blue shoes", Price: decimal.RequireFromString("120.50"), Available: false, Category: catalog.CategoryCloths},
	{Name: "Big Mac", Description: "1/4 lb burger", Price: decimal.RequireFromString("5.99"), Available: true, Category: catalog.CategoryFood},
	{Name: "Sheets", Description: "Full bed sheets", Price: decimal.RequireFromString("87.00"), Available: true, Category: catalog.CategoryHousewares},
}

// ResetWithSeedData deletes every product from the service, creates the seed
// dataset through the REST API, and loads the admin page. Scenario isolation
// depends on this running first in every scenario.
func (t *T) ResetWithSeedData() {
	require.NoError(t, t.client.DeleteAllProducts())
	for _, p := range seedProducts {
		resp, err := t.client.CreateProduct(p)
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.Status, "could not seed product %q", p.Name)
	}
	t.VisitHomePage()
}

// RunTestSuite runs the browser-driven suite against the admin page and
// returns its results.
func RunTestSuite(
	driver browser.Driver,
	client *catalog.Client,
	config SuiteConfig,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, driver, client, config)
		t.Run("home page", DoHomePageTests)
		t.Run("create a product", DoCreateProductTests)
		t.Run("read a product", DoReadProductTests)
		t.Run("update a product", DoUpdateProductTests)
		t.Run("delete a product", DoDeleteProductTests)
		t.Run("search and list", DoSearchTests)
		t.Run("results table", DoResultsTableTests)
	})
}
