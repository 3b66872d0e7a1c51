package resttests

import (
	"github.com/jhoundofi/tdd-bdd-final-project/catalog"
	"github.com/jhoundofi/tdd-bdd-final-project/framework"
)

// RunTestSuite runs the REST contract suite against the service the client
// points at and returns its results.
func RunTestSuite(
	client *catalog.Client,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, client)
		t.Run("service status", DoServiceTests)
		t.Run("create", DoCreateTests)
		t.Run("read", DoReadTests)
		t.Run("update", DoUpdateTests)
		t.Run("delete", DoDeleteTests)
		t.Run("list and filter", DoListTests)
	})
}
