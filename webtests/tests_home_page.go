package webtests

func DoHomePageTests(t *T) {
	t.Run("shows the administration title", func(t *T) {
		t.ResetWithSeedData()
		t.RequireTitleContains("Product Catalog Administration")
		t.RequireBodyExcludes("404 Not Found")
	})
}
