package webtests

func DoSearchTests(t *T) {
	t.Run("list all products", func(t *T) {
		t.ResetWithSeedData()

		t.PressButton("Search")
		t.RequireFlashMessage("Success")
		t.RequireNameInResults("Hat")
		t.RequireNameInResults("Shoes")
		t.RequireNameInResults("Big Mac")
		t.RequireNameInResults("Sheets")
	})

	t.Run("search by category", func(t *T) {
		t.ResetWithSeedData()

		t.SelectOption("Category", "Food")
		t.PressButton("Search")
		t.RequireFlashMessage("Success")
		t.RequireNameInResults("Big Mac")
		t.RequireNameNotInResults("Hat")
		t.RequireNameNotInResults("Shoes")
		t.RequireNameNotInResults("Sheets")
	})

	t.Run("search by availability", func(t *T) {
		t.ResetWithSeedData()

		t.SelectOption("Available", "True")
		t.PressButton("Search")
		t.RequireFlashMessage("Success")
		t.RequireNameInResults("Hat")
		t.RequireNameInResults("Big Mac")
		t.RequireNameInResults("Sheets")
		t.RequireNameNotInResults("Shoes")
	})

	t.Run("search by name", func(t *T) {
		t.ResetWithSeedData()

		t.SetField("Name", "Big Mac")
		t.PressButton("Search")
		t.RequireFlashMessage("Success")
		t.RequireNameInResults("Big Mac")
		t.RequireNameNotInResults("Hat")
	})
}

func DoResultsTableTests(t *T) {
	t.Run("row count excludes the header", func(t *T) {
		t.ResetWithSeedData()

		t.PressButton("Search")
		t.RequireFlashMessage("Success")
		t.RequireRowCount(len(seedProducts))
	})

	t.Run("cell values use per-column comparison", func(t *T) {
		t.ResetWithSeedData()

		t.PressButton("Search")
		t.RequireFlashMessage("Success")
		t.RequireCellValue(1, "Name", "Hat")
		t.RequireCellValue(1, "Description", "A red fedora")
		t.RequireCellValue(1, "Price", "59.95")
		// the page renders booleans capitalized; comparison is case-insensitive
		t.RequireCellValue(1, "Available", "true")
		t.RequireCellValue(1, "Category", "CLOTHS")
		// trailing zeros must not matter for prices
		t.RequireCellValue(2, "Price", "120.5")
		t.RequireCellValue(3, "Name", "Big Mac")
		t.RequireCellValue(4, "Category", "HOUSEWARES")
	})
}
