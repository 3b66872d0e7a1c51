package webtests

func DoCreateProductTests(t *T) {
	t.Run("create, clear, then retrieve by pasted id", func(t *T) {
		t.ResetWithSeedData()

		t.SetField("Name", "Hammer")
		t.SetField("Description", "Claw hammer")
		t.SelectOption("Available", "True")
		t.SelectOption("Category", "Tools")
		t.SetField("Price", "34.95")
		t.PressButton("Create")
		t.RequireFlashMessage("Success")

		// the id assigned by the service is only known through the form
		t.CopyField("Id")
		t.PressButton("Clear")
		t.RequireFieldEmpty("Id")
		t.RequireFieldEmpty("Name")
		t.RequireFieldEmpty("Description")

		t.PasteField("Id")
		t.PressButton("Retrieve")
		t.RequireFlashMessage("Success")
		t.RequireFieldValue("Name", "Hammer")
		t.RequireFieldValue("Description", "Claw hammer")
		t.RequireSelectedOption("Available", "True")
		t.RequireSelectedOption("Category", "Tools")
		t.RequireFieldValue("Price", "34.95")
	})
}

func DoReadProductTests(t *T) {
	t.Run("search by name then retrieve by id", func(t *T) {
		t.ResetWithSeedData()

		t.SetField("Name", "Hat")
		t.PressButton("Search")
		t.RequireFlashMessage("Success")
		t.CopyField("Id")
		t.PressButton("Clear")
		t.PasteField("Id")
		t.PressButton("Retrieve")
		t.RequireFlashMessage("Success")
		t.RequireFieldValue("Name", "Hat")
		t.RequireFieldValue("Description", "A red fedora")
		t.RequireSelectedOption("Available", "True")
		t.RequireSelectedOption("Category", "Cloths")
		t.RequireFieldValue("Price", "59.95")
	})
}

func DoUpdateProductTests(t *T) {
	t.Run("rename a product and see the change everywhere", func(t *T) {
		t.ResetWithSeedData()

		t.SetField("Name", "Hat")
		t.PressButton("Search")
		t.RequireFlashMessage("Success")
		t.RequireFieldValue("Name", "Hat")
		t.RequireFieldValue("Description", "A red fedora")

		t.ChangeField("Name", "Fedora")
		t.PressButton("Update")
		t.RequireFlashMessage("Success")

		t.CopyField("Id")
		t.PressButton("Clear")
		t.PasteField("Id")
		t.PressButton("Retrieve")
		t.RequireFlashMessage("Success")
		t.RequireFieldValue("Name", "Fedora")

		t.PressButton("Clear")
		t.PressButton("Search")
		t.RequireFlashMessage("Success")
		t.RequireNameInResults("Fedora")
		t.RequireNameNotInResults("Hat")
	})
}

func DoDeleteProductTests(t *T) {
	t.Run("delete a product found by search", func(t *T) {
		t.ResetWithSeedData()

		t.SetField("Name", "Hat")
		t.PressButton("Search")
		t.RequireFlashMessage("Success")
		t.RequireFieldValue("Name", "Hat")

		t.CopyField("Id")
		t.PressButton("Delete")
		t.RequireFlashMessage("Product has been Deleted!")

		t.PressButton("Clear")
		t.PressButton("Search")
		t.RequireFlashMessage("Success")
		t.RequireNameNotInResults("Hat")
	})
}
