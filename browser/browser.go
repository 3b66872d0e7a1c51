// Package browser defines the browser-automation capability used by the UI
// test suite, as a small interface: navigate, find an element, read text and
// attributes, and act on elements. The real implementation drives Chrome
// through the DevTools protocol; an in-memory fake page is provided for
// deterministic tests of the step logic.
package browser

import "fmt"

// Driver is an open browser session pointed at the page under test.
type Driver interface {
	// Navigate loads the given URL and waits for the document to be ready.
	Navigate(url string) error

	// Title returns the current document title.
	Title() (string, error)

	// BodyText returns the visible text of the whole page body.
	BodyText() (string, error)

	// Element finds an element by its id attribute. It returns an
	// ElementNotFoundError if no element has that id.
	Element(id string) (Element, error)

	// Screenshot captures the current page as a PNG image.
	Screenshot() ([]byte, error)

	// Close shuts down the browser session.
	Close() error
}

// Element is a handle to a single DOM element.
type Element interface {
	// Clear empties the element's value.
	Clear() error

	// Type appends text to the element's value, as if typed.
	Type(text string) error

	// Click activates the element.
	Click() error

	// Value returns the element's value attribute.
	Value() (string, error)

	// Text returns the element's visible text.
	Text() (string, error)

	// SelectByText chooses the option of a selection control whose visible
	// label equals the given text.
	SelectByText(label string) error

	// SelectedText returns the visible label of the currently selected option.
	SelectedText() (string, error)

	// Rows returns the table rows nested under the element, in document
	// order, with the visible text of each row and of its data cells.
	Rows() ([]TableRow, error)
}

// TableRow is one tr element: its whole-row visible text plus the text of
// each td cell. Header rows built from th cells have Text but no Cells.
type TableRow struct {
	Text  string
	Cells []string
}

// ElementNotFoundError is returned when an element id matches nothing on the
// current page.
type ElementNotFoundError struct {
	ID string
}

func (e ElementNotFoundError) Error() string {
	return fmt.Sprintf("no element found with id %q", e.ID)
}
