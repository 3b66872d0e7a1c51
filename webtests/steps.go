package webtests

import (
	"fmt"
	"strings"

	"github.com/stretchr/testify/require"

	"github.com/jhoundofi/tdd-bdd-final-project/browser"
)

// VisitHomePage loads the admin page.
func (t *T) VisitHomePage() {
	require.NoError(t, t.driver.Navigate(t.config.BaseURL))
}

// RequireTitleContains checks the document title for a message.
func (t *T) RequireTitleContains(message string) {
	title, err := t.driver.Title()
	require.NoError(t, err)
	require.Contains(t, title, message)
}

// RequireBodyExcludes checks that the given text appears nowhere on the page.
func (t *T) RequireBodyExcludes(text string) {
	body, err := t.driver.BodyText()
	require.NoError(t, err)
	require.NotContains(t, body, text)
}

// SetField clears the named field and enters a value.
func (t *T) SetField(fieldName, value string) {
	element, err := t.element(FieldElementID(fieldName))
	require.NoError(t, err)
	require.NoError(t, element.Clear())
	require.NoError(t, element.Type(value))
}

// SelectOption chooses a dropdown option by its visible label.
func (t *T) SelectOption(fieldName, label string) {
	element, err := t.element(FieldElementID(fieldName))
	require.NoError(t, err)
	require.NoError(t, element.SelectByText(label))
}

// RequireSelectedOption checks the currently selected option of a dropdown.
func (t *T) RequireSelectedOption(fieldName, label string) {
	element, err := t.element(FieldElementID(fieldName))
	require.NoError(t, err)
	selected, err := element.SelectedText()
	require.NoError(t, err)
	require.Equal(t, label, selected, "dropdown %q selection", fieldName)
}

// RequireFieldEmpty checks that the named field has an empty value.
func (t *T) RequireFieldEmpty(fieldName string) {
	element, err := t.element(FieldElementID(fieldName))
	require.NoError(t, err)
	value, err := element.Value()
	require.NoError(t, err)
	require.Equal(t, "", value, "field %q should be empty", fieldName)
}

// CopyField waits for the named field to be present and reads its value into
// the scenario's scratch register.
func (t *T) CopyField(fieldName string) {
	element, err := t.awaitElement(FieldElementID(fieldName))
	require.NoError(t, err)
	value, err := element.Value()
	require.NoError(t, err)
	t.clipboard = value
	t.Debug("clipboard contains: %s", t.clipboard)
}

// PasteField waits for the named field to be present, clears it, and writes
// the scratch register's value into it.
func (t *T) PasteField(fieldName string) {
	element, err := t.awaitElement(FieldElementID(fieldName))
	require.NoError(t, err)
	require.NoError(t, element.Clear())
	require.NoError(t, element.Type(t.clipboard))
}

// PressButton activates the button with the given label.
func (t *T) PressButton(label string) {
	element, err := t.element(ButtonElementID(label))
	require.NoError(t, err)
	require.NoError(t, element.Click())
}

// RequireFieldValue waits until the named field's value equals the expected
// text. A single read would race with the fetch-then-render cycle that
// follows a button press, so this polls until the timeout.
func (t *T) RequireFieldValue(fieldName, expected string) {
	var lastValue string
	err := t.pollElement(FieldElementID(fieldName),
		fmt.Sprintf("field %q to have value %q", fieldName, expected),
		func(element browser.Element) (bool, error) {
			value, err := element.Value()
			if err != nil {
				return false, err
			}
			lastValue = value
			return value == expected, nil
		})
	require.NoError(t, err, "last value of field %q was %q", fieldName, lastValue)
}

// ChangeField waits for the named field to be present, clears it, and enters
// a new value.
func (t *T) ChangeField(fieldName, value string) {
	element, err := t.awaitElement(FieldElementID(fieldName))
	require.NoError(t, err)
	require.NoError(t, element.Clear())
	require.NoError(t, element.Type(value))
}

// RequireFlashMessage waits until the page's status message contains the
// expected text.
func (t *T) RequireFlashMessage(message string) {
	var lastText string
	err := t.pollElement(flashMessageID,
		fmt.Sprintf("flash message to contain %q", message),
		func(element browser.Element) (bool, error) {
			text, err := element.Text()
			if err != nil {
				return false, err
			}
			lastText = text
			return strings.Contains(text, message), nil
		})
	require.NoError(t, err, "last flash message was %q", lastText)
}

// RequireNameInResults waits until the search results contain the given name.
func (t *T) RequireNameInResults(name string) {
	err := t.pollElement(searchResultsID,
		fmt.Sprintf("results to contain %q", name),
		func(element browser.Element) (bool, error) {
			text, err := element.Text()
			if err != nil {
				return false, err
			}
			return strings.Contains(text, name), nil
		})
	require.NoError(t, err)
}

// RequireNameNotInResults checks with a single read that the search results
// do not contain the given name. Unlike the positive check this does not
// wait: absence must hold immediately, with no pending update that could
// still remove the name.
func (t *T) RequireNameNotInResults(name string) {
	element, err := t.element(searchResultsID)
	require.NoError(t, err)
	text, err := element.Text()
	require.NoError(t, err)
	require.NotContains(t, text, name)
}

// RequireRowCount checks the number of data rows in the search results,
// excluding the header row when one is present.
func (t *T) RequireRowCount(expected int) {
	element, err := t.element(searchResultsID)
	require.NoError(t, err)
	rows, err := element.Rows()
	require.NoError(t, err)
	require.Len(t, dataRows(rows), expected)
}

// RequireCellValue checks one cell of the search results, addressing the row
// by 1-based position among the data rows and the column by field name, and
// comparing with the column's typed semantics.
func (t *T) RequireCellValue(rowNum int, fieldName, expected string) {
	element, err := t.element(searchResultsID)
	require.NoError(t, err)
	rows, err := element.Rows()
	require.NoError(t, err)
	actual, err := cellAt(rows, rowNum, fieldName)
	require.NoError(t, err)
	require.NoError(t, compareCell(fieldName, expected, actual))
}
