package webtests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoundofi/tdd-bdd-final-project/browser"
)

func headerRow() browser.TableRow {
	return browser.TableRow{Text: "ID Name Description Price Available Category"}
}

func productRow(cells ...string) browser.TableRow {
	return browser.TableRow{Text: "  " + cells[1] + "  ", Cells: cells}
}

func sampleRows() []browser.TableRow {
	return []browser.TableRow{
		headerRow(),
		productRow("1", "Hat", "A red fedora", "59.95", "True", "CLOTHS"),
		productRow("2", "Shoes", "Blue shoes", "120.50", "False", "CLOTHS"),
	}
}

func TestDataRowsExcludesExactlyOneHeaderRow(t *testing.T) {
	rows := sampleRows()
	data := dataRows(rows)
	require.Len(t, data, 2)
	assert.Equal(t, "Hat", data[0].Cells[1])
}

func TestDataRowsKeepsAllRowsWithoutHeader(t *testing.T) {
	rows := sampleRows()[1:]
	assert.Len(t, dataRows(rows), 2)
}

func TestDataRowsOnlyChecksFirstRowForHeader(t *testing.T) {
	// a data row mentioning "ID" somewhere later must not be excluded
	rows := []browser.TableRow{
		productRow("1", "Hat", "A red fedora", "59.95", "True", "CLOTHS"),
		productRow("2", "ID Badge", "Laminated", "3.00", "True", "TOOLS"),
	}
	assert.Len(t, dataRows(rows), 2)
}

func TestCellAtIsOneBasedAndSkipsHeader(t *testing.T) {
	value, err := cellAt(sampleRows(), 1, "Name")
	require.NoError(t, err)
	assert.Equal(t, "Hat", value)

	value, err = cellAt(sampleRows(), 2, "Price")
	require.NoError(t, err)
	assert.Equal(t, "120.50", value)
}

func TestCellAtStripsWhitespace(t *testing.T) {
	rows := []browser.TableRow{productRow("1", "  Hat  ", "x", "1", "True", "CLOTHS")}
	value, err := cellAt(rows, 1, "Name")
	require.NoError(t, err)
	assert.Equal(t, "Hat", value)
}

func TestCellAtRejectsBadAddresses(t *testing.T) {
	rows := sampleRows()

	_, err := cellAt(rows, 3, "Name")
	assert.ErrorContains(t, err, "no row 3")

	_, err = cellAt(rows, 0, "Name")
	assert.Error(t, err)

	_, err = cellAt(rows, 1, "Weight")
	assert.ErrorContains(t, err, `no column named "Weight"`)

	short := []browser.TableRow{{Text: "partial", Cells: []string{"1", "Hat"}}}
	_, err = cellAt(short, 1, "Category")
	assert.ErrorContains(t, err, "no \"Category\" column")
}

func TestComparePriceCellNumerically(t *testing.T) {
	assert.NoError(t, compareCell("Price", "19.9", "19.90"))
	assert.NoError(t, compareCell("Price", "120.50", "120.5"))
	assert.Error(t, compareCell("Price", "19.9", "19.91"))
	assert.ErrorContains(t, compareCell("Price", "19.9", "cheap"), "not a valid decimal")
}

func TestCompareAvailableCellCaseInsensitively(t *testing.T) {
	assert.NoError(t, compareCell("Available", "true", "True"))
	assert.NoError(t, compareCell("Available", "FALSE", "false"))
	assert.Error(t, compareCell("Available", "true", "false"))
}

func TestCompareOtherCellsExactly(t *testing.T) {
	assert.NoError(t, compareCell("Name", "Hat", "Hat"))
	assert.Error(t, compareCell("Name", "Hat", "hat"))
	assert.Error(t, compareCell("Category", "CLOTHS", "Cloths"))
}
