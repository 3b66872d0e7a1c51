package webtests

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoundofi/tdd-bdd-final-project/browser"
)

// isHeaderRow reports whether a results-table row is the header rather than
// data. The page gives us no thead/tbody structure to rely on, so this uses
// the same heuristic the step vocabulary assumes: the header row is the one
// whose text contains the literal "ID". Kept as its own function so a better
// contract with the page can replace it in one place.
func isHeaderRow(row browser.TableRow) bool {
	return strings.Contains(row.Text, "ID")
}

// dataRows strips the header row, if the first row is one, and returns the
// remaining rows.
func dataRows(rows []browser.TableRow) []browser.TableRow {
	if len(rows) > 0 && isHeaderRow(rows[0]) {
		return rows[1:]
	}
	return rows
}

// cellAt returns the whitespace-trimmed text of a cell, addressing the row by
// 1-based position among the data rows and the column by field name.
func cellAt(rows []browser.TableRow, rowNum int, fieldName string) (string, error) {
	column, ok := columnIndexes[fieldName]
	if !ok {
		return "", fmt.Errorf("results table has no column named %q", fieldName)
	}
	data := dataRows(rows)
	if rowNum < 1 || rowNum > len(data) {
		return "", fmt.Errorf("results table has %d data rows, no row %d", len(data), rowNum)
	}
	cells := data[rowNum-1].Cells
	if column >= len(cells) {
		return "", fmt.Errorf("row %d has %d cells, no %q column (index %d)", rowNum, len(cells), fieldName, column)
	}
	return strings.TrimSpace(cells[column]), nil
}

// compareCell checks a cell value against an expectation using the column's
// comparison semantics: Price compares numerically so "19.9" equals "19.90",
// Available compares case-insensitively so "True" equals "true", and every
// other column compares as an exact string.
func compareCell(fieldName, expected, actual string) error {
	switch fieldName {
	case "Price":
		expectedDec, err := decimal.NewFromString(expected)
		if err != nil {
			return fmt.Errorf("expected Price %q is not a valid decimal: %w", expected, err)
		}
		actualDec, err := decimal.NewFromString(actual)
		if err != nil {
			return fmt.Errorf("Price cell %q is not a valid decimal: %w", actual, err)
		}
		if !actualDec.Equal(expectedDec) {
			return fmt.Errorf("expected Price %q but got %q", expected, actual)
		}
	case "Available":
		if !strings.EqualFold(actual, expected) {
			return fmt.Errorf("expected Available %q but got %q", expected, actual)
		}
	default:
		if actual != expected {
			return fmt.Errorf("expected %q in field %q but got %q", expected, fieldName, actual)
		}
	}
	return nil
}
