package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testID(names ...string) TestID { return TestID{Path: names} }

func TestRegexFiltersMatchEverythingByDefault(t *testing.T) {
	var f RegexFilters
	assert.True(t, f.AsFilter(testID("anything", "at all")))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("create"))

	assert.True(t, f.AsFilter(testID("UI", "create a product")))
	assert.False(t, f.AsFilter(testID("UI", "delete a product")))
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("^UI/"))

	assert.False(t, f.AsFilter(testID("UI", "home page")))
	assert.True(t, f.AsFilter(testID("REST", "home page")))
}

func TestRegexFiltersCombined(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("product"))
	require.NoError(t, f.MustNotMatch.Set("delete"))

	assert.True(t, f.AsFilter(testID("create a product")))
	assert.False(t, f.AsFilter(testID("delete a product")))
	assert.False(t, f.AsFilter(testID("health check")))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var l RegexList
	assert.Error(t, l.Set("("))
}

func TestRegexListString(t *testing.T) {
	var l RegexList
	require.NoError(t, l.Set("a"))
	require.NoError(t, l.Set("b"))
	assert.Equal(t, `"a" or "b"`, l.String())
}
