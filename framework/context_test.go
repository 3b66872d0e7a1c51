package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runNoOpLogger(filter Filter, action func(*Context)) Results {
	return Run(filter, nil, action)
}

func TestRunRecordsPassingTests(t *testing.T) {
	results := runNoOpLogger(nil, func(c *Context) {
		c.Run("first", func(c *Context) {})
		c.Run("second", func(c *Context) {})
	})

	assert.True(t, results.OK())
	require.Len(t, results.Tests, 2)
	assert.Equal(t, "first", results.Tests[0].TestID.String())
	assert.Equal(t, "second", results.Tests[1].TestID.String())
}

func TestRunRecordsFailureFromErrorf(t *testing.T) {
	results := runNoOpLogger(nil, func(c *Context) {
		c.Run("bad", func(c *Context) {
			c.Errorf("expected %d, got %d", 1, 2)
		})
	})

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Equal(t, "expected 1, got 2", results.Failures[0].Errors[0].Error())
}

func TestFailNowStopsTestButNotSuite(t *testing.T) {
	secondRan := false
	results := runNoOpLogger(nil, func(c *Context) {
		c.Run("fatal", func(c *Context) {
			c.Errorf("stopping here")
			c.FailNow()
			t.Fatal("unreachable")
		})
		c.Run("still runs", func(c *Context) {
			secondRan = true
		})
	})

	assert.True(t, secondRan)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "fatal", results.Failures[0].TestID.String())
}

func TestUnexpectedPanicBecomesFailure(t *testing.T) {
	results := runNoOpLogger(nil, func(c *Context) {
		c.Run("panicky", func(c *Context) {
			panic(errors.New("boom"))
		})
	})

	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "boom")
}

func TestSkippedTestIsNotAFailure(t *testing.T) {
	results := runNoOpLogger(nil, func(c *Context) {
		c.Run("skipped", func(c *Context) {
			c.SkipWithReason("no browser available")
		})
	})

	assert.True(t, results.OK())
	require.Len(t, results.Skipped, 1)
	assert.Equal(t, "no browser available", results.Skipped[0].SkipReason)
}

func TestSubtestIDsAreNested(t *testing.T) {
	var id TestID
	runNoOpLogger(nil, func(c *Context) {
		c.Run("outer", func(c *Context) {
			c.Run("inner", func(c *Context) {
				id = c.ID()
			})
		})
	})

	assert.Equal(t, "outer/inner", id.String())
}

func TestFilterExcludesTests(t *testing.T) {
	ran := []string{}
	filter := func(id TestID) bool { return id.String() != "excluded" }
	results := runNoOpLogger(filter, func(c *Context) {
		c.Run("included", func(c *Context) { ran = append(ran, "included") })
		c.Run("excluded", func(c *Context) { ran = append(ran, "excluded") })
	})

	assert.Equal(t, []string{"included"}, ran)
	require.Len(t, results.Tests, 1)
}
