package framework

import "strings"

// Results accumulates the outcome of every test that a suite ran.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skipped  []TestResult
}

// TestResult describes the outcome of a single test.
type TestResult struct {
	TestID     TestID
	Errors     []error
	SkipReason string
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Append merges the results of another suite run into this one.
func (r *Results) Append(other Results) {
	r.Tests = append(r.Tests, other.Tests...)
	r.Failures = append(r.Failures, other.Failures...)
	r.Skipped = append(r.Skipped, other.Skipped...)
}

// TestID identifies a test by the path of nested Run names that led to it.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Plus returns a TestID with one more path component appended.
func (t TestID) Plus(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	path = append(path, t.Path...)
	return TestID{Path: append(path, name)}
}
