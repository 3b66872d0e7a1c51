package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context represents one test or subtest in a suite run. It provides the
// subset of testing.T behavior that we need outside of the Go test runner:
// subtests via Run, failure accumulation via Errorf, immediate exit via
// FailNow, and skipping. Domain packages wrap it in their own scope types.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

// Run executes a top-level suite action and returns the accumulated results.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				// FailNow was called; any failure message was already recorded
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Failed reports whether this test has recorded any failure so far.
func (c *Context) Failed() bool {
	return c.failed
}

// Run executes a subtest, isolating its failures from the parent.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	result := TestResult{TestID: id, Errors: c1.errors, SkipReason: c1.skipReason}
	c.env.results.Tests = append(c.env.results.Tests, result)
	switch {
	case c1.skipped:
		c.env.results.Skipped = append(c.env.results.Skipped, result)
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	default:
		if c1.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

// Errorf records a test failure without stopping the test. Assertions from
// the testify assert package end up here.
func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

// FailNow stops the current test immediately. Assertions from the testify
// require package end up here. It must be called from the test's goroutine.
func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Debug records debug output which the test logger may show after the test
// finishes.
func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// reformatError trims the leading tab indentation that testify puts on its
// multi-line failure messages, so the console logger can apply its own.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	anyChanged := false
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, "\t")
		if trimmed != line {
			lines[i] = trimmed
			anyChanged = true
		}
	}
	if !anyChanged {
		return err
	}
	return errors.New(strings.Join(lines, "\n"))
}
