// Package webtests is the browser-driven test suite for the product catalog
// admin page. Its T type bridges human-readable step vocabulary (field names,
// button labels, "the results") to the conventionally structured page, and
// its step methods carry the assertions, so scenarios read like the behavior
// they verify.
package webtests

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhoundofi/tdd-bdd-final-project/browser"
	"github.com/jhoundofi/tdd-bdd-final-project/catalog"
	"github.com/jhoundofi/tdd-bdd-final-project/framework"
)

const defaultWaitTimeout = time.Second * 5

// SuiteConfig is the environment the UI suite runs against.
type SuiteConfig struct {
	// BaseURL is the address of the admin page.
	BaseURL string

	// WaitTimeout bounds every polling wait; zero means 5 seconds.
	WaitTimeout time.Duration

	// PollInterval and Clock are overridable for deterministic tests; their
	// zero values mean a 100ms interval on the system clock.
	PollInterval time.Duration
	Clock        framework.Clock

	// ScreenshotDir, when set, receives a PNG of the page for each failed
	// scenario.
	ScreenshotDir string
}

// T represents a test or subtest in the UI suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner; the assert and require
// packages accept it in place of a *testing.T. On top of that it provides the
// step operations for interacting with the admin page through the browser
// driver.
//
// Each scenario gets its own T with its own scratch register (the simulated
// copy/paste clipboard), so nothing leaks between scenarios.
type T struct {
	context   *framework.Context
	driver    browser.Driver
	client    *catalog.Client
	config    SuiteConfig
	clipboard string
}

func newTestScope(
	context *framework.Context,
	driver browser.Driver,
	client *catalog.Client,
	config SuiteConfig,
) *T {
	return &T{
		context: context,
		driver:  driver,
		client:  client,
		config:  config,
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest with a fresh scope: same browser session and service
// client, empty scratch register.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		t1 := newTestScope(c, t.driver, t.client, t.config)
		defer t1.captureFailureScreenshot()
		action(t1)
	})
}

// Debug logs some debug output for the test. The output will be passed to
// the test logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) waiter() framework.Waiter {
	timeout := t.config.WaitTimeout
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}
	return framework.Waiter{
		Timeout:  timeout,
		Interval: t.config.PollInterval,
		Clock:    t.config.Clock,
	}
}

func (t *T) captureFailureScreenshot() {
	if t.config.ScreenshotDir == "" || !t.context.Failed() {
		return
	}
	data, err := t.driver.Screenshot()
	if err != nil {
		t.Debug("could not capture screenshot: %s", err)
		return
	}
	name := strings.ReplaceAll(t.context.ID().String(), "/", "_")
	name = strings.ReplaceAll(name, " ", "-") + ".png"
	path := filepath.Join(t.config.ScreenshotDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Debug("could not write screenshot %s: %s", path, err)
		return
	}
	t.Debug("saved screenshot of failed scenario to %s", path)
}

// element finds an element by id with a single lookup, no waiting.
func (t *T) element(id string) (browser.Element, error) {
	return t.driver.Element(id)
}

// pollElement repeatedly looks up an element and evaluates check on it,
// bounded by the configured timeout. The element being absent does not abort
// the wait; it may not have been rendered yet.
func (t *T) pollElement(id string, description string, check func(browser.Element) (bool, error)) error {
	return t.waiter().Until(description, func() (bool, error) {
		e, err := t.driver.Element(id)
		if err != nil {
			var notFound browser.ElementNotFoundError
			if errors.As(err, &notFound) {
				return false, nil // keep polling
			}
			return false, err
		}
		return check(e)
	})
}

// awaitElement waits for an element to be present, bounded by the configured
// timeout.
func (t *T) awaitElement(id string) (browser.Element, error) {
	var found browser.Element
	err := t.pollElement(id, fmt.Sprintf("element %q to be present", id),
		func(e browser.Element) (bool, error) {
			found = e
			return true, nil
		})
	return found, err
}
