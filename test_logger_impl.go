package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/jhoundofi/tdd-bdd-final-project/framework"
)

type ConsoleTestLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Printf("[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if failed {
		color.New(color.FgRed).Printf("  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Printf("  SKIPPED: %s\n", id)
	} else {
		fmt.Printf("  SKIPPED: %s (%s)\n", id, reason)
	}
}

func PrintResults(results framework.Results) {
	if results.OK() {
		color.New(color.FgGreen).Printf("All tests passed (%d tests, %d skipped)\n",
			len(results.Tests), len(results.Skipped))
		return
	}
	fmt.Println()
	color.New(color.FgRed).Printf("FAILED TESTS (%d/%d):\n", len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		color.New(color.FgRed).Printf("  * %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Printf("      %s\n", line)
			}
		}
	}
}
