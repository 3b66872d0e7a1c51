package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jhoundofi/tdd-bdd-final-project/browser"
	"github.com/jhoundofi/tdd-bdd-final-project/catalog"
	"github.com/jhoundofi/tdd-bdd-final-project/framework"
	"github.com/jhoundofi/tdd-bdd-final-project/resttests"
	"github.com/jhoundofi/tdd-bdd-final-project/webtests"
)

const serviceQueryTimeout = time.Second * 10

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	client := catalog.NewClient(params.serviceURL, mainDebugLogger)
	if err := client.WaitUntilAvailable(serviceQueryTimeout, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Catalog service error: %s\n", err)
		os.Exit(1)
	}

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	fmt.Println()
	fmt.Println("Running HTTP contract suite")
	results := resttests.RunTestSuite(client, params.filters.AsFilter, testLogger)

	if params.skipUI {
		fmt.Println("Skipping browser suite")
	} else {
		fmt.Println()
		fmt.Println("Running browser suite")
		uiResults, err := runBrowserSuite(params, client, mainDebugLogger, testLogger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Browser error: %s\n", err)
			// the HTTP suite already ran; its outcome must not be lost
			fmt.Println()
			PrintResults(results)
			os.Exit(1)
		}
		results.Append(uiResults)
	}

	fmt.Println()
	PrintResults(results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun only the failed tests:")
		fmt.Printf("  %s\n", rerunCommand(os.Args, results.Failures))
		os.Exit(1)
	}
}

// runBrowserSuite isolates the browser session's lifetime so the browser is
// shut down before the process exit code is decided.
func runBrowserSuite(
	params commandParams,
	client *catalog.Client,
	debugLogger framework.Logger,
	testLogger framework.TestLogger,
) (framework.Results, error) {
	driver, err := browser.NewChromeDriver(browser.ChromeOptions{
		Headless: params.headless,
		Logger:   debugLogger,
	})
	if err != nil {
		return framework.Results{}, err
	}
	defer driver.Close()

	return webtests.RunTestSuite(driver, client, webtests.SuiteConfig{
		BaseURL:       params.uiURL,
		WaitTimeout:   params.waitTimeout(),
		ScreenshotDir: params.screenshotDir,
	}, params.filters.AsFilter, testLogger), nil
}
