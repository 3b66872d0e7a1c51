package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alessio/shellescape"
	"gopkg.in/yaml.v3"

	"github.com/jhoundofi/tdd-bdd-final-project/framework"
)

const defaultWaitSeconds = 5

type commandParams struct {
	serviceURL    string
	uiURL         string
	configPath    string
	filters       framework.RegexFilters
	waitSeconds   int
	headless      bool
	skipUI        bool
	screenshotDir string
	debug         bool
	debugAll      bool
}

// fileConfig is the optional YAML configuration file. Explicitly set command
// line flags take precedence over it.
type fileConfig struct {
	URL            string `yaml:"url"`
	UIURL          string `yaml:"uiUrl"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
	Headless       *bool  `yaml:"headless"`
	SkipUI         bool   `yaml:"skipUi"`
	ScreenshotDir  string `yaml:"screenshotDir"`
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.serviceURL, "url", "", "catalog service base URL")
	fs.StringVar(&c.uiURL, "ui-url", "", "admin page URL (defaults to the service URL)")
	fs.StringVar(&c.configPath, "config", "", "path to a YAML configuration file")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.IntVar(&c.waitSeconds, "timeout", defaultWaitSeconds, "timeout in seconds for asynchronous page updates")
	fs.BoolVar(&c.headless, "headless", true, "run the browser without a visible window")
	fs.BoolVar(&c.skipUI, "skip-ui", false, "run only the HTTP contract suite")
	fs.StringVar(&c.screenshotDir, "screenshot-dir", "", "directory to save screenshots of failed scenarios")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}

	if c.configPath != "" {
		if err := c.applyConfigFile(fs); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return false
		}
	}
	if c.uiURL == "" {
		c.uiURL = c.serviceURL
	}
	if c.serviceURL == "" {
		fmt.Fprintln(os.Stderr, "-url is required")
		fs.Usage()
		return false
	}
	return true
}

// applyConfigFile fills in any parameter that was not set explicitly on the
// command line from the YAML configuration file.
func (c *commandParams) applyConfigFile(fs *flag.FlagSet) error {
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("malformed config file %s: %w", c.configPath, err)
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if !explicit["url"] && file.URL != "" {
		c.serviceURL = file.URL
	}
	if !explicit["ui-url"] && file.UIURL != "" {
		c.uiURL = file.UIURL
	}
	if !explicit["timeout"] && file.TimeoutSeconds > 0 {
		c.waitSeconds = file.TimeoutSeconds
	}
	if !explicit["headless"] && file.Headless != nil {
		c.headless = *file.Headless
	}
	if !explicit["skip-ui"] && file.SkipUI {
		c.skipUI = true
	}
	if !explicit["screenshot-dir"] && file.ScreenshotDir != "" {
		c.screenshotDir = file.ScreenshotDir
	}
	return nil
}

func (c *commandParams) waitTimeout() time.Duration {
	return time.Duration(c.waitSeconds) * time.Second
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that re-runs exactly the failed tests.
func rerunCommand(args []string, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(args[0])
	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if arg == "-run" || arg == "--run" {
			i++
			continue
		}
		if strings.HasPrefix(arg, "-run=") || strings.HasPrefix(arg, "--run=") {
			continue
		}
		b.add(arg)
	}
	b.add("-run", rerunPattern(failures))
	return b.String()
}

// rerunPattern builds a -run regex selecting exactly the failed tests. The
// filter is evaluated at every nesting level, so the pattern must also match
// each ancestor group id or the group would be skipped before its children
// are reached.
func rerunPattern(failures []framework.TestResult) string {
	var names []string
	seen := map[string]bool{}
	for _, f := range failures {
		for i := 1; i <= len(f.TestID.Path); i++ {
			id := framework.TestID{Path: f.TestID.Path[:i]}.String()
			if !seen[id] {
				seen[id] = true
				names = append(names, regexpQuote(id))
			}
		}
	}
	return "^(" + strings.Join(names, "|") + ")$"
}

func regexpQuote(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`, `.`, `\.`, `+`, `\+`, `*`, `\*`, `?`, `\?`,
		`(`, `\(`, `)`, `\)`, `[`, `\[`, `]`, `\]`, `{`, `\{`, `}`, `\}`,
		`^`, `\^`, `$`, `\$`, `|`, `\|`,
	)
	return replacer.Replace(s)
}
