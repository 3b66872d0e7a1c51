package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jhoundofi/tdd-bdd-final-project/framework"
)

const defaultOpTimeout = time.Second * 10

// ChromeOptions configures a Chrome-backed Driver.
type ChromeOptions struct {
	Headless  bool
	OpTimeout time.Duration    // timeout for each individual browser operation
	Logger    framework.Logger // debug output; nil disables it
}

type chromeDriver struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	opTimeout   time.Duration
	logger      framework.Logger
}

// NewChromeDriver starts a Chrome browser session via the DevTools protocol.
// The caller must call Close when done with it.
func NewChromeDriver(options ChromeOptions) (Driver, error) {
	logger := options.Logger
	if logger == nil {
		logger = framework.NullLogger()
	}
	opTimeout := options.OpTimeout
	if opTimeout <= 0 {
		opTimeout = defaultOpTimeout
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", options.Headless),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancel := chromedp.NewContext(allocCtx)

	d := &chromeDriver{
		ctx:         ctx,
		cancel:      cancel,
		allocCancel: allocCancel,
		opTimeout:   opTimeout,
		logger:      logger,
	}
	// Run with no actions forces the browser process to start now, so a
	// missing Chrome binary is reported before any test runs.
	if err := d.run(); err != nil {
		d.Close()
		return nil, fmt.Errorf("could not start browser: %w", err)
	}
	return d, nil
}

func (d *chromeDriver) run(actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(d.ctx, d.opTimeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

func (d *chromeDriver) Navigate(url string) error {
	d.logger.Printf("Navigating to %s", url)
	return d.run(
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

func (d *chromeDriver) Title() (string, error) {
	var title string
	err := d.run(chromedp.Title(&title))
	return title, err
}

func (d *chromeDriver) BodyText() (string, error) {
	var text string
	err := d.run(chromedp.Text("body", &text, chromedp.ByQuery))
	return text, err
}

func (d *chromeDriver) Element(id string) (Element, error) {
	var present bool
	script := fmt.Sprintf(`document.getElementById(%q) !== null`, id)
	if err := d.run(chromedp.Evaluate(script, &present)); err != nil {
		return nil, err
	}
	if !present {
		return nil, ElementNotFoundError{ID: id}
	}
	return &chromeElement{driver: d, id: id}, nil
}

func (d *chromeDriver) Screenshot() ([]byte, error) {
	var buf []byte
	err := d.run(chromedp.ActionFunc(func(ctx context.Context) error {
		data, err := page.CaptureScreenshot().Do(ctx)
		buf = data
		return err
	}))
	return buf, err
}

func (d *chromeDriver) Close() error {
	d.cancel()
	d.allocCancel()
	return nil
}

type chromeElement struct {
	driver *chromeDriver
	id     string
}

func (e *chromeElement) Clear() error {
	return e.driver.run(chromedp.Clear(e.id, chromedp.ByID))
}

func (e *chromeElement) Type(text string) error {
	return e.driver.run(chromedp.SendKeys(e.id, text, chromedp.ByID))
}

func (e *chromeElement) Click() error {
	e.driver.logger.Printf("Clicking element %q", e.id)
	return e.driver.run(chromedp.Click(e.id, chromedp.ByID))
}

func (e *chromeElement) Value() (string, error) {
	var value string
	err := e.driver.run(chromedp.Value(e.id, &value, chromedp.ByID))
	return value, err
}

func (e *chromeElement) Text() (string, error) {
	var text string
	err := e.driver.run(chromedp.Text(e.id, &text, chromedp.ByID))
	return text, err
}

func (e *chromeElement) SelectByText(label string) error {
	script := fmt.Sprintf(`(function() {
		var el = document.getElementById(%q);
		if (!el || !el.options) return false;
		for (var i = 0; i < el.options.length; i++) {
			if (el.options[i].text === %q) {
				el.selectedIndex = i;
				el.dispatchEvent(new Event("change", {bubbles: true}));
				return true;
			}
		}
		return false;
	})()`, e.id, label)
	var found bool
	if err := e.driver.run(chromedp.Evaluate(script, &found)); err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("element %q has no option with label %q", e.id, label)
	}
	return nil
}

func (e *chromeElement) SelectedText() (string, error) {
	script := fmt.Sprintf(`(function() {
		var el = document.getElementById(%q);
		if (!el || !el.options || el.selectedIndex < 0) return "";
		return el.options[el.selectedIndex].text;
	})()`, e.id)
	var label string
	err := e.driver.run(chromedp.Evaluate(script, &label))
	return label, err
}

func (e *chromeElement) Rows() ([]TableRow, error) {
	script := fmt.Sprintf(`(function() {
		var el = document.getElementById(%q);
		if (!el) return [];
		return Array.from(el.querySelectorAll("tr")).map(function(tr) {
			return {
				text: tr.innerText,
				cells: Array.from(tr.querySelectorAll("td")).map(function(td) {
					return td.innerText;
				})
			};
		});
	})()`, e.id)
	var raw []struct {
		Text  string   `json:"text"`
		Cells []string `json:"cells"`
	}
	if err := e.driver.run(chromedp.Evaluate(script, &raw)); err != nil {
		return nil, err
	}
	rows := make([]TableRow, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, TableRow{Text: r.Text, Cells: r.Cells})
	}
	return rows, nil
}
