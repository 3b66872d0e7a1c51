package browser

import (
	"fmt"
	"strings"
)

// FakePage is an in-memory Driver implementation for testing step logic
// without a real browser. Tests construct the page state directly and can
// script asynchronous updates with queued attribute reads or click handlers.
type FakePage struct {
	PageTitle   string
	ExtraBody   string // text appended to the body beyond the elements' own text
	NavigateErr error

	LastURL     string
	Screenshots int

	elements map[string]*FakeElement
}

func NewFakePage() *FakePage {
	return &FakePage{elements: make(map[string]*FakeElement)}
}

// AddElement registers an element and returns it for further setup.
func (p *FakePage) AddElement(id string) *FakeElement {
	e := &FakeElement{id: id, selected: -1}
	p.elements[id] = e
	return e
}

// RemoveElement unregisters an element, as if it was removed from the DOM.
func (p *FakePage) RemoveElement(id string) {
	delete(p.elements, id)
}

func (p *FakePage) Navigate(url string) error {
	if p.NavigateErr != nil {
		return p.NavigateErr
	}
	p.LastURL = url
	return nil
}

func (p *FakePage) Title() (string, error) { return p.PageTitle, nil }

func (p *FakePage) BodyText() (string, error) {
	var sb strings.Builder
	sb.WriteString(p.ExtraBody)
	for _, e := range p.elements {
		sb.WriteString("\n")
		sb.WriteString(e.text)
	}
	return sb.String(), nil
}

func (p *FakePage) Element(id string) (Element, error) {
	e, ok := p.elements[id]
	if !ok {
		return nil, ElementNotFoundError{ID: id}
	}
	return e, nil
}

func (p *FakePage) Screenshot() ([]byte, error) {
	p.Screenshots++
	return []byte("fake png"), nil
}

func (p *FakePage) Close() error { return nil }

// FakeElement is the element handle returned by FakePage.
type FakeElement struct {
	id       string
	value    string
	text     string
	options  []string
	selected int
	rows     []TableRow

	// OnClick, if set, runs when the element is clicked. Tests use it to
	// simulate the page mutations that a button press triggers.
	OnClick func()

	// queuedValues, when non-empty, overrides value for successive Value
	// calls, simulating a field that changes while being polled.
	queuedValues []string
}

// WithValue sets the element's current value.
func (e *FakeElement) WithValue(value string) *FakeElement {
	e.value = value
	return e
}

// WithText sets the element's visible text.
func (e *FakeElement) WithText(text string) *FakeElement {
	e.text = text
	return e
}

// WithOptions makes the element a selection control with the given option
// labels, selecting the first one.
func (e *FakeElement) WithOptions(labels ...string) *FakeElement {
	e.options = labels
	if len(labels) > 0 {
		e.selected = 0
	}
	return e
}

// WithRows makes the element a results table with the given rows.
func (e *FakeElement) WithRows(rows ...TableRow) *FakeElement {
	e.rows = rows
	return e
}

// QueueValues scripts the results of successive Value calls; the last entry
// remains in effect once the queue drains.
func (e *FakeElement) QueueValues(values ...string) *FakeElement {
	e.queuedValues = values
	return e
}

// SetText changes the element's visible text, simulating an async update.
func (e *FakeElement) SetText(text string) { e.text = text }

func (e *FakeElement) Clear() error {
	e.value = ""
	return nil
}

func (e *FakeElement) Type(text string) error {
	e.value += text
	return nil
}

func (e *FakeElement) Click() error {
	if e.OnClick != nil {
		e.OnClick()
	}
	return nil
}

func (e *FakeElement) Value() (string, error) {
	if len(e.queuedValues) > 0 {
		v := e.queuedValues[0]
		if len(e.queuedValues) > 1 {
			e.queuedValues = e.queuedValues[1:]
		}
		return v, nil
	}
	return e.value, nil
}

func (e *FakeElement) Text() (string, error) {
	if len(e.rows) > 0 {
		var texts []string
		for _, r := range e.rows {
			texts = append(texts, r.Text)
		}
		return strings.Join(texts, "\n"), nil
	}
	return e.text, nil
}

func (e *FakeElement) SelectByText(label string) error {
	for i, opt := range e.options {
		if opt == label {
			e.selected = i
			return nil
		}
	}
	return fmt.Errorf("element %q has no option with label %q", e.id, label)
}

func (e *FakeElement) SelectedText() (string, error) {
	if e.selected < 0 || e.selected >= len(e.options) {
		return "", nil
	}
	return e.options[e.selected], nil
}

func (e *FakeElement) Rows() ([]TableRow, error) {
	return e.rows, nil
}
