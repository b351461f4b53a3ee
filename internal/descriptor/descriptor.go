// Package descriptor loads dialog definitions from YAML files.
package descriptor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/gosimple/slug"
	"github.com/mark3labs/modal/internal/tui/modal"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a descriptor file has no content.
var ErrEmpty = errors.New("descriptor is empty")

// ErrDuplicateResult is reported when two actions set the same explicit
// result.
var ErrDuplicateResult = errors.New("result is used by another action")

// Action is one button in a descriptor.
type Action struct {
	Label string `yaml:"label"`
	// Result is reported when the action is chosen. Defaults to the
	// slugified label.
	Result string `yaml:"result,omitempty"`
	// Close unmounts the dialog after the action runs. Defaults to true.
	Close *bool `yaml:"close,omitempty"`
}

// ResultValue returns the configured result or the label's slug.
func (a Action) ResultValue() string {
	if a.Result != "" {
		return a.Result
	}
	if s := slug.Make(a.Label); s != "" {
		return s
	}
	return a.Label
}

// Closes reports whether choosing the action dismisses the dialog.
func (a Action) Closes() bool {
	return a.Close == nil || *a.Close
}

// Descriptor is a dialog definition.
type Descriptor struct {
	Title    string   `yaml:"title,omitempty"`
	Message  string   `yaml:"message,omitempty"`
	Markdown bool     `yaml:"markdown,omitempty"`
	Actions  []Action `yaml:"actions"`
}

// New builds a descriptor from plain labels. Every action closes the
// dialog.
func New(title, message string, labels ...string) *Descriptor {
	d := &Descriptor{Title: title, Message: message, Actions: []Action{}}
	for _, l := range labels {
		d.Actions = append(d.Actions, Action{Label: l})
	}
	return d
}

// Load reads and parses a descriptor file.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing descriptor %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a descriptor. Unknown fields are rejected.
func Parse(data []byte) (*Descriptor, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Descriptor
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	return &d, nil
}

// Validate reports every contract violation in the descriptor, joined.
// Labels may repeat; only explicit results must be unique.
func (d *Descriptor) Validate() error {
	noop := func() tea.Cmd { return nil }
	errs := []error{d.Props(noop, func(Action) tea.Cmd { return nil }).Validate()}

	seen := make(map[string]int, len(d.Actions))
	for i, a := range d.Actions {
		if a.Result == "" {
			continue
		}
		if first, ok := seen[a.Result]; ok {
			errs = append(errs, &modal.ActionError{
				Index: i,
				Err:   fmt.Errorf("%w: %q (action %d)", ErrDuplicateResult, a.Result, first),
			})
			continue
		}
		seen[a.Result] = i
	}
	return errors.Join(errs...)
}

// Results returns the result reported for each action. Explicit results are
// kept as written. A defaulted result that collides with another action's
// result gets the action index appended, so "OK", "OK" gives "ok", "ok-1".
func (d *Descriptor) Results() []string {
	taken := make(map[string]bool, len(d.Actions))
	for _, a := range d.Actions {
		if a.Result != "" {
			taken[a.Result] = true
		}
	}

	out := make([]string, len(d.Actions))
	for i, a := range d.Actions {
		if a.Result != "" {
			out[i] = a.Result
			continue
		}
		r := a.ResultValue()
		if taken[r] {
			r = fmt.Sprintf("%s-%d", r, i)
		}
		taken[r] = true
		out[i] = r
	}
	return out
}

// Props builds modal props whose callbacks forward to the given handlers.
// The Action passed to onAction carries its resolved result. A nil action
// list stays nil so the modal reports it.
func (d *Descriptor) Props(onClose func() tea.Cmd, onAction func(Action) tea.Cmd) modal.Props {
	p := modal.Props{
		Title:   d.Title,
		Message: d.Message,
		OnClose: onClose,
	}
	if d.Actions == nil {
		return p
	}

	results := d.Results()
	p.Actions = make([]modal.Action, len(d.Actions))
	for i, a := range d.Actions {
		a.Result = results[i]
		p.Actions[i] = modal.Action{
			Label:   a.Label,
			OnClick: func() tea.Cmd { return onAction(a) },
		}
	}
	return p
}

// Marshal encodes the descriptor as YAML.
func (d *Descriptor) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}
