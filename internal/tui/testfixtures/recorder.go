package testfixtures

import (
	"sync"

	tea "charm.land/bubbletea/v2"
)

// Recorder counts callback invocations. Callbacks it hands out return the
// command stored in Cmd at the time they run.
type Recorder struct {
	mu     sync.Mutex
	closes int
	clicks map[string]int
	order  []string
	Cmd    tea.Cmd
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{clicks: make(map[string]int)}
}

// OnClose returns a close callback that records each call.
func (r *Recorder) OnClose() func() tea.Cmd {
	return func() tea.Cmd {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.closes++
		r.order = append(r.order, "close")
		return r.Cmd
	}
}

// OnClick returns an action callback recorded under label.
func (r *Recorder) OnClick(label string) func() tea.Cmd {
	return func() tea.Cmd {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.clicks[label]++
		r.order = append(r.order, label)
		return r.Cmd
	}
}

// Closes returns how many times the close callback ran.
func (r *Recorder) Closes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closes
}

// Clicks returns how many times the callback for label ran.
func (r *Recorder) Clicks(label string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clicks[label]
}

// Calls returns the total number of recorded callbacks.
func (r *Recorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Order returns the recorded callbacks in call order. Close calls appear
// as "close".
func (r *Recorder) Order() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Reset clears all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closes = 0
	r.clicks = make(map[string]int)
	r.order = nil
}
