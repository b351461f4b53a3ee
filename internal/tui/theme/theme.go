package theme

import (
	"fmt"
	"sort"
	"sync"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light)
	BgCrust    string
	BgBase     string
	BgMantle   string
	BgSurface0 string
	BgSurface1 string
	BgSurface2 string
	BgOverlay  string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string
	Info    string

	// Lazily built stylesheet
	sheet     *Stylesheet
	sheetOnce sync.Once
}

// Stylesheet returns the class stylesheet for this theme.
// It is built on first call.
func (t *Theme) Stylesheet() *Stylesheet {
	t.sheetOnce.Do(func() {
		t.sheet = t.buildStylesheet()
	})
	return t.sheet
}

// DefaultName is the theme used when none is configured.
const DefaultName = "catppuccin-mocha"

var (
	mu       sync.RWMutex
	registry = map[string]func() *Theme{
		"catppuccin-mocha": NewCatppuccinMocha,
		"catppuccin-latte": NewCatppuccinLatte,
	}
	current = NewCatppuccinMocha()
)

// Register adds a theme constructor under name, replacing any existing one.
func Register(name string, fn func() *Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = fn
}

// Get builds the theme registered under name.
func Get(name string) (*Theme, error) {
	mu.RLock()
	fn, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	return fn(), nil
}

// Names returns the registered theme names, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Current returns the active theme.
func Current() *Theme {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetCurrent makes the named theme active.
func SetCurrent(name string) error {
	t, err := Get(name)
	if err != nil {
		return err
	}
	mu.Lock()
	current = t
	mu.Unlock()
	return nil
}
