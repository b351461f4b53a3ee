// Package icon maps icon names to terminal glyphs.
//
// Components ask for an icon by name and render whatever glyph the active
// set returns, so the same view works with Nerd Fonts, plain Unicode or a
// bare ASCII terminal.
package icon

import (
	"fmt"
	"sort"
	"strings"
)

// Name identifies an icon independently of how it is drawn.
type Name string

const (
	XMark   Name = "xmark"
	Check   Name = "check"
	Warning Name = "warning"
	Info    Name = "info"
)

// Set resolves icon names to glyphs.
type Set interface {
	Glyph(name Name) string
}

// Table is a Set backed by a map. Unknown names fall back to Fallback.
type Table struct {
	Glyphs   map[Name]string
	Fallback string
}

// Glyph implements Set.
func (t Table) Glyph(name Name) string {
	if g, ok := t.Glyphs[name]; ok {
		return g
	}
	return t.Fallback
}

// Built-in sets.
var (
	Unicode = Table{
		Glyphs: map[Name]string{
			XMark:   "✕",
			Check:   "✓",
			Warning: "⚠",
			Info:    "ℹ",
		},
		Fallback: "•",
	}

	Nerd = Table{
		Glyphs: map[Name]string{
			XMark:   "", // nf-fa-xmark
			Check:   "", // nf-fa-check
			Warning: "", // nf-fa-warning
			Info:    "", // nf-fa-info_circle
		},
		Fallback: "",
	}

	ASCII = Table{
		Glyphs: map[Name]string{
			XMark:   "x",
			Check:   "v",
			Warning: "!",
			Info:    "i",
		},
		Fallback: "*",
	}
)

var sets = map[string]Set{
	"unicode": Unicode,
	"nerd":    Nerd,
	"ascii":   ASCII,
}

// Lookup returns the built-in set registered under name.
func Lookup(name string) (Set, error) {
	s, ok := sets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown icon set %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

// Names returns the registered set names, sorted.
func Names() []string {
	names := make([]string, 0, len(sets))
	for n := range sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
