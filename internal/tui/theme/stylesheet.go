package theme

import (
	"maps"
	"slices"

	"charm.land/lipgloss/v2"
)

// Stylesheet maps class-name hooks to lipgloss styles. Components emit class
// names and never construct their own styles, so swapping the sheet restyles
// them without code changes.
type Stylesheet struct {
	classes map[string]lipgloss.Style
}

// NewStylesheet returns a stylesheet holding a copy of classes.
func NewStylesheet(classes map[string]lipgloss.Style) *Stylesheet {
	return &Stylesheet{classes: maps.Clone(classes)}
}

// Class returns the style for name. Unknown classes yield an empty style.
func (s *Stylesheet) Class(name string) lipgloss.Style {
	if s == nil {
		return lipgloss.NewStyle()
	}
	if st, ok := s.classes[name]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// Has reports whether the sheet defines name.
func (s *Stylesheet) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.classes[name]
	return ok
}

// Modifier returns the style for "name--modifier" when on is true and the
// sheet defines it, and the style for name otherwise.
func (s *Stylesheet) Modifier(name, modifier string, on bool) lipgloss.Style {
	if on {
		if mod := name + "--" + modifier; s.Has(mod) {
			return s.Class(mod)
		}
	}
	return s.Class(name)
}

// With returns a copy of the sheet with name set to style.
func (s *Stylesheet) With(name string, style lipgloss.Style) *Stylesheet {
	var classes map[string]lipgloss.Style
	if s != nil {
		classes = maps.Clone(s.classes)
	}
	if classes == nil {
		classes = map[string]lipgloss.Style{}
	}
	classes[name] = style
	return &Stylesheet{classes: classes}
}

// Classes returns the defined class names, sorted.
func (s *Stylesheet) Classes() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.classes))
}

// buildStylesheet constructs the class styles from theme colors.
func (t *Theme) buildStylesheet() *Stylesheet {
	c := lipgloss.Color
	button := lipgloss.NewStyle().
		Foreground(c(t.FgBase)).
		Background(c(t.BgSurface0)).
		Padding(0, 2)
	buttonFocused := button.
		Foreground(c(t.BgBase)).
		Background(c(t.Tertiary)).
		Bold(true)
	popup := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c(t.BgOverlay)).
		Padding(1, 2)
	closeBtn := lipgloss.NewStyle().Foreground(c(t.FgMuted)).Padding(0, 1)
	closeFocused := lipgloss.NewStyle().
		Foreground(c(t.BgBase)).
		Background(c(t.Error)).
		Bold(true).
		Padding(0, 1)

	return NewStylesheet(map[string]lipgloss.Style{
		// Modal dialog hooks
		"modal":                               lipgloss.NewStyle(),
		"modal__popup":                        popup,
		"modal__popup--focused":               popup.BorderForeground(c(t.Primary)),
		"modal__popup--close":                 closeBtn,
		"modal__popup--close--focused":        closeFocused,
		"modal__popup--close--icon":           lipgloss.NewStyle(),
		"modal__popup--title":                 lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),
		"modal__popup--message":               lipgloss.NewStyle().Foreground(c(t.FgBase)),
		"modal__popup--buttons":               lipgloss.NewStyle(),
		"modal__popup--buttons--btn":          button,
		"modal__popup--buttons--btn--focused": buttonFocused,

		// Host application hooks
		"app__backdrop":  lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		"app__hints":     lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		"app__hint-key":  lipgloss.NewStyle().Foreground(c(t.FgSubtle)).Bold(true),
		"app__toast":     lipgloss.NewStyle().Foreground(c(t.BgBase)).Background(c(t.Warning)).Padding(0, 1).Bold(true),
		"app__logo-text": lipgloss.NewStyle().Foreground(c(t.FgBase)),
	})
}
