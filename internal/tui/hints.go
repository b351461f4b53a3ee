package tui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/mark3labs/modal/internal/tui/modal"
	"github.com/mark3labs/modal/internal/tui/theme"
)

// KeyMap holds the host application's own bindings. They apply only to
// keys the dialog does not handle.
type KeyMap struct {
	Quit    key.Binding
	Refocus key.Binding
}

// DefaultKeyMap returns ctrl+c to quit and tab/shift+tab to return focus to
// the dialog.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Refocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus dialog"),
		),
	}
}

// HintBar renders the one-line key hints with bubbles/help.
type HintBar struct {
	help  help.Model
	sheet *theme.Stylesheet
}

// NewHintBar creates a hint bar styled by the sheet's app__hints classes.
func NewHintBar(sheet *theme.Stylesheet) *HintBar {
	h := help.New()
	h.Styles.ShortKey = sheet.Class(ClassHintKey)
	h.Styles.ShortDesc = sheet.Class(ClassHints)
	h.Styles.ShortSeparator = sheet.Class(ClassHints)
	h.Styles.Ellipsis = sheet.Class(ClassHints)
	return &HintBar{help: h, sheet: sheet}
}

// Bindings returns the hints for the current focus: the dialog's own keys
// while it holds focus, otherwise the host keys.
func (h *HintBar) Bindings(dialog modal.KeyMap, app KeyMap, dialogFocused bool) []key.Binding {
	if dialogFocused {
		return append(dialog.ShortHelp(), app.Quit)
	}
	return []key.Binding{app.Refocus, app.Quit}
}

// View renders bindings truncated to width.
func (h *HintBar) View(bindings []key.Binding, width int) string {
	return ansi.Truncate(h.help.ShortHelpView(bindings), width, "…")
}

// Draw renders bindings into area.
func (h *HintBar) Draw(scr uv.Screen, area uv.Rectangle, bindings []key.Binding) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}
	DrawStyled(scr, area, h.sheet.Class(ClassHints).PaddingLeft(1), h.View(bindings, area.Dx()-1))
}
