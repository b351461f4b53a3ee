package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// backdropPattern repeats across the page behind the dialog
const backdropPattern = "· "

// DrawStyled renders lipgloss-styled content at a position
func DrawStyled(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, text string) {
	content := style.Width(area.Dx()).Height(area.Dy()).Render(text)
	uv.NewStyledString(content).Draw(scr, area)
}

// FillArea clears an area with a styled background
func FillArea(scr uv.Screen, area uv.Rectangle, style lipgloss.Style) {
	DrawStyled(scr, area, style, "")
}

// DrawBackdrop fills area with a dim dot pattern and an optional heading on
// the first row.
func DrawBackdrop(scr uv.Screen, area uv.Rectangle, style lipgloss.Style, heading string) {
	if area.Dx() <= 0 || area.Dy() <= 0 {
		return
	}

	row := ansi.Truncate(strings.Repeat(backdropPattern, area.Dx()/ansi.StringWidth(backdropPattern)+1), area.Dx(), "")
	lines := make([]string, area.Dy())
	for i := range lines {
		lines[i] = row
	}
	if heading != "" {
		lines[0] = ansi.Truncate(heading, area.Dx(), "…")
	}

	DrawStyled(scr, area, style, strings.Join(lines, "\n"))
}
