package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/modal/internal/tui/theme"
)

// ToastDuration is how long a toast stays on screen.
const ToastDuration = 3 * time.Second

// ToastDismissMsg is sent when the toast should be dismissed.
type ToastDismissMsg struct {
	// seq identifies the Show call that scheduled this dismissal
	seq int
}

// Toast is a minimal toast notification component.
// Shows a message in the bottom-right corner that auto-dismisses.
type Toast struct {
	message string
	visible bool
	seq     int
	style   lipgloss.Style
}

// NewToast creates a new Toast component styled by the sheet's app__toast
// class.
func NewToast(sheet *theme.Stylesheet) *Toast {
	return &Toast{style: sheet.Class(ClassToast)}
}

// Show displays a toast with the given message. A newer toast replaces the
// current one and restarts the timer.
func (t *Toast) Show(msg string) tea.Cmd {
	t.seq++
	t.message = msg
	t.visible = true

	seq := t.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastDismissMsg{seq: seq}
	})
}

// Update handles messages for the toast component. Dismissals scheduled by
// an earlier Show are ignored.
func (t *Toast) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(ToastDismissMsg); ok && msg.seq == t.seq {
		t.visible = false
		t.message = ""
	}
	return nil
}

// View renders the toast, narrowed to fit width. Returns "" when hidden.
func (t *Toast) View(width int) string {
	if !t.visible || t.message == "" {
		return ""
	}

	content := t.style.Render(t.message)
	if lipgloss.Width(content) > width-2 && width > 2 {
		content = t.style.Width(width - 2).Render(t.message)
	}
	return content
}

// Draw renders the toast in the bottom-right corner of area, one cell in
// from the edges.
func (t *Toast) Draw(scr uv.Screen, area uv.Rectangle) {
	content := t.View(area.Dx())
	if content == "" {
		return
	}

	w, h := lipgloss.Width(content), lipgloss.Height(content)
	x := max(area.Max.X-w-1, area.Min.X)
	y := max(area.Max.Y-h-1, area.Min.Y)
	uv.NewStyledString(content).Draw(scr, uv.Rect(x, y, w, h))
}

// IsVisible returns whether the toast is currently visible.
func (t *Toast) IsVisible() bool {
	return t.visible
}

// GetMessage returns the current toast message (empty if not visible).
func (t *Toast) GetMessage() string {
	if !t.visible {
		return ""
	}
	return t.message
}
