package modal

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/modal/internal/tui/icon"
	"github.com/mark3labs/modal/internal/tui/testfixtures"
	"github.com/mark3labs/modal/internal/tui/theme"
	"github.com/stretchr/testify/require"
)

func cellsAt(view string, r uv.Rectangle) string {
	lines := testfixtures.Lines(view)
	if r.Min.Y >= len(lines) {
		return ""
	}
	return strings.TrimSpace(testfixtures.Cells(lines[r.Min.Y], r.Min.X, r.Max.X))
}

func lineIndex(lines []string, substr string) int {
	for i, l := range lines {
		if strings.Contains(l, substr) {
			return i
		}
	}
	return -1
}

func center(r uv.Rectangle) (int, int) {
	return r.Min.X + r.Dx()/2, r.Min.Y + r.Dy()/2
}

func click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func TestView_Content(t *testing.T) {
	t.Parallel()

	m := mounted(testProps(testfixtures.NewRecorder()))
	lines := testfixtures.Lines(m.View())

	title := lineIndex(lines, "Test Modal")
	message := lineIndex(lines, "This is a test modal message.")
	buttons := lineIndex(lines, "Confirm")
	require.GreaterOrEqual(t, title, 0)
	require.Greater(t, message, title)
	require.Greater(t, buttons, message)

	require.Contains(t, lines[title], "✕")
	require.Contains(t, lines[buttons], "Cancel")
	require.Less(t, strings.Index(lines[buttons], "Confirm"), strings.Index(lines[buttons], "Cancel"))
}

func TestView_OptionalRegions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		message string
	}{
		{name: "title and message", title: "Heads up", message: "Body text"},
		{name: "title only", title: "Heads up"},
		{name: "message only", message: "Body text"},
		{name: "neither"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := mounted(Props{Title: tt.title, Message: tt.message, Actions: []Action{}, OnClose: func() tea.Cmd { return nil }})
			plain := testfixtures.Plain(m.View())
			require.Contains(t, plain, "✕")

			if tt.title != "" {
				require.Contains(t, plain, tt.title)
			} else {
				require.NotContains(t, plain, "Heads up")
			}
			if tt.message != "" {
				require.Contains(t, plain, tt.message)
			} else {
				require.NotContains(t, plain, "Body text")
			}
		})
	}
}

func TestLayout_HitRegionsMatchCells(t *testing.T) {
	t.Parallel()

	m := mounted(testProps(testfixtures.NewRecorder()))
	l := m.layout(DefaultWidth)

	require.Equal(t, "✕", cellsAt(l.view, l.hits.close))
	require.Len(t, l.hits.actions, 2)
	require.Equal(t, "Confirm", cellsAt(l.view, l.hits.actions[0]))
	require.Equal(t, "Cancel", cellsAt(l.view, l.hits.actions[1]))
	require.Equal(t, l.hits.actions[0].Min.Y, l.hits.actions[1].Min.Y)
	require.Less(t, l.hits.actions[0].Max.X, l.hits.actions[1].Min.X)
	require.Equal(t, lipgloss.Width(l.view), l.width)
	require.Equal(t, lipgloss.Height(l.view), l.height)
}

func TestLayout_ButtonsWrap(t *testing.T) {
	t.Parallel()

	noop := func() tea.Cmd { return nil }
	m := mounted(Props{
		OnClose: noop,
		Actions: []Action{
			{Label: "Alpha", OnClick: noop},
			{Label: "Bravo", OnClick: noop},
			{Label: "Charlie", OnClick: noop},
		},
	}, WithWidth(20))
	l := m.layout(20)

	require.Len(t, l.hits.actions, 3)
	first, second, third := l.hits.actions[0], l.hits.actions[1], l.hits.actions[2]
	require.Equal(t, first.Min.Y, second.Min.Y)
	require.Greater(t, third.Min.Y, first.Min.Y)
	require.Equal(t, first.Min.X, third.Min.X)
	require.Equal(t, "Charlie", cellsAt(l.view, third))
}

func TestLayout_NoActions(t *testing.T) {
	t.Parallel()

	m := mounted(Props{Actions: []Action{}, OnClose: func() tea.Cmd { return nil }})
	l := m.layout(DefaultWidth)

	require.Empty(t, l.hits.actions)
	require.Equal(t, "✕", cellsAt(l.view, l.hits.close))
}

func TestLayout_CustomStylesheet(t *testing.T) {
	t.Parallel()

	sheet := theme.NewStylesheet(map[string]lipgloss.Style{
		ClassButton: lipgloss.NewStyle(),
	})
	m := mounted(testProps(testfixtures.NewRecorder()), WithStylesheet(sheet))
	l := m.layout(DefaultWidth)

	// Unstyled controls are exactly as wide as their text
	require.Equal(t, 1, l.hits.close.Dx())
	require.Equal(t, 0, l.hits.close.Min.Y)
	require.Equal(t, DefaultWidth-1, l.hits.close.Min.X)
	require.Equal(t, len("Confirm"), l.hits.actions[0].Dx())
	require.Equal(t, "Cancel", cellsAt(l.view, l.hits.actions[1]))
}

func TestLayout_CustomIcons(t *testing.T) {
	t.Parallel()

	icons := icon.Table{Glyphs: map[icon.Name]string{icon.XMark: "#"}}
	m := mounted(testProps(testfixtures.NewRecorder()), WithIcons(icons))
	l := m.layout(DefaultWidth)

	require.Equal(t, "#", cellsAt(l.view, l.hits.close))
	require.NotContains(t, testfixtures.Plain(l.view), "✕")
}

func TestView_Markdown(t *testing.T) {
	t.Parallel()

	m := mounted(Props{
		Title:   "Notes",
		Message: "Some **important** text",
		Actions: []Action{},
		OnClose: func() tea.Cmd { return nil },
	}, WithMarkdown(true, true))
	plain := testfixtures.Plain(m.View())

	require.Contains(t, plain, "important")
	require.NotContains(t, plain, "**")
}

func TestView_MarkdownRendererReused(t *testing.T) {
	t.Parallel()

	m := mounted(Props{
		Message: "Some **important** text",
		Actions: []Action{},
		OnClose: func() tea.Cmd { return nil },
	}, WithMarkdown(true, false))

	first := m.View()
	r := m.md
	require.NotNil(t, r)
	require.Equal(t, first, m.View())
	require.Same(t, r, m.md)

	canvas := uv.NewScreenBuffer(30, 20)
	m.Draw(canvas, uv.Rect(0, 0, 30, 20))
	require.NotSame(t, r, m.md)
	require.Less(t, m.mdWidth, DefaultWidth)
}

func TestDraw_Centers(t *testing.T) {
	t.Parallel()

	m := mounted(testProps(testfixtures.NewRecorder()))
	canvas := uv.NewScreenBuffer(testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	m.Draw(canvas, uv.Rect(0, 0, testfixtures.TestTermWidth, testfixtures.TestTermHeight))

	l := m.layout(DefaultWidth)
	require.Equal(t, (testfixtures.TestTermWidth-l.width)/2, m.surface.Min.X)
	require.Equal(t, (testfixtures.TestTermHeight-l.height)/2, m.surface.Min.Y)
	require.Equal(t, l.width, m.surface.Dx())

	plain := testfixtures.Plain(canvas.Render())
	require.Contains(t, plain, "Test Modal")
	require.Contains(t, plain, "Confirm")
}

func TestDraw_NarrowArea(t *testing.T) {
	t.Parallel()

	m := mounted(testProps(testfixtures.NewRecorder()))
	canvas := uv.NewScreenBuffer(20, 12)
	require.NotPanics(t, func() { m.Draw(canvas, uv.Rect(0, 0, 20, 12)) })

	require.LessOrEqual(t, m.surface.Dx(), 20)
	require.True(t, contains(m.surface, m.hits.close.Min.X, m.hits.close.Min.Y))
}

func TestClick_Controls(t *testing.T) {
	t.Parallel()

	rec := testfixtures.NewRecorder()
	m := mounted(testProps(rec))
	canvas := uv.NewScreenBuffer(testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	m.Draw(canvas, uv.Rect(0, 0, testfixtures.TestTermWidth, testfixtures.TestTermHeight))

	_, handled := m.Update(click(center(m.hits.close)))
	require.True(t, handled)
	require.Equal(t, 1, rec.Closes())
	require.True(t, m.CloseFocused())

	_, handled = m.Update(click(center(m.hits.actions[1])))
	require.True(t, handled)
	require.Equal(t, 1, rec.Clicks("Cancel"))
	require.Zero(t, rec.Clicks("Confirm"))
	require.Equal(t, 1, m.FocusedAction())
	require.Equal(t, 2, rec.Calls())
}

func TestClick_AfterSetPropsWaitsForDraw(t *testing.T) {
	t.Parallel()

	rec := testfixtures.NewRecorder()
	m := mounted(testProps(rec))
	area := uv.Rect(0, 0, testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	canvas := uv.NewScreenBuffer(area.Dx(), area.Dy())
	m.Draw(canvas, area)
	removed := m.hits.actions[1]

	props := testProps(rec)
	props.Actions = props.Actions[:1]
	m.SetProps(props)

	_, handled := m.Update(click(center(removed)))
	require.False(t, handled)
	require.Zero(t, rec.Calls())
	require.Equal(t, -1, m.FocusedAction())

	m.Draw(canvas, area)
	require.Len(t, m.hits.actions, 1)
	_, handled = m.Update(click(center(m.hits.actions[0])))
	require.True(t, handled)
	require.Equal(t, 1, rec.Clicks("Confirm"))
	require.Equal(t, 0, m.FocusedAction())
}

func TestClick_SurfaceAndOutside(t *testing.T) {
	t.Parallel()

	rec := testfixtures.NewRecorder()
	m := mounted(testProps(rec))
	m.Blur()
	canvas := uv.NewScreenBuffer(testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	m.Draw(canvas, uv.Rect(0, 0, testfixtures.TestTermWidth, testfixtures.TestTermHeight))

	_, handled := m.Update(click(0, 0))
	require.False(t, handled)
	require.False(t, m.Focused())

	_, handled = m.Update(click(m.surface.Min.X, m.surface.Min.Y))
	require.True(t, handled)
	require.True(t, m.Focused())

	x, y := center(m.hits.close)
	_, handled = m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseRight})
	require.False(t, handled)
	require.Zero(t, rec.Calls())
}

func TestClick_BeforeDraw(t *testing.T) {
	t.Parallel()

	rec := testfixtures.NewRecorder()
	m := mounted(testProps(rec))

	_, handled := m.HandleClick(0, 0)
	require.False(t, handled)
	require.Zero(t, rec.Calls())
}
