package modal

import (
	"strings"

	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/modal/internal/tui/icon"
)

// Class hooks emitted for the stylesheet.
const (
	ClassModal     = "modal"
	ClassPopup     = "modal__popup"
	ClassClose     = "modal__popup--close"
	ClassCloseIcon = "modal__popup--close--icon"
	ClassTitle     = "modal__popup--title"
	ClassMessage   = "modal__popup--message"
	ClassButtons   = "modal__popup--buttons"
	ClassButton    = "modal__popup--buttons--btn"

	// ModFocused is appended as "--focused" to the class of the element
	// holding focus. The popup carries it while focus is inside the dialog.
	ModFocused = "focused"
)

// hitRegions holds control areas, relative to the dialog's top-left cell
// in a layout and in screen coordinates after Draw.
type hitRegions struct {
	close   uv.Rectangle
	actions []uv.Rectangle
}

// layout is one measured rendering of the dialog.
type layout struct {
	view   string
	width  int
	height int
	hits   hitRegions
}

// View renders the dialog at its configured width.
func (m *Modal) View() string {
	return m.layout(m.width).view
}

// Draw renders the dialog centered in area and records where its controls
// landed for HandleClick. The content width shrinks to fit narrow areas.
func (m *Modal) Draw(scr uv.Screen, area uv.Rectangle) {
	chrome := m.sheet.Class(ClassModal).GetHorizontalFrameSize() +
		m.sheet.Class(ClassPopup).GetHorizontalFrameSize()
	width := min(m.width, area.Dx()-chrome)
	if width < MinWidth {
		width = MinWidth
	}

	l := m.layout(width)

	x := max((area.Dx()-l.width)/2, 0)
	y := max((area.Dy()-l.height)/2, 0)
	ox, oy := area.Min.X+x, area.Min.Y+y

	m.surface = rect(ox, oy, l.width, l.height)
	m.hits.close = offset(l.hits.close, ox, oy)
	m.hits.actions = make([]uv.Rectangle, len(l.hits.actions))
	for i, r := range l.hits.actions {
		m.hits.actions[i] = offset(r, ox, oy)
	}
	m.drawn = true

	uv.NewStyledString(l.view).Draw(scr, m.surface)
}

// layout renders the dialog with the given content width, measuring each
// control after it is rendered so hit regions match the cells exactly.
func (m *Modal) layout(width int) layout {
	sheet := m.sheet
	rootStyle := sheet.Class(ClassModal)
	popupStyle := sheet.Modifier(ClassPopup, ModFocused, m.Focused())

	// Header: title on the left, close control on the right
	closeStyle := sheet.Modifier(ClassClose, ModFocused, m.CloseFocused())
	glyph := sheet.Class(ClassCloseIcon).Render(m.icons.Glyph(icon.XMark))
	closeBtn := closeStyle.Render(glyph)
	closeW, closeH := lipgloss.Width(closeBtn), lipgloss.Height(closeBtn)

	var header string
	var closeX int
	if m.props.Title != "" {
		titleW := max(width-closeW-1, 1)
		title := sheet.Class(ClassTitle).Width(titleW).Render(m.props.Title)
		header = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", closeBtn)
		closeX = lipgloss.Width(title) + 1
	} else {
		closeX = max(width-closeW, 0)
		header = lipgloss.JoinHorizontal(lipgloss.Top, strings.Repeat(" ", closeX), closeBtn)
	}

	sections := []string{header}
	cursorY := lipgloss.Height(header)
	hits := hitRegions{close: rect(closeX, 0, closeW, closeH)}

	if m.props.Message != "" {
		message := m.renderMessage(width)
		sections = append(sections, "", message)
		cursorY += 1 + lipgloss.Height(message)
	}

	if len(m.props.Actions) > 0 {
		buttonsStyle := sheet.Class(ClassButtons)
		block, rects := m.renderButtons(width)
		bx, by := inset(buttonsStyle)
		top := cursorY + 1
		for _, r := range rects {
			hits.actions = append(hits.actions, offset(r, bx, top+by))
		}
		sections = append(sections, "", buttonsStyle.Render(block))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	view := rootStyle.Render(popupStyle.Render(content))

	rx, ry := inset(rootStyle)
	px, py := inset(popupStyle)
	hits.close = offset(hits.close, rx+px, ry+py)
	for i := range hits.actions {
		hits.actions[i] = offset(hits.actions[i], rx+px, ry+py)
	}

	return layout{
		view:   view,
		width:  lipgloss.Width(view),
		height: lipgloss.Height(view),
		hits:   hits,
	}
}

// renderButtons lays the action buttons out left to right, wrapping to a
// new row when the next button would overflow width. Rectangles are
// relative to the returned block.
func (m *Modal) renderButtons(width int) (string, []uv.Rectangle) {
	var (
		rows  []string
		row   []string
		rects = make([]uv.Rectangle, 0, len(m.props.Actions))
		rowW  int
		rowY  int
		rowH  int
	)
	flush := func() {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		rowY += rowH
		row, rowW, rowH = nil, 0, 0
	}

	for i, a := range m.props.Actions {
		style := m.sheet.Modifier(ClassButton, ModFocused, m.FocusedAction() == i)
		btn := style.Render(a.Label)
		w, h := lipgloss.Width(btn), lipgloss.Height(btn)

		if len(row) > 0 && rowW+1+w > width {
			flush()
		}
		if len(row) > 0 {
			row = append(row, " ")
			rowW++
		}
		rects = append(rects, rect(rowW, rowY, w, h))
		row = append(row, btn)
		rowW += w
		rowH = max(rowH, h)
	}
	if len(row) > 0 {
		flush()
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...), rects
}

// renderMessage renders the message as wrapped text, or through glamour
// when markdown is enabled. Markdown failures fall back to plain text.
func (m *Modal) renderMessage(width int) string {
	style := m.sheet.Class(ClassMessage)
	if !m.markdown {
		return style.Width(width).Render(m.props.Message)
	}

	r, err := m.markdownRenderer(width)
	if err != nil {
		return style.Width(width).Render(m.props.Message)
	}
	out, err := r.Render(m.props.Message)
	if err != nil {
		return style.Width(width).Render(m.props.Message)
	}
	return strings.Trim(out, "\n")
}

// markdownRenderer returns a glamour renderer for width, reusing the last
// one while the width and style are unchanged.
func (m *Modal) markdownRenderer(width int) (*glamour.TermRenderer, error) {
	if m.md != nil && m.mdWidth == width && m.mdDark == m.darkMD {
		return m.md, nil
	}

	glamourStyle := "light"
	if m.darkMD {
		glamourStyle = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.md, m.mdWidth, m.mdDark = r, width, m.darkMD
	return r, nil
}

// inset is the distance from a style's outer edge to its content.
func inset(s lipgloss.Style) (x, y int) {
	x = s.GetMarginLeft() + s.GetBorderLeftSize() + s.GetPaddingLeft()
	y = s.GetMarginTop() + s.GetBorderTopSize() + s.GetPaddingTop()
	return x, y
}

func rect(x, y, w, h int) uv.Rectangle {
	return uv.Rectangle{
		Min: uv.Position{X: x, Y: y},
		Max: uv.Position{X: x + w, Y: y + h},
	}
}

func offset(r uv.Rectangle, dx, dy int) uv.Rectangle {
	return rect(r.Min.X+dx, r.Min.Y+dy, r.Dx(), r.Dy())
}

func contains(r uv.Rectangle, x, y int) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}
