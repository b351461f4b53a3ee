// Package modal implements an accessible modal dialog for bubbletea programs.
//
// A Modal shows an optional title and message, a close control and a row of
// caller-defined action buttons. It owns no application state: activating
// the close control (or pressing Escape while the dialog has focus) calls
// Props.OnClose, and activating an action calls that action's OnClick. The
// host decides what happens next, including unmounting the dialog.
//
//	m := modal.New(modal.Props{
//	    Title:   "Delete branch?",
//	    Message: "This cannot be undone.",
//	    OnClose: func() tea.Cmd { return closeDialog },
//	    Actions: []modal.Action{
//	        {Label: "Delete", OnClick: func() tea.Cmd { return deleteBranch }},
//	        {Label: "Cancel", OnClick: func() tea.Cmd { return closeDialog }},
//	    },
//	})
//	cmd := m.Init() // mount: focus moves into the dialog once
//
//	// In the host's Update:
//	if cmd, handled := m.Update(msg); handled {
//	    return app, cmd
//	}
//
//	// In the host's Draw:
//	m.Draw(scr, area)
package modal

import (
	"slices"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/modal/internal/logger"
	"github.com/mark3labs/modal/internal/tui/icon"
	"github.com/mark3labs/modal/internal/tui/theme"
)

// Action is a labeled button. OnClick runs with no arguments when the
// button is activated; the returned command is handed back to the host.
type Action struct {
	Label   string
	OnClick func() tea.Cmd
}

// Props describes the dialog. The modal copies Props and never writes to
// the caller's values.
type Props struct {
	Title   string
	Message string
	Actions []Action
	OnClose func() tea.Cmd
}

// CloseLabel is the accessible name of the close control.
const CloseLabel = "Close modal"

// DefaultWidth is the default content width in cells.
const DefaultWidth = 50

// MinWidth is the narrowest content width Draw will lay out.
const MinWidth = 12

// Focus ring positions. Actions occupy focusClose+1 onward.
const (
	focusOutside = -2
	focusRoot    = -1
	focusClose   = 0
)

// Modal is the dialog component.
type Modal struct {
	props    Props
	id       string
	width    int
	sheet    *theme.Stylesheet
	icons    icon.Set
	keys     KeyMap
	markdown bool
	darkMD   bool

	mounted bool
	focus   int

	// Screen areas from the last Draw, for mouse hit detection
	drawn   bool
	hits    hitRegions
	surface uv.Rectangle

	// Markdown renderer, rebuilt when the width or style changes
	md      *glamour.TermRenderer
	mdWidth int
	mdDark  bool
}

// Option configures a Modal.
type Option func(*Modal)

// WithID sets the prefix for element ids. The default is "modal", giving
// "modal-title" and "modal-message".
func WithID(id string) Option {
	return func(m *Modal) {
		if id != "" {
			m.id = id
		}
	}
}

// WithWidth sets the content width in cells.
func WithWidth(w int) Option {
	return func(m *Modal) {
		if w >= MinWidth {
			m.width = w
		}
	}
}

// WithStylesheet sets the stylesheet the class hooks resolve against.
func WithStylesheet(s *theme.Stylesheet) Option {
	return func(m *Modal) {
		if s != nil {
			m.sheet = s
		}
	}
}

// WithIcons sets the icon set used for the close glyph.
func WithIcons(s icon.Set) Option {
	return func(m *Modal) {
		if s != nil {
			m.icons = s
		}
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Modal) {
		m.keys = k
	}
}

// WithMarkdown renders the message as markdown. dark selects the glamour
// style.
func WithMarkdown(enabled, dark bool) Option {
	return func(m *Modal) {
		m.markdown = enabled
		m.darkMD = dark
	}
}

// New creates an unmounted modal. Contract violations in props are logged
// as warnings; the modal still renders what it can.
func New(props Props, opts ...Option) *Modal {
	m := &Modal{
		id:    "modal",
		width: DefaultWidth,
		sheet: theme.Current().Stylesheet(),
		icons: icon.Unicode,
		keys:  DefaultKeyMap(),
		focus: focusOutside,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.setProps(props)
	return m
}

// SetProps replaces the dialog's props. Focus is kept unless the focused
// action no longer exists, in which case focus returns to the dialog root.
// Clicks are ignored until the next Draw measures the new layout.
func (m *Modal) SetProps(props Props) {
	m.setProps(props)
	m.drawn = false
	if m.focus > len(m.props.Actions) {
		m.focus = focusRoot
	}
}

func (m *Modal) setProps(props Props) {
	for _, err := range props.violations() {
		logger.Warn("modal %s: %v", m.id, err)
	}
	props.Actions = slices.Clone(props.Actions)
	m.props = props
}

// Props returns a copy of the current props.
func (m *Modal) Props() Props {
	p := m.props
	p.Actions = slices.Clone(p.Actions)
	return p
}

// ID returns the element id prefix.
func (m *Modal) ID() string {
	return m.id
}

// KeyMap returns the active key bindings.
func (m *Modal) KeyMap() KeyMap {
	return m.keys
}

// Init mounts the modal and moves focus to the dialog root. Only the first
// call has any effect.
func (m *Modal) Init() tea.Cmd {
	if m.mounted {
		return nil
	}
	m.mounted = true
	m.focus = focusRoot
	logger.Debug("modal %s mounted, focus on dialog", m.id)
	return nil
}

// Mounted reports whether Init has run.
func (m *Modal) Mounted() bool {
	return m.mounted
}

// Focused reports whether focus is anywhere inside the dialog.
func (m *Modal) Focused() bool {
	return m.mounted && m.focus != focusOutside
}

// Focus moves focus to the dialog root. It has no effect before Init.
func (m *Modal) Focus() {
	if m.mounted {
		m.focus = focusRoot
	}
}

// Blur moves focus out of the dialog.
func (m *Modal) Blur() {
	m.focus = focusOutside
}

// FocusedAction returns the index of the focused action, or -1.
func (m *Modal) FocusedAction() int {
	if m.focus > focusClose {
		return m.focus - 1
	}
	return -1
}

// CloseFocused reports whether the close control holds focus.
func (m *Modal) CloseFocused() bool {
	return m.mounted && m.focus == focusClose
}

// Update routes key presses and left clicks. handled is false for messages
// the modal does not consume, so the host can act on them.
func (m *Modal) Update(msg tea.Msg) (cmd tea.Cmd, handled bool) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.HandleKey(msg)
	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button != tea.MouseLeft {
			return nil, false
		}
		return m.HandleClick(mouse.X, mouse.Y)
	}
	return nil, false
}

// HandleKey processes a key press while focus is inside the dialog.
func (m *Modal) HandleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if !m.Focused() {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		return m.close(), true
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return nil, true
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return nil, true
	case key.Matches(msg, m.keys.Activate):
		if m.focus == focusRoot {
			return nil, false
		}
		return m.activate(m.focus), true
	}
	return nil, false
}

// HandleClick processes a left click at screen coordinates. Clicks outside
// the drawn dialog are not handled.
func (m *Modal) HandleClick(x, y int) (tea.Cmd, bool) {
	if !m.mounted || !m.drawn {
		return nil, false
	}

	if contains(m.hits.close, x, y) {
		m.focus = focusClose
		return m.close(), true
	}
	for i, r := range m.hits.actions {
		if i >= len(m.props.Actions) {
			break
		}
		if contains(r, x, y) {
			m.focus = focusClose + 1 + i
			return m.activate(m.focus), true
		}
	}
	if contains(m.surface, x, y) {
		m.focus = focusRoot
		return nil, true
	}
	return nil, false
}

// moveFocus steps through root, close and the actions. There is no focus
// trap: stepping past either end leaves the dialog.
func (m *Modal) moveFocus(delta int) {
	last := len(m.props.Actions)
	next := m.focus + delta
	switch {
	case m.focus == focusRoot && delta > 0:
		next = focusClose
	case m.focus <= focusClose && delta < 0:
		next = focusOutside
	case next > last:
		next = focusOutside
	}
	m.focus = next
	if next == focusOutside {
		logger.Debug("modal %s: focus left dialog", m.id)
	}
}

func (m *Modal) activate(target int) tea.Cmd {
	if target == focusClose {
		return m.close()
	}
	i := target - 1
	if i < 0 || i >= len(m.props.Actions) {
		return nil
	}
	if fn := m.props.Actions[i].OnClick; fn != nil {
		return fn()
	}
	return nil
}

func (m *Modal) close() tea.Cmd {
	if m.props.OnClose == nil {
		return nil
	}
	return m.props.OnClose()
}
