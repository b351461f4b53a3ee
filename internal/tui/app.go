// Package tui hosts the modal dialog in a full-screen bubbletea program.
package tui

import (
	"context"
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/modal/internal/config"
	"github.com/mark3labs/modal/internal/descriptor"
	"github.com/mark3labs/modal/internal/logger"
	"github.com/mark3labs/modal/internal/tui/icon"
	"github.com/mark3labs/modal/internal/tui/modal"
	"github.com/mark3labs/modal/internal/tui/theme"
)

// Class hooks for the host screen.
const (
	ClassBackdrop = "app__backdrop"
	ClassHints    = "app__hints"
	ClassHintKey  = "app__hint-key"
	ClassToast    = "app__toast"
)

// ErrInterrupted is returned by Run when the user quits with ctrl+c.
var ErrInterrupted = errors.New("interrupted")

// OutcomeClosed is what an Outcome prints as when the dialog was dismissed.
const OutcomeClosed = "closed"

// Outcome is how the dialog ended.
type Outcome struct {
	// Closed is true when the dialog was dismissed through OnClose.
	Closed bool
	// Result is the result of the action that ended the dialog.
	Result string
	// Chosen lists every chosen action's result in order, including
	// actions that kept the dialog open.
	Chosen []string
}

// String returns "closed" or the result of the action that ended the
// dialog.
func (o Outcome) String() string {
	if o.Closed || o.Result == "" {
		return OutcomeClosed
	}
	return o.Result
}

// dismissMsg is produced by the dialog's OnClose callback.
type dismissMsg struct{}

// actionMsg is produced by an action's OnClick callback.
type actionMsg struct {
	action descriptor.Action
}

// App is the Bubbletea model that renders a backdrop page and mounts the
// dialog over it. The dialog sees input first.
type App struct {
	desc  *descriptor.Descriptor
	modal *modal.Modal // nil once unmounted
	toast *Toast
	hints *HintBar
	keys  KeyMap

	theme     *theme.Theme
	sheet     *theme.Stylesheet
	showHints bool

	layout      Layout
	width       int
	height      int
	outcome     Outcome
	interrupted bool
	quitting    bool
}

// NewDialog builds the modal for desc styled per cfg. The theme is
// returned for callers that draw around the dialog.
func NewDialog(desc *descriptor.Descriptor, cfg *config.Config, onClose func() tea.Cmd, onAction func(descriptor.Action) tea.Cmd) (*modal.Modal, *theme.Theme, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	th, err := theme.Get(cfg.Theme)
	if err != nil {
		return nil, nil, err
	}
	icons, err := icon.Lookup(cfg.Icons)
	if err != nil {
		return nil, nil, err
	}

	m := modal.New(desc.Props(onClose, onAction),
		modal.WithWidth(cfg.Width),
		modal.WithStylesheet(th.Stylesheet()),
		modal.WithIcons(icons),
		modal.WithMarkdown(cfg.Markdown || desc.Markdown, th.IsDark),
	)
	return m, th, nil
}

// NewApp builds the host for desc. cfg selects theme, icons, width and
// markdown rendering; a nil cfg uses config.Default.
func NewApp(desc *descriptor.Descriptor, cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	a := &App{
		desc:      desc,
		keys:      DefaultKeyMap(),
		showHints: cfg.ShowHints,
	}
	m, th, err := NewDialog(desc, cfg, a.onClose, a.onAction)
	if err != nil {
		return nil, err
	}
	a.modal = m
	a.theme = th
	a.sheet = th.Stylesheet()
	a.toast = NewToast(a.sheet)
	a.hints = NewHintBar(a.sheet)
	return a, nil
}

func (a *App) onClose() tea.Cmd {
	return func() tea.Msg { return dismissMsg{} }
}

func (a *App) onAction(action descriptor.Action) tea.Cmd {
	return func() tea.Msg { return actionMsg{action: action} }
}

// Init mounts the dialog.
func (a *App) Init() tea.Cmd {
	if a.modal == nil {
		return nil
	}
	return a.modal.Init()
}

// Update handles incoming messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = CalculateLayout(a.width, a.height, a.showHints)
		return a, nil

	case ToastDismissMsg:
		return a, a.toast.Update(msg)

	case dismissMsg:
		a.outcome.Closed = true
		return a, a.unmount()

	case actionMsg:
		return a, a.choose(msg.action)
	}

	// The dialog gets input first
	if a.modal != nil {
		if cmd, handled := a.modal.Update(msg); handled {
			return a, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return a, a.handleKeyPress(msg)
	case tea.MouseClickMsg:
		// A click on the page moves focus off the dialog
		if a.modal != nil && msg.Mouse().Button == tea.MouseLeft {
			a.modal.Blur()
		}
	}
	return a, nil
}

func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.interrupted = true
		a.quitting = true
		logger.Info("interrupted")
		return tea.Quit
	case key.Matches(msg, a.keys.Refocus):
		if a.modal != nil && !a.modal.Focused() {
			a.modal.Focus()
		}
	}
	return nil
}

func (a *App) choose(action descriptor.Action) tea.Cmd {
	result := action.ResultValue()
	a.outcome.Chosen = append(a.outcome.Chosen, result)
	logger.Info("action chosen: %s", result)

	if !action.Closes() {
		return a.toast.Show(fmt.Sprintf("%s: %s", action.Label, result))
	}
	a.outcome.Result = result
	return a.unmount()
}

// unmount removes the dialog and ends the program.
func (a *App) unmount() tea.Cmd {
	if a.modal == nil {
		return nil
	}
	logger.Debug("unmounting modal %s", a.modal.ID())
	a.modal = nil
	a.quitting = true
	return tea.Quit
}

// Outcome returns how the dialog ended so far.
func (a *App) Outcome() Outcome {
	o := a.outcome
	o.Chosen = append([]string(nil), o.Chosen...)
	return o
}

// Modal returns the mounted dialog, or nil after it is unmounted.
func (a *App) Modal() *modal.Modal {
	return a.modal
}

// View renders the current view. In Bubbletea v2, this returns tea.View
// with display options like AltScreen and MouseMode.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if a.quitting || a.width <= 0 || a.height <= 0 {
		view.AltScreen = !a.quitting
		view.MouseMode = 0
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = theme.HexToColor(a.theme.BgCrust)
	return view
}

// Draw renders the backdrop, the dialog, the hint bar and the toast.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) {
	l := a.layout
	if l.Area != area {
		l = CalculateLayout(area.Dx(), area.Dy(), a.showHints)
	}

	DrawBackdrop(scr, l.Backdrop, a.sheet.Class(ClassBackdrop), a.desc.Title)

	if a.modal != nil {
		a.modal.Draw(scr, l.Backdrop)
	}

	if a.showHints {
		focused := a.modal != nil && a.modal.Focused()
		var dialogKeys modal.KeyMap
		if a.modal != nil {
			dialogKeys = a.modal.KeyMap()
		}
		a.hints.Draw(scr, l.Hints, a.hints.Bindings(dialogKeys, a.keys, focused))
	}

	// Draw toast last so it appears on top of everything
	a.toast.Draw(scr, l.Backdrop)
}

// Run runs the app as a full-screen program until the dialog ends or the
// context is cancelled, and returns the outcome. Extra options are passed
// to tea.NewProgram.
func Run(ctx context.Context, app *App, opts ...tea.ProgramOption) (Outcome, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(app, opts...).Run()
	if err != nil {
		return app.Outcome(), fmt.Errorf("running program: %w", err)
	}

	if m, ok := final.(*App); ok {
		app = m
	}
	if app.interrupted {
		return app.Outcome(), ErrInterrupted
	}
	return app.Outcome(), nil
}
