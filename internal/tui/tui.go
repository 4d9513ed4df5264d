package tui

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/checklist/internal/color"
	"github.com/idilsaglam/checklist/internal/host"
	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/prefs"
	"github.com/idilsaglam/checklist/internal/tasks"
	"github.com/idilsaglam/checklist/internal/ui"
)

const (
	panelWidth  = 44
	opacityStep = 0.05
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeSettings
	modeBackground
	modeTextColor
)

// row is one painted task with its handlers bound to the task id.
type row struct {
	id     int
	toggle func() error
	remove func() error
}

// Options tune the widget.
type Options struct {
	Theme  string
	Logger *log.Logger
}

// Model is the Bubble Tea model for the panel. Both stores are injected;
// the model only holds view state.
type Model struct {
	tasks   *tasks.Store
	prefs   *prefs.Store
	surface *ui.Surface
	window  *host.Window
	symbols ui.Symbols
	logger  *log.Logger
	copy    func(string) error

	keys  keyMap
	help  help.Model
	input textinput.Model

	mode   mode
	frame  []model.Task
	rows   []row
	cursor int
	status string
	width  int
}

// New builds the model and registers it as the task renderer. Both
// stores must already be hydrated.
func New(ts *tasks.Store, ps *prefs.Store, surface *ui.Surface, window *host.Window, opt Options) *Model {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := &Model{
		tasks:   ts,
		prefs:   ps,
		surface: surface,
		window:  window,
		symbols: ui.SymbolsFor(opt.Theme),
		logger:  logger,
		copy:    clipboard.WriteAll,
		keys:    defaultKeyMap(),
		help:    help.New(),
		input:   ti,
	}
	ts.SetRenderer(m)
	m.RenderTasks(ts.Tasks())
	return m
}

// Run starts the program on the alternate screen.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RenderTasks replaces the painted list and rebinds every row handler.
func (m *Model) RenderTasks(ts []model.Task) {
	m.frame = ts
	m.rows = make([]row, 0, len(ts))
	for _, t := range ts {
		id := t.ID
		m.rows = append(m.rows, row{
			id: id,
			toggle: func() error {
				_, err := m.tasks.Toggle(id)
				return err
			},
			remove: func() error {
				_, err := m.tasks.Delete(id)
				return err
			},
		})
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.help.Width = size.Width
		return m, nil
	}
	switch m.mode {
	case modeAdd, modeBackground, modeTextColor:
		return m.updateInput(msg)
	}
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""
	if m.mode == modeSettings {
		return m.updateSettings(k)
	}
	return m.updateList(k)
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Minimize):
		m.window.Toggle()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if r, ok := m.selected(); ok {
			m.report("toggle", r.toggle())
		}
	case key.Matches(msg, m.keys.Delete):
		if r, ok := m.selected(); ok {
			m.report("delete", r.remove())
		}
	case key.Matches(msg, m.keys.Clear):
		_, err := m.tasks.ClearCompleted()
		m.report("clear completed", err)
	case key.Matches(msg, m.keys.Copy):
		if r, ok := m.selected(); ok {
			if t, found := m.tasks.Get(r.id); found {
				m.report("copy", m.copy(t.Text))
			}
		}
	case key.Matches(msg, m.keys.Add):
		return m, m.openInput(modeAdd, "", "New task...")
	case key.Matches(msg, m.keys.Settings):
		m.mode = modeSettings
	}
	return m, nil
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.mode = modeList
	case key.Matches(msg, m.keys.Lighter):
		m.nudgeOpacity(opacityStep)
	case key.Matches(msg, m.keys.Darker):
		m.nudgeOpacity(-opacityStep)
	case key.Matches(msg, m.keys.Background):
		return m, m.openInput(modeBackground, m.prefs.Preferences().BackgroundColor, "#rrggbb")
	case key.Matches(msg, m.keys.TextColor):
		return m, m.openInput(modeTextColor, m.prefs.Preferences().TextColor, "#rrggbb")
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Cancel):
			m.closeInput()
			return m, nil
		case key.Matches(k, m.keys.Submit):
			m.submit(m.input.Value())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(value string) {
	switch m.mode {
	case modeAdd:
		_, err := m.tasks.Add(value)
		m.report("add", err)
		if errors.Is(err, tasks.ErrEmptyText) {
			return
		}
		// The task is in the list even when saving it failed.
		m.input.SetValue("")
		m.cursor = len(m.rows) - 1
	case modeBackground:
		m.report("background", m.prefs.SetBackgroundColor(strings.TrimSpace(value)))
		m.closeInput()
	case modeTextColor:
		m.report("text color", m.prefs.SetTextColor(strings.TrimSpace(value)))
		m.closeInput()
	}
}

func (m *Model) openInput(next mode, value, placeholder string) tea.Cmd {
	m.mode = next
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *Model) closeInput() {
	m.input.SetValue("")
	m.input.Blur()
	if m.mode == modeAdd {
		m.mode = modeList
		return
	}
	m.mode = modeSettings
}

func (m *Model) nudgeOpacity(delta float64) {
	v := math.Round((m.prefs.Preferences().Opacity+delta)*100) / 100
	v = math.Max(0, math.Min(1, v))
	m.report("opacity", m.prefs.SetOpacity(v))
}

func (m *Model) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// report drops invalid-input errors silently and surfaces the rest.
func (m *Model) report(op string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, tasks.ErrEmptyText) || errors.Is(err, prefs.ErrInvalidColor) || errors.Is(err, prefs.ErrOpacityRange) {
		m.logger.Debug("ignored input", "op", op, "err", err)
		return
	}
	m.logger.Error(op+" failed", "err", err)
	m.status = fmt.Sprintf("%s: %v", op, err)
}

func (m *Model) panelCols() int {
	if m.width > 0 && m.width-2 < panelWidth {
		return m.width - 2
	}
	return panelWidth
}

// windowFill is the panel fill as the host composites it: the painted
// background, then the window opacity over a black desktop.
func (m *Model) windowFill() color.RGB {
	return m.surface.Fill().WithAlpha(m.window.Opacity()).Composite(color.RGB{})
}

func (m *Model) View() string {
	th := m.surface.Theme(m.symbols)
	app := th.App.Background(lipgloss.Color(m.windowFill().Hex()))

	if m.window.Hidden() {
		return m.stripView(th, app)
	}

	remaining, total := m.tasks.Count()
	sections := []string{
		th.Title.Render("Checklist") + "  " + th.Muted.Render(ui.CountLabel(remaining, total)),
		"",
		ui.RenderTasks(m.frame, th, m.cursor),
	}
	switch m.mode {
	case modeAdd:
		sections = append(sections, "", th.Text.Render("Add task"), m.input.View())
	case modeSettings, modeBackground, modeTextColor:
		sections = append(sections, "", m.settingsView(th))
	}
	if m.status != "" {
		sections = append(sections, "", th.Error.Render(m.status))
	}
	sections = append(sections, "", m.help.View(m.keys.helpFor(m.mode)))
	return app.Width(m.panelCols()).Render(strings.Join(sections, "\n"))
}

func (m *Model) settingsView(th ui.Theme) string {
	p := m.prefs.Preferences()
	lines := []string{
		th.Title.Render("Settings"),
		fmt.Sprintf("Opacity     %s %s", ui.ProgressBar(int(math.Round(p.Opacity*100)), 100, 16), m.surface.OpacityLabel()),
		fmt.Sprintf("Background  %s", p.BackgroundColor),
		fmt.Sprintf("Text        %s", p.TextColor),
	}
	switch m.mode {
	case modeBackground:
		lines = append(lines, th.Text.Render("Background color"), m.input.View())
	case modeTextColor:
		lines = append(lines, th.Text.Render("Text color"), m.input.View())
	}
	return ui.Panel(lines, th)
}

// stripView is the sliver left on screen while the window is hidden.
func (m *Model) stripView(th ui.Theme, app lipgloss.Style) string {
	_, _, w, _ := m.window.Bounds()
	cols := 3
	if w > 0 {
		cols = m.panelCols() * m.window.VisibleWidth() / w
	}
	if cols < 3 {
		cols = 3
	}
	remaining, _ := m.tasks.Count()
	return app.Width(cols).Render(th.Title.Render("▸") + "\n" + th.Muted.Render(fmt.Sprint(remaining)))
}
