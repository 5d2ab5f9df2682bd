package editor

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cozy/prosemirror-go/model"

	"github.com/iw2rmb/codepad/commands"
	"github.com/iw2rmb/codepad/schema"
	"github.com/iw2rmb/codepad/settings"
	"github.com/iw2rmb/codepad/state"
)

// ErrReadOnly is returned by Dispatch for document changes in a read-only
// editor.
var ErrReadOnly = errors.New("editor: read-only")

type binding struct {
	key key.Binding
	cmd state.Command
}

// Model is a Bubble Tea component that renders and edits a state.State.
type Model struct {
	cfg      Config
	st       state.State
	hist     *state.History
	settings *settings.Store
	log      *slog.Logger
	bindings []binding

	focused bool
	width   int
	height  int

	viewport viewport.Model
}

func New(cfg Config) Model {
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	if cfg.EnterFallbacks == nil {
		cfg.EnterFallbacks = commands.DefaultEnterFallbacks()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = DefaultTabWidth
	}

	store := cfg.Settings
	if store == nil {
		store = settings.Default()
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	m := Model{
		cfg:      cfg,
		st:       state.New(cfg.Text),
		hist:     state.NewHistory(cfg.HistoryLimit),
		settings: store,
		log:      log,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.bindings = m.buildBindings()
	m.rebuildContent()
	return m
}

func (m Model) buildBindings() []binding {
	km := m.cfg.KeyMap
	mv := func(unit state.MoveUnit, dir state.MoveDir, extend bool) state.Command {
		return commands.Move(state.Move{Unit: unit, Dir: dir, Extend: extend})
	}
	return []binding{
		{km.Left, mv(state.MoveGrapheme, state.DirLeft, false)},
		{km.Right, mv(state.MoveGrapheme, state.DirRight, false)},
		{km.Up, mv(state.MoveLine, state.DirUp, false)},
		{km.Down, mv(state.MoveLine, state.DirDown, false)},
		{km.ShiftLeft, mv(state.MoveGrapheme, state.DirLeft, true)},
		{km.ShiftRight, mv(state.MoveGrapheme, state.DirRight, true)},
		{km.ShiftUp, mv(state.MoveLine, state.DirUp, true)},
		{km.ShiftDown, mv(state.MoveLine, state.DirDown, true)},
		{km.WordLeft, mv(state.MoveWord, state.DirLeft, false)},
		{km.WordRight, mv(state.MoveWord, state.DirRight, false)},
		{km.Home, mv(state.MoveLine, state.DirHome, false)},
		{km.End, mv(state.MoveLine, state.DirEnd, false)},
		{km.DocStart, mv(state.MoveDoc, state.DirHome, false)},
		{km.DocEnd, mv(state.MoveDoc, state.DirEnd, false)},

		{km.Backspace, commands.Backspace()},
		{km.Delete, commands.Delete()},
		{km.Enter, commands.Enter(m.cfg.EnterFallbacks...)},
		{km.Tab, commands.InsertTab(m.settings)},

		{km.Undo, m.hist.UndoCommand()},
		{km.Redo, m.hist.RedoCommand()},
		{km.SelectAll, commands.SelectAll},
	}
}

func (m Model) Init() tea.Cmd { return nil }

// State returns the current editor state.
func (m Model) State() state.State { return m.st }

func (m Model) Text() string { return m.st.Text() }

// Doc returns the current document in schema form.
func (m Model) Doc() (*model.Node, error) { return schema.DocFromState(m.st) }

// Settings returns the store the editor reads indentation settings from.
func (m Model) Settings() *settings.Store { return m.settings }

func (m Model) History() *state.History { return m.hist }

// SetText replaces the document and clears the undo history.
func (m Model) SetText(text string) Model {
	m.st = state.New(text)
	m.hist.Clear()
	m.rebuildContent()
	m.followCursor()
	return m
}

// Dispatch applies tr to the current state, records it in the history and
// reports the change through Config.OnChange.
func (m *Model) Dispatch(tr *state.Transaction) error {
	if tr == nil {
		return nil
	}
	if m.cfg.ReadOnly && tr.DocChanged() {
		return ErrReadOnly
	}

	prev := m.st
	next, err := prev.Apply(tr)
	if err != nil {
		return err
	}
	m.st = next
	m.hist.Record(prev, tr)

	if next.Version() != prev.Version() {
		m.rebuildContent()
		m.followCursor()
		if m.cfg.OnChange != nil {
			m.cfg.OnChange(buildChangeEvent(next, tr))
		}
	}
	return nil
}

// Run executes cmd against the current state with the editor's dispatch.
func (m *Model) Run(cmd state.Command) bool {
	if cmd == nil {
		return false
	}
	return cmd(m.st, m.dispatch)
}

func (m *Model) dispatch(tr *state.Transaction) {
	if err := m.Dispatch(tr); err != nil {
		m.log.Debug("transaction rejected", "err", err)
	}
}

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)

	m.viewport.Width = m.width
	m.viewport.Height = m.contentHeight()

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) contentHeight() int {
	if m.cfg.ShowStatus && m.height > 0 {
		return m.height - 1
	}
	return m.height
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case settings.UseTabMsg, settings.SpaceCountMsg:
		if m.settings.Update(msg) {
			m.log.Info("indent settings changed", "settings", m.settings.Get().String())
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if !m.cfg.ShowStatus {
		return m.viewport.View()
	}
	return m.viewport.View() + "\n" + m.renderStatus()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	cur := m.st.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}
