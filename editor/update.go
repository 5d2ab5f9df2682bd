package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codepad/commands"
	"github.com/iw2rmb/codepad/settings"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		(&m).Run(commands.InsertText(normalizeNewlines(string(msg.Runes))))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.ToggleTabs):
		return m, settings.SetUseTab(!m.settings.Get().UseTab)
	case key.Matches(msg, km.MoreSpaces):
		return m, settings.SetSpaceCount(m.settings.Get().SpaceCount + 1)
	case key.Matches(msg, km.FewerSpaces):
		return m, settings.SetSpaceCount(max(m.settings.Get().SpaceCount-1, 0))
	case key.Matches(msg, km.Copy):
		m.copySelection()
		return m, nil
	case key.Matches(msg, km.Cut):
		if m.copySelection() {
			(&m).Run(commands.DeleteSelection)
		}
		return m, nil
	case key.Matches(msg, km.Paste):
		(&m).pasteClipboard()
		return m, nil
	}

	for _, b := range m.bindings {
		if key.Matches(msg, b.key) {
			(&m).Run(b.cmd)
			return m, nil
		}
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
		(&m).Run(commands.InsertText(string(msg.Runes)))
	} else if msg.Type == tea.KeySpace {
		(&m).Run(commands.InsertText(" "))
	}
	return m, nil
}

// copySelection writes the selected text to the clipboard and reports
// whether anything was copied.
func (m Model) copySelection() bool {
	if m.cfg.Clipboard == nil {
		return false
	}
	sel := m.st.Selection()
	if sel.IsEmpty() {
		return false
	}
	text := m.st.TextInRange(sel.Range())
	if err := m.cfg.Clipboard.WriteText(text); err != nil {
		m.log.Warn("clipboard write failed", "err", err)
		return false
	}
	return true
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Warn("clipboard read failed", "err", err)
		return
	}
	if s == "" {
		return
	}
	m.Run(commands.InsertText(normalizeNewlines(s)))
}

// normalizeNewlines converts newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
