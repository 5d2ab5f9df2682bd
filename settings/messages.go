package settings

import tea "github.com/charmbracelet/bubbletea"

// UseTabMsg is sent by UI controls that switch between tabs and spaces.
type UseTabMsg struct {
	UseTab bool
}

// SpaceCountMsg is sent by UI controls that change the indent width.
type SpaceCountMsg struct {
	Count int
}

// Update applies a settings message to the store. It reports whether msg
// was a settings message that changed the store.
func (st *Store) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case UseTabMsg:
		return st.apply(func(cur Settings) Settings {
			cur.UseTab = msg.UseTab
			return cur
		}, SourceUI)
	case SpaceCountMsg:
		return st.apply(func(cur Settings) Settings {
			cur.SpaceCount = msg.Count
			return cur
		}, SourceUI)
	default:
		return false
	}
}

// SetUseTab returns a command that emits UseTabMsg.
func SetUseTab(useTab bool) tea.Cmd {
	return func() tea.Msg { return UseTabMsg{UseTab: useTab} }
}

// SetSpaceCount returns a command that emits SpaceCountMsg.
func SetSpaceCount(n int) tea.Cmd {
	return func() tea.Msg { return SpaceCountMsg{Count: n} }
}
