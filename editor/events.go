package editor

import "github.com/iw2rmb/codepad/state"

// ChangeEvent describes a state change made through the editor.
type ChangeEvent struct {
	Version    uint64
	Cursor     state.Pos
	Selection  state.Selection
	DocChanged bool
	Edits      []state.AppliedEdit

	// Full text after the change; hosts can diff if needed.
	Text string
}

func buildChangeEvent(s state.State, tr *state.Transaction) ChangeEvent {
	return ChangeEvent{
		Version:    s.Version(),
		Cursor:     s.Cursor(),
		Selection:  s.Selection(),
		DocChanged: tr.DocChanged(),
		Edits:      tr.Edits(),
		Text:       s.Text(),
	}
}
