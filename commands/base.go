package commands

import "github.com/iw2rmb/codepad/state"

// DeleteSelection deletes a non-empty selection.
func DeleteSelection(s state.State, dispatch state.Dispatch) bool {
	sel := s.Selection()
	if sel.IsEmpty() {
		return false
	}
	if dispatch != nil {
		dispatch(s.Tr().Delete(sel.Range()))
	}
	return true
}

// JoinBackward joins the cursor line onto the previous one when the
// cursor is at the start of a line.
func JoinBackward(s state.State, dispatch state.Dispatch) bool {
	sel := s.Selection()
	cur := sel.Head
	if !sel.IsEmpty() || cur.GraphemeCol != 0 || cur.Row == 0 {
		return false
	}
	if dispatch != nil {
		prev := cur.Row - 1
		dispatch(s.Tr().Delete(state.Range{
			Start: state.Pos{Row: prev, GraphemeCol: s.LineLen(prev)},
			End:   cur,
		}))
	}
	return true
}

// DeleteCharBackward deletes the grapheme before the cursor within the line.
func DeleteCharBackward(s state.State, dispatch state.Dispatch) bool {
	sel := s.Selection()
	cur := sel.Head
	if !sel.IsEmpty() || cur.GraphemeCol == 0 {
		return false
	}
	if dispatch != nil {
		dispatch(s.Tr().Delete(state.Range{
			Start: state.Pos{Row: cur.Row, GraphemeCol: cur.GraphemeCol - 1},
			End:   cur,
		}))
	}
	return true
}

// DeleteCharForward deletes the grapheme after the cursor within the line.
func DeleteCharForward(s state.State, dispatch state.Dispatch) bool {
	sel := s.Selection()
	cur := sel.Head
	if !sel.IsEmpty() || cur.GraphemeCol >= s.LineLen(cur.Row) {
		return false
	}
	if dispatch != nil {
		dispatch(s.Tr().Delete(state.Range{
			Start: cur,
			End:   state.Pos{Row: cur.Row, GraphemeCol: cur.GraphemeCol + 1},
		}))
	}
	return true
}

// JoinForward joins the next line onto the cursor line when the cursor is
// at the end of a line.
func JoinForward(s state.State, dispatch state.Dispatch) bool {
	sel := s.Selection()
	cur := sel.Head
	if !sel.IsEmpty() || cur.GraphemeCol != s.LineLen(cur.Row) || cur.Row >= s.LineCount()-1 {
		return false
	}
	if dispatch != nil {
		dispatch(s.Tr().Delete(state.Range{
			Start: cur,
			End:   state.Pos{Row: cur.Row + 1},
		}))
	}
	return true
}

// NewlineReplacingSelection replaces a non-empty selection with a line break.
func NewlineReplacingSelection(s state.State, dispatch state.Dispatch) bool {
	if s.Selection().IsEmpty() {
		return false
	}
	if dispatch != nil {
		dispatch(s.Tr().InsertText("\n"))
	}
	return true
}

// SplitLine breaks the line at the cursor.
func SplitLine(s state.State, dispatch state.Dispatch) bool {
	if !s.Selection().IsEmpty() {
		return false
	}
	if dispatch != nil {
		dispatch(s.Tr().InsertText("\n"))
	}
	return true
}

// SelectAll selects the whole document.
func SelectAll(s state.State, dispatch state.Dispatch) bool {
	last := s.LineCount() - 1
	all := state.Selection{Head: state.Pos{Row: last, GraphemeCol: s.LineLen(last)}}
	if s.Selection() == all {
		return false
	}
	if dispatch != nil {
		dispatch(s.Tr().SetSelection(all))
	}
	return true
}

// InsertText inserts text at the cursor, replacing the selection.
func InsertText(text string) state.Command {
	return func(s state.State, dispatch state.Dispatch) bool {
		if text == "" && s.Selection().IsEmpty() {
			return false
		}
		if dispatch != nil {
			dispatch(s.Tr().InsertText(text))
		}
		return true
	}
}

// Move moves the cursor, or the selection head when m.Extend is set.
func Move(m state.Move) state.Command {
	return func(s state.State, dispatch state.Dispatch) bool {
		sel := s.MoveSelection(m)
		if sel == s.Selection() {
			return false
		}
		if dispatch != nil {
			dispatch(s.Tr().SetSelection(sel))
		}
		return true
	}
}

// Backspace deletes the selection, joins with the previous line, or
// deletes the previous grapheme, whichever applies first.
func Backspace() state.Command {
	return state.Chain(DeleteSelection, JoinBackward, DeleteCharBackward)
}

// Delete deletes the selection, the next grapheme, or the line break at
// the end of the line, whichever applies first.
func Delete() state.Command {
	return state.Chain(DeleteSelection, DeleteCharForward, JoinForward)
}
