package commands

import (
	"strings"
	"unicode"

	"github.com/iw2rmb/codepad/settings"
	"github.com/iw2rmb/codepad/state"
)

// IndentText returns the text inserted for one level of indentation: a tab
// when useTab is set, otherwise spaceCount spaces. A negative spaceCount
// yields "".
func IndentText(useTab bool, spaceCount int) string {
	if useTab {
		return "\t"
	}
	if spaceCount <= 0 {
		return ""
	}
	return strings.Repeat(" ", spaceCount)
}

// ExistingIndent returns the leading whitespace of line. A line made only
// of whitespace is returned whole.
func ExistingIndent(line string) string {
	i := strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) })
	if i < 0 {
		return line
	}
	return line[:i]
}

// InsertTab inserts the indent text configured in st at the cursor,
// replacing the selection. Settings are read when the command runs, so
// later changes to st apply immediately. A nil st uses settings.Default.
func InsertTab(st *settings.Store) state.Command {
	if st == nil {
		st = settings.Default()
	}
	return func(s state.State, dispatch state.Dispatch) bool {
		if dispatch != nil {
			cur := st.Get()
			dispatch(s.Tr().InsertText(IndentText(cur.UseTab, cur.SpaceCount)))
		}
		return true
	}
}

// DefaultEnterFallbacks is the priority list Enter uses in the editor.
func DefaultEnterFallbacks() []state.Command {
	return []state.Command{NewlineReplacingSelection, SplitLine}
}

// Enter returns the Enter key command. It tries fallbacks in order with a
// capture-only dispatch and keeps the transaction of the first one that
// applies. That transaction is extended with the leading whitespace of
// the line above the new cursor, inserted at the cursor, and dispatched.
//
// Enter always reports true, so the key never falls through to another
// binding, even when no fallback applied.
func Enter(fallbacks ...state.Command) state.Command {
	fallbacks = append([]state.Command(nil), fallbacks...)
	return func(s state.State, dispatch state.Dispatch) bool {
		var tr *state.Transaction
		for _, cmd := range fallbacks {
			if captured, ok := state.Capture(cmd, s); ok {
				tr = captured
				break
			}
		}
		if tr == nil || dispatch == nil {
			return true
		}

		row := tr.Cursor().Row
		if row > 0 {
			if indent := ExistingIndent(tr.Line(row - 1)); indent != "" {
				tr.InsertText(indent)
			}
		}
		dispatch(tr)
		return true
	}
}
