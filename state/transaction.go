package state

import (
	"strings"

	"github.com/iw2rmb/codepad/internal/grapheme"
)

// Metadata keys understood by History.
const (
	// MetaHistory marks a transaction produced by undo ("undo") or redo ("redo").
	MetaHistory = "history"
	// MetaAddToHistory set to false keeps a transaction out of the undo stack.
	MetaAddToHistory = "addToHistory"
)

// AppliedEdit describes one effective edit in a transaction.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Transaction accumulates edits against a working copy of a State's
// document. Rows are never modified in place, so the originating State
// stays untouched.
//
// Every effective edit collapses the selection to the end of the inserted
// text. SetSelection after the edits overrides that.
type Transaction struct {
	before State
	lines  [][]string
	sel    Selection
	edits  []AppliedEdit
	meta   map[string]any
}

// Before returns the state the transaction was started from.
func (tr *Transaction) Before() State { return tr.before }

// DocChanged reports whether any edit changed the document.
func (tr *Transaction) DocChanged() bool { return len(tr.edits) > 0 }

// Edits returns the effective edits in application order.
func (tr *Transaction) Edits() []AppliedEdit {
	return append([]AppliedEdit(nil), tr.edits...)
}

func (tr *Transaction) Selection() Selection { return tr.sel }

func (tr *Transaction) Cursor() Pos { return tr.sel.Head }

func (tr *Transaction) LineCount() int { return len(tr.lines) }

// Line returns the working text of row.
func (tr *Transaction) Line(row int) string {
	if row < 0 || row >= len(tr.lines) {
		return ""
	}
	return grapheme.Join(tr.lines[row])
}

// Text returns the working document text.
func (tr *Transaction) Text() string { return joinLines(tr.lines) }

func (tr *Transaction) SetMeta(key string, v any) *Transaction {
	if tr.meta == nil {
		tr.meta = make(map[string]any)
	}
	tr.meta[key] = v
	return tr
}

func (tr *Transaction) Meta(key string) (any, bool) {
	v, ok := tr.meta[key]
	return v, ok
}

// SetSelection sets the selection, clamped into the working document.
func (tr *Transaction) SetSelection(sel Selection) *Transaction {
	tr.sel = Selection{
		Anchor: tr.clampPos(sel.Anchor),
		Head:   tr.clampPos(sel.Head),
	}
	return tr
}

// SetCursor collapses the selection to p.
func (tr *Transaction) SetCursor(p Pos) *Transaction {
	return tr.SetSelection(CursorAt(p))
}

// Replace replaces the text in r with text (which may contain '\n').
func (tr *Transaction) Replace(r Range, text string) *Transaction {
	nextCursor, applied, changed := tr.replaceRange(r, text)
	if changed {
		tr.edits = append(tr.edits, applied)
		tr.sel = CursorAt(nextCursor)
	}
	return tr
}

func (tr *Transaction) Insert(p Pos, text string) *Transaction {
	return tr.Replace(Range{Start: p, End: p}, text)
}

func (tr *Transaction) Delete(r Range) *Transaction {
	return tr.Replace(r, "")
}

// InsertText replaces the current selection with text, or inserts it at
// the cursor when the selection is empty.
func (tr *Transaction) InsertText(text string) *Transaction {
	return tr.Replace(tr.sel.Range(), text)
}

// ReplaceDoc swaps the whole document for text and sets sel.
func (tr *Transaction) ReplaceDoc(text string, sel Selection) *Transaction {
	beforeText := tr.Text()
	if beforeText != text {
		beforeRange := tr.docRange()
		tr.lines = splitLines(text)
		tr.edits = append(tr.edits, AppliedEdit{
			RangeBefore: beforeRange,
			RangeAfter:  tr.docRange(),
			InsertText:  text,
			DeletedText: beforeText,
		})
	}
	return tr.SetSelection(sel)
}

func (tr *Transaction) docRange() Range {
	last := len(tr.lines) - 1
	return Range{End: Pos{Row: last, GraphemeCol: len(tr.lines[last])}}
}

func (tr *Transaction) lineLen(row int) int { return lineLen(tr.lines, row) }

func (tr *Transaction) clampPos(p Pos) Pos {
	return ClampPos(p, len(tr.lines), tr.lineLen)
}

func (tr *Transaction) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(tr.lines), tr.lineLen))
	if r.IsEmpty() && text == "" {
		return tr.sel.Head, AppliedEdit{}, false
	}

	deletedText := textForLinesRange(tr.lines, r)
	if deletedText == text {
		return tr.sel.Head, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol

	prefix := tr.lines[startRow][:startCol]
	suffix := tr.lines[endRow][endCol:]

	parts := strings.Split(text, "\n")
	ins := make([][]string, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, grapheme.Split(p))
	}

	repl := make([][]string, 0, len(ins))
	if len(ins) == 1 {
		line := make([]string, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, GraphemeCol: len(prefix) + len(ins[0])}
	} else {
		first := make([]string, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		repl = append(repl, ins[1:len(ins)-1]...)

		lastPart := ins[len(ins)-1]
		last := make([]string, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		nextCursor = Pos{Row: startRow + len(ins) - 1, GraphemeCol: len(lastPart)}
	}

	out := make([][]string, 0, len(tr.lines)-(endRow-startRow+1)+len(repl))
	out = append(out, tr.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, tr.lines[endRow+1:]...)

	tr.lines = out
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol
	if startRow == endRow {
		return grapheme.Join(lines[startRow][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		partStart, partEnd := 0, len(lines[row])
		if row == startRow {
			partStart = startCol
		}
		if row == endRow {
			partEnd = endCol
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
