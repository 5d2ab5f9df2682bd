package state

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/iw2rmb/codepad/internal/grapheme"
)

// ErrStaleTransaction is returned by Apply when the transaction was built
// from a different state.
var ErrStaleTransaction = errors.New("state: transaction built from a different state")

var stateSeq atomic.Uint64

// State is an immutable snapshot of the document and its selection.
//
// The zero value is an empty document with the cursor at (0, 0).
type State struct {
	lines   [][]string
	sel     Selection
	version uint64
	seq     uint64
}

// New creates a state holding text with the cursor at the document start.
func New(text string) State {
	return State{
		lines: splitLines(text),
		seq:   stateSeq.Add(1),
	}
}

func (s State) Text() string { return joinLines(s.lines) }

// Version counts the changes that led to this state.
func (s State) Version() uint64 { return s.version }

func (s State) LineCount() int { return max(len(s.lines), 1) }

// Line returns the text of row, or "" when row is out of bounds.
func (s State) Line(row int) string {
	if row < 0 || row >= len(s.lines) {
		return ""
	}
	return grapheme.Join(s.lines[row])
}

// LineLen returns the grapheme length of row.
func (s State) LineLen(row int) int { return lineLen(s.lines, row) }

func (s State) Selection() Selection { return s.sel }

// Cursor returns the selection head.
func (s State) Cursor() Pos { return s.sel.Head }

// Tr starts a transaction against s.
func (s State) Tr() *Transaction {
	lines := s.lines
	if len(lines) == 0 {
		lines = [][]string{nil}
	}
	return &Transaction{
		before: s,
		lines:  lines,
		sel:    s.sel,
	}
}

// WithSelection returns s with sel clamped into the document.
func (s State) WithSelection(sel Selection) State {
	next, _ := s.Apply(s.Tr().SetSelection(sel))
	return next
}

// Apply returns the state produced by tr. A transaction that changes
// neither document nor selection returns s unchanged.
func (s State) Apply(tr *Transaction) (State, error) {
	if tr == nil {
		return s, nil
	}
	if tr.before.seq != s.seq || tr.before.version != s.version {
		return s, ErrStaleTransaction
	}
	if !tr.DocChanged() && tr.sel == s.sel {
		return s, nil
	}
	return State{
		lines:   tr.lines,
		sel:     tr.sel,
		version: s.version + 1,
		seq:     stateSeq.Add(1),
	}, nil
}

func lineLen(lines [][]string, row int) int {
	if row < 0 || row >= len(lines) {
		return 0
	}
	return len(lines[row])
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, grapheme.Split(p))
	}
	return lines
}

func joinLines(lines [][]string) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range line {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

// TextInRange returns the text covered by r after clamping it into the
// document.
func (s State) TextInRange(r Range) string {
	lines := s.lines
	if len(lines) == 0 {
		return ""
	}
	r = NormalizeRange(ClampRange(r, len(lines), s.LineLen))
	return textForLinesRange(lines, r)
}
