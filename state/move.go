package state

import "github.com/iw2rmb/codepad/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // keep the anchor and move only the head
}

// MoveSelection returns the selection produced by applying m to the
// selection of s.
func (s State) MoveSelection(m Move) Selection {
	lines := s.lines
	if len(lines) == 0 {
		lines = [][]string{nil}
	}
	sel := s.sel
	head := ClampPos(movePos(lines, sel.Head, m), len(lines), func(row int) int { return lineLen(lines, row) })
	if m.Extend {
		return Selection{Anchor: sel.Anchor, Head: head}
	}
	if !sel.IsEmpty() && m.Unit == MoveGrapheme && (m.Dir == DirLeft || m.Dir == DirRight) {
		// Collapse to the matching edge instead of stepping past it.
		r := sel.Range()
		if m.Dir == DirLeft {
			return CursorAt(r.Start)
		}
		return CursorAt(r.End)
	}
	return CursorAt(head)
}

func movePos(lines [][]string, p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return moveGrapheme(lines, p, m.Dir)
	case MoveWord:
		return moveWord(lines, p, m.Dir)
	case MoveLine:
		return moveLine(lines, p, m.Dir)
	case MoveDoc:
		return moveDoc(lines, p, m.Dir)
	default:
		return p
	}
}

func moveGrapheme(lines [][]string, p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(lines) - 1

	switch dir {
	case DirLeft:
		if row == 0 && col == 0 {
			return p
		}
		if col > 0 {
			return Pos{Row: row, GraphemeCol: col - 1}
		}
		return Pos{Row: row - 1, GraphemeCol: len(lines[row-1])}
	case DirRight:
		if row == lastRow && col == len(lines[lastRow]) {
			return p
		}
		if col < len(lines[row]) {
			return Pos{Row: row, GraphemeCol: col + 1}
		}
		return Pos{Row: row + 1, GraphemeCol: 0}
	default:
		return moveLine(lines, p, dir)
	}
}

func moveWord(lines [][]string, p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	line := lines[row]

	switch dir {
	case DirLeft:
		if col == 0 && row > 0 {
			return Pos{Row: row - 1, GraphemeCol: len(lines[row-1])}
		}
		return Pos{Row: row, GraphemeCol: prevWordBoundary(line, col)}
	case DirRight:
		if col == len(line) && row < len(lines)-1 {
			return Pos{Row: row + 1, GraphemeCol: 0}
		}
		return Pos{Row: row, GraphemeCol: nextWordBoundary(line, col)}
	default:
		return moveLine(lines, p, dir)
	}
}

func moveLine(lines [][]string, p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	lastRow := len(lines) - 1

	switch dir {
	case DirHome:
		// Smart home: first non-blank, then column 0.
		indent := grapheme.LeadingSpace(lines[row])
		if col == indent {
			return Pos{Row: row}
		}
		return Pos{Row: row, GraphemeCol: indent}
	case DirEnd:
		return Pos{Row: row, GraphemeCol: len(lines[row])}
	case DirUp:
		if row == 0 {
			return Pos{}
		}
		return Pos{Row: row - 1, GraphemeCol: min(col, len(lines[row-1]))}
	case DirDown:
		if row == lastRow {
			return Pos{Row: row, GraphemeCol: len(lines[row])}
		}
		return Pos{Row: row + 1, GraphemeCol: min(col, len(lines[row+1]))}
	default:
		return p
	}
}

func moveDoc(lines [][]string, p Pos, dir MoveDir) Pos {
	lastRow := len(lines) - 1

	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		return Pos{Row: lastRow, GraphemeCol: len(lines[lastRow])}
	default:
		return p
	}
}

// Word boundaries: skip whitespace, then skip one run of word or
// punctuation clusters. Line ends are hard boundaries.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	if i == 0 {
		return 0
	}
	word := grapheme.IsWord(line[i-1])
	for i > 0 && !grapheme.IsSpace(line[i-1]) && grapheme.IsWord(line[i-1]) == word {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	if i == len(line) {
		return i
	}
	word := grapheme.IsWord(line[i])
	for i < len(line) && !grapheme.IsSpace(line[i]) && grapheme.IsWord(line[i]) == word {
		i++
	}
	return i
}
