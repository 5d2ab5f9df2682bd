package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codepad/internal/grapheme"
	"github.com/iw2rmb/codepad/state"
)

type cellKind uint8

const (
	cellText cellKind = iota
	cellSelection
	cellCursor
)

func (m *Model) renderContent() string {
	n := m.st.LineCount()
	cur := m.st.Cursor()
	sel := m.st.Selection()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(n)
	}

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cur.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderLine(row, cur, sel))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine renders one logical line. Runs of cells sharing a style are
// rendered together; tabs are expanded to spaces up to the next tab stop.
func (m *Model) renderLine(row int, cur state.Pos, sel state.Selection) string {
	st := m.cfg.Style
	clusters := grapheme.Split(m.st.Line(row))
	selStart, selEnd, hasSel := selectionColsForRow(sel, row, len(clusters))
	hasCursor := m.focused && row == cur.Row

	var sb strings.Builder
	var run strings.Builder
	runKind := cellText
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(styleFor(st, runKind).Render(run.String()))
		run.Reset()
	}

	visualCol := 0
	for i, c := range clusters {
		kind := cellText
		switch {
		case hasCursor && i == cur.GraphemeCol:
			kind = cellCursor
		case hasSel && i >= selStart && i < selEnd:
			kind = cellSelection
		}
		if kind != runKind {
			flush()
			runKind = kind
		}

		w := graphemeCellWidth(c, visualCol, m.cfg.TabWidth)
		if c == "\t" {
			run.WriteString(strings.Repeat(" ", w))
		} else {
			run.WriteString(c)
		}
		visualCol += w
	}
	flush()

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if hasCursor && cur.GraphemeCol >= len(clusters) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func styleFor(st Style, kind cellKind) lipgloss.Style {
	switch kind {
	case cellCursor:
		return st.Cursor
	case cellSelection:
		return st.Selection
	default:
		return st.Text
	}
}

// selectionColsForRow returns the selected [start, end) columns of row.
func selectionColsForRow(sel state.Selection, row, lineLen int) (start, end int, ok bool) {
	if sel.IsEmpty() {
		return 0, 0, false
	}
	r := sel.Range()
	if row < r.Start.Row || row > r.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == r.Start.Row {
		start = r.Start.GraphemeCol
	}
	if row == r.End.Row {
		end = r.End.GraphemeCol
	}
	return start, end, start < end
}

func gutterDigits(lineCount int) int {
	return len(fmt.Sprintf("%d", max(lineCount, 1)))
}

func (m Model) renderStatus() string {
	cur := m.st.Cursor()
	left := m.settings.Get().String()
	right := fmt.Sprintf("Ln %d, Col %d", cur.Row+1, cur.GraphemeCol+1)
	if m.cfg.ReadOnly {
		right += " [RO]"
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.cfg.Style.Status.Render(left + strings.Repeat(" ", gap) + right)
}
