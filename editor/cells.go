package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemeCellWidth returns the terminal width of a grapheme cluster that
// starts at visualCol. Tabs advance to the next tab stop.
func graphemeCellWidth(text string, visualCol, tabWidth int) int {
	if text == "\t" {
		return tabAdvance(visualCol, tabWidth)
	}

	w := max(runewidth.StringWidth(text), 0)
	if w == 0 {
		w = max(uniseg.StringWidth(text), w)
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return tabWidth - visualCol%tabWidth
}
