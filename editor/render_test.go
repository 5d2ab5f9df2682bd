package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/codepad/settings"
	"github.com/iw2rmb/codepad/state"
)

func TestRender_ExpandsTabsToTabStops(t *testing.T) {
	m := New(Config{
		Text:     "a\tb\n\tc",
		TabWidth: 4,
		Settings: settings.NewStore(settings.Defaults()),
	}).Blur()

	if got, want := m.renderContent(), "a   b\n    c"; got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}

func TestRender_LineNumbers(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "x"
	}
	m := New(Config{
		Text:         strings.Join(lines, "\n"),
		ShowLineNums: true,
		Settings:     settings.NewStore(settings.Defaults()),
	}).Blur()

	got := strings.Split(m.renderContent(), "\n")
	if len(got) != 10 {
		t.Fatalf("rows: got %d, want 10", len(got))
	}
	if got[0] != " 1 x" || got[9] != "10 x" {
		t.Fatalf("gutter: got %q and %q", got[0], got[9])
	}
}

func TestRender_CursorAndSelectionStyles(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := Style{
		Text:      r.NewStyle(),
		Selection: r.NewStyle().Underline(true),
		Cursor:    r.NewStyle().Reverse(true),
	}
	m := New(Config{
		Text:     "abcd",
		Style:    st,
		Settings: settings.NewStore(settings.Defaults()),
	})
	if err := m.Dispatch(m.State().Tr().SetSelection(state.Selection{
		Anchor: state.Pos{GraphemeCol: 1},
		Head:   state.Pos{GraphemeCol: 3},
	})); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	want := st.Text.Render("a") + st.Selection.Render("bc") + st.Cursor.Render("d")
	if got := m.renderContent(); got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}

func TestRender_EOLCursorPlaceholder(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	st := Style{Text: r.NewStyle(), Cursor: r.NewStyle().Reverse(true)}

	m := New(Config{Text: "ab", Style: st, Settings: settings.NewStore(settings.Defaults())})
	m = press(m, keyEnd)

	want := st.Text.Render("ab") + st.Cursor.Render(" ")
	if got := m.renderContent(); got != want {
		t.Fatalf("render: got %q, want %q", got, want)
	}
}

func TestView_StatusLine(t *testing.T) {
	store := settings.NewStore(settings.Settings{SpaceCount: 2})
	m := New(Config{
		Text:       "ab\ncd",
		ShowStatus: true,
		ReadOnly:   true,
		Settings:   store,
	}).SetSize(40, 5)
	m = press(m, keyDown)

	status := m.renderStatus()
	for _, want := range []string{"Spaces: 2", "Ln 2, Col 1", "[RO]"} {
		if !strings.Contains(status, want) {
			t.Fatalf("status %q missing %q", status, want)
		}
	}
	if got := lipgloss.Width(status); got != 40 {
		t.Fatalf("status width: got %d, want 40", got)
	}

	store.SetUseTab(true)
	if got := m.View(); !strings.Contains(got, "Tab") {
		t.Fatalf("view must reflect settings changes, got %q", got)
	}
}

func TestCellWidth(t *testing.T) {
	cases := []struct {
		text      string
		visualCol int
		want      int
	}{
		{"a", 0, 1},
		{"界", 0, 2},
		{"\t", 0, 4},
		{"\t", 3, 1},
		{"\t", 4, 4},
	}
	for _, tc := range cases {
		if got := graphemeCellWidth(tc.text, tc.visualCol, 4); got != tc.want {
			t.Fatalf("graphemeCellWidth(%q, %d)=%d, want %d", tc.text, tc.visualCol, got, tc.want)
		}
	}
}
