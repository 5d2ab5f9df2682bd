package state

import "testing"

func TestMoveSelection(t *testing.T) {
	s := New("  foo.bar baz\nxy")
	cases := []struct {
		name string
		from Pos
		move Move
		want Pos
	}{
		{"left at doc start", Pos{}, Move{Unit: MoveGrapheme, Dir: DirLeft}, Pos{}},
		{"left wraps to prev line", Pos{Row: 1}, Move{Unit: MoveGrapheme, Dir: DirLeft}, Pos{Row: 0, GraphemeCol: 13}},
		{"right wraps to next line", Pos{Row: 0, GraphemeCol: 13}, Move{Unit: MoveGrapheme, Dir: DirRight}, Pos{Row: 1}},
		{"down clamps column", Pos{Row: 0, GraphemeCol: 10}, Move{Unit: MoveLine, Dir: DirDown}, Pos{Row: 1, GraphemeCol: 2}},
		{"down on last line goes to end", Pos{Row: 1}, Move{Unit: MoveLine, Dir: DirDown}, Pos{Row: 1, GraphemeCol: 2}},
		{"up on first line goes to start", Pos{Row: 0, GraphemeCol: 5}, Move{Unit: MoveLine, Dir: DirUp}, Pos{}},
		{"home goes to first non-blank", Pos{Row: 0, GraphemeCol: 8}, Move{Unit: MoveLine, Dir: DirHome}, Pos{Row: 0, GraphemeCol: 2}},
		{"home again goes to column 0", Pos{Row: 0, GraphemeCol: 2}, Move{Unit: MoveLine, Dir: DirHome}, Pos{}},
		{"end", Pos{}, Move{Unit: MoveLine, Dir: DirEnd}, Pos{Row: 0, GraphemeCol: 13}},
		{"word right stops at punctuation", Pos{Row: 0, GraphemeCol: 2}, Move{Unit: MoveWord, Dir: DirRight}, Pos{Row: 0, GraphemeCol: 5}},
		{"word left skips space", Pos{Row: 0, GraphemeCol: 10}, Move{Unit: MoveWord, Dir: DirLeft}, Pos{Row: 0, GraphemeCol: 6}},
		{"doc end", Pos{}, Move{Unit: MoveDoc, Dir: DirEnd}, Pos{Row: 1, GraphemeCol: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.WithSelection(CursorAt(tc.from)).MoveSelection(tc.move)
			if got != CursorAt(tc.want) {
				t.Fatalf("selection=%v, want cursor at %v", got, tc.want)
			}
		})
	}
}

func TestMoveSelection_Extend(t *testing.T) {
	s := New("hello").WithSelection(CursorAt(Pos{GraphemeCol: 1}))
	sel := s.MoveSelection(Move{Unit: MoveLine, Dir: DirEnd, Extend: true})
	if got, want := sel, (Selection{Anchor: Pos{GraphemeCol: 1}, Head: Pos{GraphemeCol: 5}}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
}

func TestMoveSelection_CollapsesToEdge(t *testing.T) {
	s := New("hello").WithSelection(Selection{Anchor: Pos{GraphemeCol: 4}, Head: Pos{GraphemeCol: 1}})
	if got, want := s.MoveSelection(Move{Unit: MoveGrapheme, Dir: DirRight}), CursorAt(Pos{GraphemeCol: 4}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
	if got, want := s.MoveSelection(Move{Unit: MoveGrapheme, Dir: DirLeft}), CursorAt(Pos{GraphemeCol: 1}); got != want {
		t.Fatalf("selection=%v, want %v", got, want)
	}
}
