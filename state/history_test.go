package state

import "testing"

// editor mimics a host: apply, then record.
type editor struct {
	t    *testing.T
	s    State
	hist *History
}

func (e *editor) run(cmd Command) bool {
	return cmd(e.s, func(tr *Transaction) {
		prev := e.s
		next, err := e.s.Apply(tr)
		if err != nil {
			e.t.Fatalf("apply: %v", err)
		}
		e.s = next
		e.hist.Record(prev, tr)
	})
}

func TestHistory_UndoRedo_BasicTyping(t *testing.T) {
	e := &editor{t: t, s: New(""), hist: NewHistory(0)}
	if e.hist.CanUndo() || e.hist.CanRedo() {
		t.Fatalf("expected empty history")
	}

	e.run(insertCmd("a"))
	e.run(insertCmd("b"))
	if !e.hist.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	if ok := e.run(e.hist.UndoCommand()); !ok {
		t.Fatalf("expected undo to apply")
	}
	if got, want := e.s.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := e.s.Cursor(), (Pos{GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if !e.hist.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}

	if ok := e.run(e.hist.RedoCommand()); !ok {
		t.Fatalf("expected redo to apply")
	}
	if got, want := e.s.Text(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if e.hist.CanRedo() {
		t.Fatalf("expected CanRedo=false")
	}
}

func TestHistory_EmptyStacks_DoNotApply(t *testing.T) {
	h := NewHistory(0)
	s := New("hi")
	dispatched := false
	d := func(*Transaction) { dispatched = true }
	if h.UndoCommand()(s, d) || h.RedoCommand()(s, d) {
		t.Fatalf("expected undo/redo to report false")
	}
	if dispatched {
		t.Fatalf("expected no dispatch")
	}
}

func TestHistory_QueryDoesNotMoveStacks(t *testing.T) {
	e := &editor{t: t, s: New(""), hist: NewHistory(0)}
	e.run(insertCmd("a"))
	if !e.hist.UndoCommand()(e.s, nil) {
		t.Fatalf("expected undo query to report true")
	}
	if !e.hist.CanUndo() || e.hist.CanRedo() {
		t.Fatalf("query must not move stacks")
	}
}

func TestHistory_NewEditClearsRedo(t *testing.T) {
	e := &editor{t: t, s: New(""), hist: NewHistory(0)}
	e.run(insertCmd("a"))
	e.run(e.hist.UndoCommand())
	e.run(insertCmd("z"))
	if e.hist.CanRedo() {
		t.Fatalf("expected redo cleared")
	}
	if got, want := e.s.Text(), "z"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestHistory_Limit(t *testing.T) {
	e := &editor{t: t, s: New(""), hist: NewHistory(2)}
	for _, s := range []string{"a", "b", "c"} {
		e.run(insertCmd(s))
	}
	e.run(e.hist.UndoCommand())
	e.run(e.hist.UndoCommand())
	if e.hist.CanUndo() {
		t.Fatalf("expected limit to drop oldest step")
	}
	if got, want := e.s.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestHistory_Disabled(t *testing.T) {
	e := &editor{t: t, s: New(""), hist: NewHistory(-1)}
	e.run(insertCmd("a"))
	if e.hist.CanUndo() {
		t.Fatalf("expected recording disabled")
	}
}

func TestHistory_SkipsSelectionOnlyAndOptOut(t *testing.T) {
	e := &editor{t: t, s: New("abc"), hist: NewHistory(0)}
	e.run(func(s State, d Dispatch) bool {
		d(s.Tr().SetCursor(Pos{GraphemeCol: 2}))
		return true
	})
	e.run(func(s State, d Dispatch) bool {
		d(s.Tr().InsertText("!").SetMeta(MetaAddToHistory, false))
		return true
	})
	if e.hist.CanUndo() {
		t.Fatalf("expected nothing recorded")
	}
}

func TestHistory_UndoToIdenticalText(t *testing.T) {
	e := &editor{t: t, s: New(""), hist: NewHistory(0)}
	e.run(insertCmd("a"))
	e.run(func(s State, d Dispatch) bool {
		d(s.Tr().Delete(Range{End: Pos{GraphemeCol: 1}}).SetMeta(MetaAddToHistory, false))
		return true
	})

	if ok := e.run(e.hist.UndoCommand()); !ok {
		t.Fatalf("expected undo to apply")
	}
	if e.hist.CanUndo() {
		t.Fatalf("expected undo stack drained even without a text change")
	}
	if !e.hist.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}
}
