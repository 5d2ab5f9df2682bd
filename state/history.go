package state

// DefaultHistoryLimit is used when NewHistory is given a zero limit.
const DefaultHistoryLimit = 1000

// History keeps undo and redo stacks of state snapshots.
//
// It is not safe for concurrent use.
type History struct {
	limit int
	undo  []State
	redo  []State
}

// NewHistory creates a history holding at most limit undo steps.
// A zero limit selects DefaultHistoryLimit; a negative one disables
// recording.
func NewHistory(limit int) *History {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Record registers that tr was applied on top of prev.
func (h *History) Record(prev State, tr *Transaction) {
	if h == nil || h.limit <= 0 || tr == nil {
		return
	}

	switch v, _ := tr.Meta(MetaHistory); v {
	case "undo":
		if len(h.undo) == 0 {
			return
		}
		h.undo = h.undo[:len(h.undo)-1]
		h.redo = append(h.redo, prev)
		return
	case "redo":
		if len(h.redo) == 0 {
			return
		}
		h.redo = h.redo[:len(h.redo)-1]
		h.pushUndo(prev)
		return
	}

	if !tr.DocChanged() {
		return
	}
	if add, ok := tr.Meta(MetaAddToHistory); ok && add == false {
		return
	}
	h.pushUndo(prev)
	h.redo = nil
}

func (h *History) pushUndo(s State) {
	h.undo = append(h.undo, s)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
}

func (h *History) CanUndo() bool { return h != nil && len(h.undo) > 0 }

func (h *History) CanRedo() bool { return h != nil && len(h.redo) > 0 }

// Clear drops both stacks.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// UndoCommand restores the most recent undo snapshot. The stacks only
// move once the dispatched transaction is passed back to Record.
func (h *History) UndoCommand() Command {
	return func(s State, dispatch Dispatch) bool {
		if !h.CanUndo() {
			return false
		}
		if dispatch != nil {
			target := h.undo[len(h.undo)-1]
			dispatch(s.Tr().ReplaceDoc(target.Text(), target.Selection()).SetMeta(MetaHistory, "undo"))
		}
		return true
	}
}

// RedoCommand re-applies the most recently undone snapshot.
func (h *History) RedoCommand() Command {
	return func(s State, dispatch Dispatch) bool {
		if !h.CanRedo() {
			return false
		}
		if dispatch != nil {
			target := h.redo[len(h.redo)-1]
			dispatch(s.Tr().ReplaceDoc(target.Text(), target.Selection()).SetMeta(MetaHistory, "redo"))
		}
		return true
	}
}
