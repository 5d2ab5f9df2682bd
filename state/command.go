package state

// Dispatch applies the transaction a command produced.
type Dispatch func(tr *Transaction)

// Command inspects s and reports whether it applies. When dispatch is
// non-nil and the command applies, it passes its transaction to dispatch.
// With a nil dispatch the command only answers whether it would apply.
type Command func(s State, dispatch Dispatch) bool

// Chain returns a command that runs cmds in order and stops at the first
// one that applies.
func Chain(cmds ...Command) Command {
	return func(s State, dispatch Dispatch) bool {
		for _, cmd := range cmds {
			if cmd != nil && cmd(s, dispatch) {
				return true
			}
		}
		return false
	}
}

// Capture runs cmd with a dispatch that only records the transaction.
// The returned transaction is nil when cmd did not apply or applied
// without dispatching.
func Capture(cmd Command, s State) (*Transaction, bool) {
	if cmd == nil {
		return nil, false
	}
	var captured *Transaction
	ok := cmd(s, func(tr *Transaction) { captured = tr })
	if !ok {
		return nil, false
	}
	return captured, true
}
