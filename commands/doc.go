// Package commands provides the editing commands bound to keys in codepad.
//
// Every command has the state.Command signature: it inspects a state,
// reports whether it applies and, given a dispatch, hands over the
// transaction that performs the edit.
package commands
