// Package editor provides the codepad Bubble Tea editor component.
//
// The component owns an immutable state.State and replaces it on every
// dispatched transaction. Keys are resolved through a KeyMap to commands;
// the indentation commands read the shared settings store, which the
// component also updates from its own settings key bindings.
package editor
