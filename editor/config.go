package editor

import (
	"log/slog"

	"github.com/iw2rmb/codepad/settings"
	"github.com/iw2rmb/codepad/state"
)

// DefaultTabWidth is the rendered width of a tab stop.
const DefaultTabWidth = 4

// Config configures the editor Model.
type Config struct {
	// Initial text.
	Text string

	// Settings supplies the indentation settings. Nil uses settings.Default.
	Settings *settings.Store

	// KeyMap overrides the default bindings. The zero value selects
	// DefaultKeyMap.
	KeyMap KeyMap

	// EnterFallbacks is the priority list the Enter command tries. Nil
	// selects commands.DefaultEnterFallbacks.
	EnterFallbacks []state.Command

	// HistoryLimit bounds the undo stack. Zero selects
	// state.DefaultHistoryLimit; negative disables undo.
	HistoryLimit int

	// Rendering options.
	ShowLineNums bool
	ShowStatus   bool
	TabWidth     int
	Style        Style

	// ReadOnly rejects transactions that change the document.
	ReadOnly bool

	// Clipboard backs copy, cut and paste. Nil disables them.
	Clipboard Clipboard

	// OnChange is called after every dispatched transaction that produced
	// a new state.
	OnChange func(ChangeEvent)

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}
