package editor

// Clipboard backs the Copy, Cut and Paste bindings. The editor calls it
// synchronously from Update, so implementations should not block for
// long. A failed read or write is logged at warn level and the key does
// nothing: Cut keeps the selection when WriteText fails.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
