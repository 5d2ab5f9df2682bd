// Package settings holds the indentation preferences shared by every
// codepad editor in the process.
//
// Settings live in a Store. The process-wide store returned by Default is
// what editors use unless they are given their own. Stores are updated by
// UI input (Bubble Tea messages), by API calls and by reloading the
// settings file, and notify subscribers of every effective change.
package settings

import "fmt"

// DefaultSpaceCount is the indent width used when nothing is configured.
const DefaultSpaceCount = 4

// Settings controls the text inserted for one level of indentation.
type Settings struct {
	// UseTab inserts a tab character instead of spaces.
	UseTab bool `mapstructure:"use_tab"`
	// SpaceCount is the number of spaces per indent when UseTab is false.
	SpaceCount int `mapstructure:"space_count"`
}

func Defaults() Settings {
	return Settings{UseTab: false, SpaceCount: DefaultSpaceCount}
}

// Sanitized returns s with a negative SpaceCount raised to 0.
func (s Settings) Sanitized() Settings {
	if s.SpaceCount < 0 {
		s.SpaceCount = 0
	}
	return s
}

// String describes the setting the way the status line shows it.
func (s Settings) String() string {
	if s.UseTab {
		return "Tab"
	}
	return fmt.Sprintf("Spaces: %d", s.SpaceCount)
}
