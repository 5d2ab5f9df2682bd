package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CODEPAD_INDENT_USE_TAB.
const EnvPrefix = "CODEPAD"

const (
	keyUseTab     = "indent.use_tab"
	keySpaceCount = "indent.space_count"
)

type fileConfig struct {
	Indent Settings `mapstructure:"indent"`
}

// DefaultPath returns the settings file used when no path is given.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "codepad", "config.toml"), nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetDefault(keyUseTab, false)
	v.SetDefault(keySpaceCount, DefaultSpaceCount)

	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads settings from path with environment overrides applied.
// A missing file yields the defaults (plus overrides). An empty path
// selects DefaultPath.
func Load(path string) (Settings, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Settings{}, err
		}
		path = p
	}

	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}
	}

	var c fileConfig
	if err := v.Unmarshal(&c); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	return c.Indent.Sanitized(), nil
}

// Save writes s to path, creating the parent directory if needed.
func Save(path string, s Settings) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir settings dir: %w", err)
	}

	v := viper.New()
	if filepath.Ext(path) == "" {
		v.SetConfigType("toml")
	}
	s = s.Sanitized()
	v.Set(keyUseTab, s.UseTab)
	v.Set(keySpaceCount, s.SpaceCount)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
