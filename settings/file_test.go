package settings

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	require.NoError(t, Save(path, Settings{UseTab: true, SpaceCount: 2}))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Settings{UseTab: true, SpaceCount: 2}, s)
}

func TestLoad_ReadsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[indent]\nspace_count = 8\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Settings{UseTab: false, SpaceCount: 8}, s)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, Save(path, Settings{SpaceCount: 2}))
	t.Setenv("CODEPAD_INDENT_USE_TAB", "true")
	t.Setenv("CODEPAD_INDENT_SPACE_COUNT", "3")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Settings{UseTab: true, SpaceCount: 3}, s)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[indent\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWatch_ReloadsStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, Save(path, Defaults()))

	st := NewStore(Defaults())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, st, nil) }()

	// Keep rewriting until the watcher is registered and picks it up.
	require.Eventually(t, func() bool {
		if err := Save(path, Settings{UseTab: true, SpaceCount: 4}); err != nil {
			return false
		}
		return st.Get().UseTab
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatch_IgnoresTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := Settings{SpaceCount: 2}
	require.NoError(t, Save(path, want))

	st := NewStore(Settings{SpaceCount: 6})
	var (
		mu   sync.Mutex
		seen []Settings
	)
	st.Subscribe(func(c Change) {
		mu.Lock()
		seen = append(seen, c.New)
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, path, st, nil) }()

	// Each round truncates the file before rewriting it, like a writer
	// that opens with O_TRUNC.
	require.Eventually(t, func() bool {
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return false
		}
		if err := Save(path, want); err != nil {
			return false
		}
		return st.Get() == want
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	for _, s := range seen {
		assert.Equal(t, want, s, "store must never reload an empty file")
	}
}
