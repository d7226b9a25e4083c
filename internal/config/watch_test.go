package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitReload(t *testing.T, w *Watcher, want func(Reload) bool) Reload {
	t.Helper()
	var got Reload
	require.Eventually(t, func() bool {
		r, ok := w.Poll()
		if ok && want(r) {
			got = r
			return true
		}
		return false
	}, 3*time.Second, 10*time.Millisecond)
	return got
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showcase.yaml")
	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	_, ok := w.Poll()
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("environment:\n  preset: night\n"), 0644))
	r := waitReload(t, w, func(r Reload) bool { return r.Err == nil && r.Config.Environment.Preset == "night" })
	assert.Equal(t, Default().Window, r.Config.Window)
}

func TestWatchReportsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showcase.yaml")
	w, err := Watch(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(path, []byte("portal:\n  size: -1\n"), 0644))
	r := waitReload(t, w, func(r Reload) bool { return r.Err != nil })
	assert.Equal(t, Default(), r.Config)
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(filepath.Join(dir, "showcase.yaml"))
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))
	time.Sleep(100 * time.Millisecond)
	_, ok := w.Poll()
	assert.False(t, ok)
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", "showcase.yaml"))
	assert.Error(t, err)
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := Watch(filepath.Join(t.TempDir(), "showcase.yaml"))
	require.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
