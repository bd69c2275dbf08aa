package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherFiresOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0o644))

	fw, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	var fired atomic.Int32
	fw.AddHandler(func(p string) {
		assert.Equal(t, filepath.Clean(path), p)
		fired.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	require.NoError(t, os.WriteFile(path, []byte("name: b\n"), 0o644))

	assert.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0o644))

	fw, err := New(path, 100*time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	var fired atomic.Int32
	fw.AddHandler(func(string) { fired.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	// A save burst well inside the debounce window.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("name: b\n"), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0o644))

	fw, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	var fired atomic.Int32
	fw.AddHandler(func(string) { fired.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	fw.Start(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"), []byte("x\n"), 0o644))

	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestWatcherMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "content.yml"), time.Millisecond)
	require.Error(t, err)
}
