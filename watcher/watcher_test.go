package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("等待事件超时")
		return Event{}
	}
}

func TestWatcherCreateFile(t *testing.T) {
	root := t.TempDir()
	w, err := New(root)
	require.NoError(t, err)
	defer w.Close()

	path := filepath.Join(root, "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o644))

	ev := waitEvent(t, w)
	assert.Contains(t, ev.Paths, path)
}

func TestWatcherDebounceCoalesces(t *testing.T) {
	root := t.TempDir()
	w, err := New(root)
	require.NoError(t, err)
	defer w.Close()

	// 时间窗内的连续变更合并为一次通知
	for _, name := range []string{"a.go", "b.go", "c.go"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}

	ev := waitEvent(t, w)
	assert.GreaterOrEqual(t, len(ev.Paths), 1)

	select {
	case extra := <-w.Events():
		t.Fatalf("不应有第二次通知: %v", extra.Paths)
	case <-time.After(2 * DefaultDebounce):
	}
}

func TestWatcherIgnoresExcludedDirs(t *testing.T) {
	root := t.TempDir()
	ignored := filepath.Join(root, "node_modules")
	require.NoError(t, os.MkdirAll(ignored, 0o755))

	w, err := New(root)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(ignored, "dep.js"), []byte("x"), 0o644))

	select {
	case ev := <-w.Events():
		t.Fatalf("排除目录内的变更不应通知: %v", ev.Paths)
	case <-time.After(2 * DefaultDebounce):
	}
}

func TestWatcherNewDirRegistered(t *testing.T) {
	root := t.TempDir()
	w, err := New(root)
	require.NoError(t, err)
	defer w.Close()

	sub := filepath.Join(root, "pkg")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	waitEvent(t, w)

	// 新建目录内的后续变更也能收到
	inner := filepath.Join(sub, "util.go")
	require.NoError(t, os.WriteFile(inner, []byte("package pkg\n"), 0o644))
	ev := waitEvent(t, w)
	assert.Contains(t, ev.Paths, inner)
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
