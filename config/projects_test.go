package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProjectsMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := LoadProjects()
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Projects)
}

func TestLoadProjectsCorrupt(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".codepack")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{broken"), 0o644))

	// 损坏的配置文件不报错，回退到空配置
	cfg := LoadProjects()
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Projects)
}

func TestSaveAndLoadProject(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SaveProject("/work/demo", []string{"src/main.go", "README.md"}, []string{"*.log"}))

	entry, ok := LoadProject("/work/demo")
	require.True(t, ok)
	assert.Equal(t, "/work/demo", entry.ProjectPath)
	assert.Equal(t, []string{"README.md", "src/main.go"}, entry.CheckedPaths)
	assert.Equal(t, []string{"*.log"}, entry.ExcludedPaths)
	assert.NotEmpty(t, entry.LastOpened)

	_, ok = LoadProject("/work/other")
	assert.False(t, ok)
}

func TestSaveProjectKeepsPresets(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SavePreset("/work/demo", "core", []string{"main.go"}))
	require.NoError(t, SetPinned("/work/demo", true))
	// 重新保存选中集不能丢掉预设和置顶状态
	require.NoError(t, SaveProject("/work/demo", []string{"lib/a.go"}, nil))

	entry, ok := LoadProject("/work/demo")
	require.True(t, ok)
	assert.True(t, entry.Pinned)
	paths, ok := GetPreset("/work/demo", "core")
	require.True(t, ok)
	assert.Equal(t, []string{"main.go"}, paths)
}

func TestPresetLifecycle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.Error(t, SavePreset("/work/demo", "", []string{"a.go"}), "空名称应报错")

	require.NoError(t, SavePreset("/work/demo", "docs", []string{"README.md"}))
	require.NoError(t, SavePreset("/work/demo", "core", []string{"main.go"}))
	assert.Equal(t, []string{"core", "docs"}, ListPresets("/work/demo"))

	require.NoError(t, DeletePreset("/work/demo", "docs"))
	assert.Equal(t, []string{"core"}, ListPresets("/work/demo"))

	// 删除不存在的预设不报错
	require.NoError(t, DeletePreset("/work/demo", "missing"))
	require.NoError(t, DeletePreset("/work/unknown", "missing"))
}

func TestRecentProjects(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := LoadProjects()
	cfg.Projects["/a"] = ProjectConfig{ProjectPath: "/a", LastOpened: "100"}
	cfg.Projects["/b"] = ProjectConfig{ProjectPath: "/b", LastOpened: "200"}
	cfg.Projects["/c"] = ProjectConfig{ProjectPath: "/c", LastOpened: "50", Pinned: true}
	require.NoError(t, SaveProjects(cfg))

	// 置顶优先，其余按最近打开倒序
	assert.Equal(t, []string{"/c", "/b", "/a"}, RecentProjects())
}
