package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzsdu/codepack/project/plugin"
	"github.com/sjzsdu/codepack/share"
)

func touch(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		abs := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte("x"), 0o644))
	}
}

func TestDetectBuiltinType(t *testing.T) {
	cases := []struct {
		name     string
		files    []string
		dirs     []string
		expected string
	}{
		{"android", []string{"build.gradle"}, []string{"app"}, "Android / Gradle"},
		{"gradle", []string{"build.gradle.kts"}, nil, "Gradle"},
		{"flutter", []string{"pubspec.yaml"}, nil, "Flutter / Dart"},
		{"rust", []string{"Cargo.toml"}, nil, "Rust"},
		{"go", []string{"go.mod"}, nil, "Go"},
		{"maven", []string{"pom.xml"}, nil, "Java / Maven"},
		{"swift", []string{"Package.swift"}, nil, "Swift"},
		{"cmake", []string{"CMakeLists.txt"}, nil, "C++ / CMake"},
		{"c", []string{"Makefile", "main.c"}, nil, "C"},
		{"ruby", []string{"Gemfile"}, nil, "Ruby"},
		{"docker", []string{"docker-compose.yml"}, nil, "Docker"},
		{"nextjs", []string{"next.config.mjs", "package.json"}, nil, "Next.js"},
		{"vite", []string{"vite.config.ts", "package.json"}, nil, "Vite"},
		{"python", []string{"pyproject.toml"}, nil, "Python"},
		{"node", []string{"package.json"}, nil, "Node.js"},
		{"generic", []string{"notes.txt"}, nil, share.GENERIC_PROJECT},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := t.TempDir()
			touch(t, root, tc.files...)
			for _, dir := range tc.dirs {
				require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
			}
			assert.Equal(t, tc.expected, DetectProjectType(root, nil))
		})
	}
}

func TestDetectOrderRustBeforeGo(t *testing.T) {
	// 同时存在多种清单时按固定顺序取第一个命中
	root := t.TempDir()
	touch(t, root, "Cargo.toml", "go.mod")
	assert.Equal(t, "Rust", DetectProjectType(root, nil))
}

func TestDetectPluginWins(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "go.mod", "zig.build")

	plugins := []plugin.Def{{
		Name:        "Zig",
		DetectFiles: []string{"zig.build"},
	}}
	// 插件优先于内置分类
	assert.Equal(t, "Zig", DetectProjectType(root, plugins))
}

func TestMatchedPlugin(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "site.conf")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "templates"), 0o755))

	plugins := []plugin.Def{
		{Name: "NoMatch", DetectFiles: []string{"absent.txt"}},
		{Name: "Site", DetectFiles: []string{"site.conf"}, DetectDirs: []string{"templates"}},
	}
	matched := MatchedPlugin(root, plugins)
	require.NotNil(t, matched)
	assert.Equal(t, "Site", matched.Name)

	// detect_dirs 指向文件而非目录时不算命中
	rootB := t.TempDir()
	touch(t, rootB, "site.conf", "templates")
	assert.Nil(t, MatchedPlugin(rootB, plugins[1:]))
}
