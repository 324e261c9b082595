package project

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree 按 map 布局创建测试目录
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
	}
	return root
}

func TestScanGoProject(t *testing.T) {
	root := writeTree(t, map[string]string{
		"go.mod":          "module example.com/demo\n",
		"main.go":         "package main\n",
		"internal/app.go": "package internal\n",
		"README.md":       "# demo\n",
		"photo.png":       "binary",
	})

	s := &Scanner{}
	result, err := s.Scan(root)
	require.NoError(t, err)

	assert.Equal(t, "Go", result.ProjectType)
	// png 不是源文件扩展名，不纳入
	assert.Equal(t, 4, result.TotalFiles)
	assert.Nil(t, result.Tree.FindNode(filepath.Join(root, "photo.png")))
	assert.NotNil(t, result.Tree.FindNode(filepath.Join(root, "internal", "app.go")))
	assert.Equal(t, "example.com/demo", result.Metadata.Name)
}

func TestScanNotADirectory(t *testing.T) {
	s := &Scanner{}
	_, err := s.Scan(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = s.Scan(file)
	assert.Error(t, err)
}

func TestScanExcludesBuiltinDirs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/index.js":        "x",
		"node_modules/a/x.js": "x",
		"dist/bundle.js":      "x",
		".git/config":         "x",
	})

	s := &Scanner{}
	result, err := s.Scan(root)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalFiles)
	assert.Nil(t, result.Tree.FindNode(filepath.Join(root, "node_modules")))
	assert.Nil(t, result.Tree.FindNode(filepath.Join(root, "dist")))
}

func TestScanUserExcludes(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.go":       "package main\n",
		"gen/schema.go": "package gen\n",
		"notes.md":      "x",
	})

	s := &Scanner{UserExcludes: []string{"gen", "*.md"}}
	result, err := s.Scan(root)
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalFiles)
	assert.Nil(t, result.Tree.FindNode(filepath.Join(root, "gen")))
}

func TestScanExtensionFilter(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.go":     "package main\n",
		"util.py":     "pass\n",
		"README.md":   "x",
		"config.yaml": "a: 1\n",
	})

	s := &Scanner{Extensions: []string{".go", "py"}}
	result, err := s.Scan(root)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalFiles, "只保留指定扩展名")
	assert.Nil(t, result.Tree.FindNode(filepath.Join(root, "README.md")))

	// "*" 等于不限制
	s = &Scanner{Extensions: []string{"*"}}
	result, err = s.Scan(root)
	require.NoError(t, err)
	assert.Equal(t, 4, result.TotalFiles)
}

func TestScanPrunesEmptyDirs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/main.go": "package main\n",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets", "img"), 0o755))

	s := &Scanner{}
	result, err := s.Scan(root)
	require.NoError(t, err)

	// 空目录整枝剪掉
	assert.Nil(t, result.Tree.FindNode(filepath.Join(root, "assets")))
}

func TestScanSkipsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink 测试跳过 windows")
	}
	root := writeTree(t, map[string]string{
		"main.go": "package main\n",
	})
	require.NoError(t, os.Symlink(root, filepath.Join(root, "loop")))

	s := &Scanner{}
	result, err := s.Scan(root)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalFiles)
}

func TestScanDeterministicOrder(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b.go":     "package x\n",
		"a.go":     "package x\n",
		"zz/c.go":  "package zz\n",
		"Upper.go": "package x\n",
	})

	s := &Scanner{}
	result, err := s.Scan(root)
	require.NoError(t, err)

	// 目录优先，其后按名称不区分大小写
	names := make([]string, 0, len(result.Tree.Children))
	for _, child := range result.Tree.Children {
		names = append(names, child.Name)
	}
	assert.Equal(t, []string{"zz", "a.go", "b.go", "Upper.go"}, names)
}

func TestScanRepeatable(t *testing.T) {
	root := writeTree(t, map[string]string{
		"go.mod":           "module example.com/demo\n",
		"main.go":          "package main\n",
		"internal/app.go":  "package internal\n",
		"internal/util.go": "package internal\n",
		"docs/guide.md":    "# guide\n",
	})

	s := &Scanner{}
	first, err := s.Scan(root)
	require.NoError(t, err)
	second, err := s.Scan(root)
	require.NoError(t, err)

	// 目录未变时重复扫描必须产出结构完全相同的树
	assert.Equal(t, first.Tree, second.Tree, "两次扫描的树应深度相等")
	assert.Equal(t, first.TotalFiles, second.TotalFiles)
	assert.Equal(t, first.ProjectType, second.ProjectType)
}

func TestIsSourceFile(t *testing.T) {
	cases := []struct {
		name     string
		expected bool
	}{
		{"main.go", true},
		{"app.TSX", true},
		{"Dockerfile", true},
		{"Makefile", true},
		{"Gemfile", true},
		{"photo.png", false},
		{"binary.exe", false},
		{"LICENSE", false},
		{".gitignore", true},
		// .env 按扩展名看是源文件，实际在扫描层被排除名称表兜住
		{".env", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, isSourceFile(tc.name, nil), tc.name)
	}
}
