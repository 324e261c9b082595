package stats

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguage(t *testing.T) {
	assert.Equal(t, "Go", Language("go"))
	assert.Equal(t, "TypeScript", Language("tsx"))
	assert.Equal(t, "C/C++ Header", Language("hpp"))
	// 未知扩展名原样返回
	assert.Equal(t, "zig", Language("zig"))
}

func TestCompute(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"main.go":   "package main\n\nfunc main() {}\n",
		"util.go":   "package main\n",
		"index.tsx": "export {}\n",
		"README.md": "# hi\n",
	}
	paths := make([]string, 0, len(files))
	for name, content := range files {
		abs := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(abs, []byte(content), 0o644))
		paths = append(paths, abs)
	}

	result := Compute(paths)
	assert.Equal(t, 4, result.TotalFiles)
	assert.Equal(t, int64(6), result.TotalLines)

	// 同语言聚合，按行数倒序
	require.NotEmpty(t, result.Languages)
	assert.Equal(t, "Go", result.Languages[0].Language)
	assert.Equal(t, 2, result.Languages[0].FileCount)
	assert.Equal(t, int64(4), result.Languages[0].LineCount)
}

func TestComputeSkipsUnreadable(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(ok, []byte("package a\n"), 0o644))

	result := Compute([]string{ok, filepath.Join(dir, "missing.go")})
	assert.Equal(t, 1, result.TotalFiles)
}

func TestComputeEmpty(t *testing.T) {
	result := Compute(nil)
	assert.Equal(t, 0, result.TotalFiles)
	assert.Empty(t, result.Languages)
}
