package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardizePath(t *testing.T) {
	assert.Equal(t, "a/b/c", StandardizePath(`a\b\c`))
	assert.Equal(t, "a/b", StandardizePath("a//b"))
	assert.Equal(t, "/root/x", StandardizePath(`/root//x`))
}

func TestGetPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/.codepack", GetPath(""))
	assert.True(t, strings.HasSuffix(GetPath("plugins"), "/.codepack/plugins"))
}

func TestGetFileExt(t *testing.T) {
	assert.Equal(t, "go", GetFileExt("main.go"))
	assert.Equal(t, "tsx", GetFileExt("App.TSX"))
	assert.Equal(t, "gitignore", GetFileExt(".gitignore"))
	assert.Equal(t, "", GetFileExt("Makefile"))
}

func TestGetLanguageFromExtension(t *testing.T) {
	assert.Equal(t, "go", GetLanguageFromExtension("go"))
	assert.Equal(t, "python", GetLanguageFromExtension(".py"))
	assert.Equal(t, "bash", GetLanguageFromExtension("zsh"))
	// 未知扩展名原样返回
	assert.Equal(t, "zig", GetLanguageFromExtension("zig"))
}

func TestCommentPrefix(t *testing.T) {
	cases := map[string]string{
		"main.go":     "//",
		"index.html":  "<!--",
		"style.css":   "/*",
		"setup.py":    "#",
		"config.yaml": "#",
		".env":        "#",
		"query.sql":   "--",
		"run.bat":     "REM",
		"unknown.zzz": "//",
		"noextension": "//",
	}
	for path, expected := range cases {
		assert.Equal(t, expected, CommentPrefix(path), path)
	}
}

func TestStringSliceContains(t *testing.T) {
	assert.True(t, StringSliceContains([]string{"a", "b"}, "b"))
	assert.False(t, StringSliceContains([]string{"a", "b"}, "c"))
	assert.False(t, StringSliceContains(nil, "a"))
}

func TestToJSON(t *testing.T) {
	out := ToJSON(map[string]int{"n": 1})
	assert.Contains(t, out, `"n": 1`)
}
