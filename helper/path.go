package helper

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/codepack/share"
)

// StandardizePath 标准化路径分隔符（Windows 路径转 /）
func StandardizePath(path string) string {
	cleanPath := strings.ReplaceAll(path, "\\", "/")

	prevPath := ""
	for prevPath != cleanPath {
		prevPath = cleanPath
		cleanPath = strings.ReplaceAll(cleanPath, "//", "/")
	}

	return cleanPath
}

// GetPath 返回应用数据目录下的路径，sub 为空时返回目录本身
func GetPath(sub string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, share.PATH)
	if sub == "" {
		return base
	}
	return filepath.Join(base, sub)
}

// GetFileExt 返回不带点的小写扩展名
func GetFileExt(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}
