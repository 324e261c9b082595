package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/codepack/project/plugin"
	"github.com/sjzsdu/codepack/share"
)

// DetectProjectType 识别项目类型。
// 插件定义优先（首个命中生效），其后按内置标记文件表匹配，
// 都未命中时回退为 generic。
func DetectProjectType(root string, plugins []plugin.Def) string {
	for _, def := range plugins {
		if def.Matches(root) {
			return def.Name
		}
	}
	return detectBuiltinType(root)
}

// MatchedPlugin 返回命中的插件定义，无命中时返回 nil
func MatchedPlugin(root string, plugins []plugin.Def) *plugin.Def {
	for i := range plugins {
		if plugins[i].Matches(root) {
			return &plugins[i]
		}
	}
	return nil
}

func detectBuiltinType(root string) string {
	// Gradle 系，存在 app 目录或清单文件时视为 Android
	if fileExists(root, "build.gradle.kts") || fileExists(root, "build.gradle") {
		if dirExists(root, "app") || fileExists(root, "AndroidManifest.xml") {
			return "Android / Gradle"
		}
		return "Gradle"
	}
	if fileExists(root, "pubspec.yaml") {
		return "Flutter / Dart"
	}
	if fileExists(root, "Cargo.toml") {
		return "Rust"
	}
	if fileExists(root, "go.mod") {
		return "Go"
	}
	if fileExists(root, "pom.xml") {
		return "Java / Maven"
	}
	if fileExists(root, "Package.swift") {
		return "Swift"
	}
	if fileExists(root, "CMakeLists.txt") {
		return "C++ / CMake"
	}
	if fileExists(root, "Makefile") || fileExists(root, "makefile") {
		if hasCSources(root) {
			return "C"
		}
	}
	if fileExists(root, "Gemfile") {
		return "Ruby"
	}
	if fileExists(root, "docker-compose.yml") || fileExists(root, "docker-compose.yaml") {
		return "Docker"
	}
	// JS 框架按配置文件前缀识别
	if entries, err := os.ReadDir(root); err == nil {
		for _, entry := range entries {
			name := entry.Name()
			switch {
			case strings.HasPrefix(name, "next.config"):
				return "Next.js"
			case strings.HasPrefix(name, "nuxt.config"):
				return "Nuxt.js"
			case strings.HasPrefix(name, "vite.config"):
				return "Vite"
			}
		}
	}
	if fileExists(root, "pyproject.toml") || fileExists(root, "requirements.txt") || fileExists(root, "setup.py") {
		return "Python"
	}
	if fileExists(root, "package.json") {
		return "Node.js"
	}
	return share.GENERIC_PROJECT
}

func fileExists(root, name string) bool {
	_, err := os.Stat(filepath.Join(root, name))
	return err == nil
}

func dirExists(root, name string) bool {
	info, err := os.Stat(filepath.Join(root, name))
	return err == nil && info.IsDir()
}

func hasCSources(root string) bool {
	entries, err := os.ReadDir(root)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".c") || strings.HasSuffix(name, ".h") {
			return true
		}
	}
	return false
}
