package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sjzsdu/codepack/helper"
	"github.com/sjzsdu/codepack/project/metadata"
	"github.com/sjzsdu/codepack/project/plugin"
)

// 纳入扫描的源码与配置扩展名
var sourceExtensions = map[string]bool{
	"rs": true, "ts": true, "tsx": true, "js": true, "jsx": true,
	"vue": true, "svelte": true, "py": true, "kt": true, "kts": true,
	"java": true, "dart": true, "go": true, "rb": true, "php": true,
	"swift": true, "c": true, "cpp": true, "h": true, "hpp": true,
	"cs": true, "m": true, "mm": true, "scala": true, "clj": true,
	"ex": true, "exs": true, "hs": true, "lua": true, "r": true,
	"jl": true, "sql": true, "sh": true, "bash": true, "zsh": true,
	"fish": true, "bat": true, "ps1": true, "yml": true, "yaml": true,
	"toml": true, "json": true, "xml": true, "html": true, "css": true,
	"scss": true, "sass": true, "less": true, "md": true, "mdx": true,
	"txt": true, "cfg": true, "ini": true, "conf": true, "env": true,
	"dockerfile": true, "makefile": true, "cmake": true, "gradle": true,
	"properties": true, "gitignore": true, "editorconfig": true,
	"eslintrc": true, "prettierrc": true, "graphql": true, "gql": true,
	"proto": true, "tf": true, "hcl": true, "nix": true, "astro": true,
	"mod": true, "sum": true, "lock": true,
}

// 无扩展名但始终视为源码的特殊文件
var specialSourceNames = map[string]bool{
	"dockerfile":     true,
	"makefile":       true,
	"cmakelists.txt": true,
	"rakefile":       true,
	"gemfile":        true,
	"procfile":       true,
	"justfile":       true,
	"taskfile":       true,
	"vagrantfile":    true,
}

// ScanResult 一次完整扫描的产物，直到下次扫描前不可变
type ScanResult struct {
	ProjectType string             `json:"project_type"`
	Tree        *FileNode          `json:"tree"`
	TotalFiles  int                `json:"total_files"`
	Metadata    *metadata.Metadata `json:"metadata"`
}

// Scanner 执行一次目录扫描。每次调用 Scan 自建上下文，
// 同一实例可安全地被并发调用。
type Scanner struct {
	Plugins      []plugin.Def
	UserExcludes []string
	// Extensions 进一步收窄纳入的扩展名，留空或包含 "*" 时不限制
	Extensions []string
}

// Scan 扫描根目录并返回分类结果、文件树和项目元数据
func (s *Scanner) Scan(root string) (*ScanResult, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("path does not exist or is not a directory: %s", root)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	projectType := DetectProjectType(absRoot, s.Plugins)

	excluder := NewExclusionMatcher(s.UserExcludes...)
	excluder.Add(plugin.ExcludedDirs(s.Plugins)...)

	extraExts := make(map[string]bool)
	for _, ext := range plugin.SourceExtensions(s.Plugins) {
		extraExts[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	only := make(map[string]bool)
	for _, ext := range s.Extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "*" {
			only = nil
			break
		}
		if ext != "" {
			only[ext] = true
		}
	}
	if len(only) == 0 {
		only = nil
	}

	tree := s.scanDir(absRoot, filepath.Base(absRoot), excluder, extraExts, only)
	if tree == nil {
		tree = &FileNode{Name: filepath.Base(absRoot), Path: absRoot, IsDir: true}
	}

	return &ScanResult{
		ProjectType: projectType,
		Tree:        tree,
		TotalFiles:  tree.CountFiles(),
		Metadata:    metadata.Extract(absRoot, projectType),
	}, nil
}

// scanDir 深度优先构建子树；没有任何纳入文件的目录返回 nil（整枝剪掉）
func (s *Scanner) scanDir(path, name string, excluder *ExclusionMatcher, extraExts, only map[string]bool) *FileNode {
	entries, err := os.ReadDir(path)
	if err != nil {
		// 权限不足等单点错误：跳过该目录，不中断扫描
		return nil
	}

	node := &FileNode{Name: name, Path: path, IsDir: true}
	for _, entry := range entries {
		entryName := entry.Name()
		entryPath := filepath.Join(path, entryName)

		// 不跟随符号链接，避免环
		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}

		if entry.IsDir() {
			if excluder.Excluded(entryName) || strings.HasPrefix(entryName, ".") {
				continue
			}
			if child := s.scanDir(entryPath, entryName, excluder, extraExts, only); child != nil {
				node.Children = append(node.Children, child)
			}
			continue
		}

		if excluder.Excluded(entryName) {
			continue
		}
		if !isSourceFile(entryName, extraExts) {
			continue
		}
		if only != nil && !only[helper.GetFileExt(entryName)] {
			continue
		}
		node.Children = append(node.Children, &FileNode{
			Name: entryName,
			Path: entryPath,
		})
	}

	if len(node.Children) == 0 {
		return nil
	}
	node.SortChildren()
	return node
}

func isSourceFile(name string, extraExts map[string]bool) bool {
	if specialSourceNames[strings.ToLower(name)] {
		return true
	}
	// 点文件（如 .gitignore）经 filepath.Ext 得到的扩展名即点后全名
	ext := helper.GetFileExt(name)
	if ext == "" {
		return false
	}
	return sourceExtensions[ext] || extraExts[ext]
}
