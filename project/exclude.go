package project

import "strings"

// 需要排除的系统和开发工具目录，匹配时整个子树被剪掉
var builtinExcludedDirs = []string{
	"node_modules",
	"build",
	"dist",
	".gradle",
	".idea",
	".vscode",
	"__pycache__",
	".git",
	".svn",
	".hg",
	"target",
	".next",
	".nuxt",
	".output",
	"venv",
	".venv",
	"env",
	".env",
	".dart_tool",
	".pub-cache",
	"Pods",
	"DerivedData",
	".cache",
	"coverage",
	".turbo",
	"out",
	".DS_Store",
	"bin",
	"obj",
	".tox",
	"vendor",
	".bundle",
	".swiftpm",
}

// ExclusionMatcher 判断单个路径段是否被排除。
// 规则为精确名称（不区分大小写）或 *.ext 形式的简单通配，
// 用户与插件规则只做追加，不覆盖内置表。
type ExclusionMatcher struct {
	names map[string]bool
	globs []string
}

// NewExclusionMatcher 创建带附加规则的匹配器
func NewExclusionMatcher(extra ...string) *ExclusionMatcher {
	m := &ExclusionMatcher{names: make(map[string]bool)}
	for _, name := range builtinExcludedDirs {
		m.names[strings.ToLower(name)] = true
	}
	m.Add(extra...)
	return m
}

// Add 追加用户或插件贡献的排除规则
func (m *ExclusionMatcher) Add(rules ...string) {
	for _, rule := range rules {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		if strings.HasPrefix(rule, "*.") {
			m.globs = append(m.globs, strings.ToLower(rule[1:]))
			continue
		}
		m.names[strings.ToLower(rule)] = true
	}
}

// Excluded 判断文件或目录名是否命中排除规则
func (m *ExclusionMatcher) Excluded(name string) bool {
	lower := strings.ToLower(name)
	if m.names[lower] {
		return true
	}
	for _, suffix := range m.globs {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
