package helper

import (
	"strings"
)

// GetLanguageFromExtension 根据文件扩展名返回 Markdown 代码块语言标识
func GetLanguageFromExtension(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	langMap := map[string]string{
		"go":     "go",
		"py":     "python",
		"js":     "javascript",
		"ts":     "typescript",
		"jsx":    "jsx",
		"tsx":    "tsx",
		"vue":    "vue",
		"svelte": "svelte",
		"java":   "java",
		"kt":     "kotlin",
		"kts":    "kotlin",
		"dart":   "dart",
		"cpp":    "cpp",
		"cc":     "cpp",
		"c":      "c",
		"h":      "c",
		"hpp":    "cpp",
		"cs":     "csharp",
		"php":    "php",
		"rb":     "ruby",
		"rs":     "rust",
		"swift":  "swift",
		"scala":  "scala",
		"sh":     "bash",
		"bash":   "bash",
		"zsh":    "bash",
		"ps1":    "powershell",
		"yaml":   "yaml",
		"yml":    "yaml",
		"json":   "json",
		"xml":    "xml",
		"html":   "html",
		"css":    "css",
		"scss":   "scss",
		"less":   "less",
		"sql":    "sql",
		"md":     "markdown",
		"mdx":    "markdown",
		"txt":    "text",
		"cfg":    "ini",
		"ini":    "ini",
		"toml":   "toml",
		"lua":    "lua",
		"r":      "r",
		"proto":  "protobuf",
		"tf":     "hcl",
		"hcl":    "hcl",
	}

	if lang, ok := langMap[ext]; ok {
		return lang
	}
	return ext
}

// CommentPrefix 返回适合该文件的行注释前缀，用于 plain 导出的路径横幅
func CommentPrefix(relativePath string) string {
	switch GetFileExt(relativePath) {
	case "html", "xml", "svg", "vue", "svelte":
		return "<!--"
	case "css", "scss", "sass", "less":
		return "/*"
	case "py", "rb", "sh", "bash", "zsh", "fish", "yaml", "yml", "toml",
		"ini", "cfg", "conf", "env", "r", "jl", "pl":
		return "#"
	case "sql", "lua", "hs":
		return "--"
	case "bat":
		return "REM"
	default:
		return "//"
	}
}

// StringSliceContains 判断字符串切片是否包含目标值
func StringSliceContains(slice []string, target string) bool {
	for _, s := range slice {
		if s == target {
			return true
		}
	}
	return false
}
