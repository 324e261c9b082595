// Package stats 统计选中文件的语言分布。
package stats

import (
	"os"
	"sort"
	"strings"

	"github.com/sjzsdu/codepack/helper"
)

// LangStat 单一语言的聚合统计
type LangStat struct {
	Language  string `json:"language"`
	Extension string `json:"extension"`
	FileCount int    `json:"file_count"`
	LineCount int64  `json:"line_count"`
	ByteCount int64  `json:"byte_count"`
}

// ProjectStats 一组文件的整体统计
type ProjectStats struct {
	TotalFiles int        `json:"total_files"`
	TotalLines int64      `json:"total_lines"`
	TotalBytes int64      `json:"total_bytes"`
	Languages  []LangStat `json:"languages"`
}

// 扩展名到展示语言名的映射
var languageNames = map[string]string{
	"rs": "Rust", "ts": "TypeScript", "tsx": "TypeScript",
	"js": "JavaScript", "jsx": "JavaScript", "vue": "Vue",
	"svelte": "Svelte", "py": "Python", "kt": "Kotlin", "kts": "Kotlin",
	"java": "Java", "dart": "Dart", "go": "Go", "rb": "Ruby",
	"php": "PHP", "swift": "Swift", "c": "C",
	"cpp": "C++", "cc": "C++", "cxx": "C++",
	"h": "C/C++ Header", "hpp": "C/C++ Header",
	"cs": "C#", "scala": "Scala", "html": "HTML", "css": "CSS",
	"scss": "CSS (preprocessor)", "sass": "CSS (preprocessor)", "less": "CSS (preprocessor)",
	"json": "JSON", "yaml": "YAML", "yml": "YAML", "toml": "TOML",
	"xml": "XML", "md": "Markdown", "mdx": "Markdown", "sql": "SQL",
	"sh": "Shell", "bash": "Shell", "zsh": "Shell", "fish": "Shell",
	"bat": "PowerShell/Batch", "ps1": "PowerShell/Batch",
	"graphql": "GraphQL", "gql": "GraphQL", "proto": "Protobuf",
	"tf": "Terraform/HCL", "hcl": "Terraform/HCL",
	"lua": "Lua", "r": "R", "jl": "Julia",
}

// Language 把扩展名映射为展示语言名，未知扩展名原样返回
func Language(ext string) string {
	if lang, ok := languageNames[strings.ToLower(ext)]; ok {
		return lang
	}
	return ext
}

// Compute 统计给定文件集合。读取失败的文件被跳过，不计入任何总数。
func Compute(paths []string) ProjectStats {
	type agg struct {
		ext   string
		files int
		lines int64
		bytes int64
	}
	byLang := make(map[string]*agg)

	var result ProjectStats
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		content := string(data)
		lines := int64(len(strings.Split(strings.TrimSuffix(content, "\n"), "\n")))
		if content == "" {
			lines = 0
		}
		bytes := int64(len(content))

		result.TotalFiles++
		result.TotalLines += lines
		result.TotalBytes += bytes

		ext := helper.GetFileExt(path)
		if ext == "" {
			ext = "other"
		}
		lang := Language(ext)
		entry := byLang[lang]
		if entry == nil {
			entry = &agg{ext: ext}
			byLang[lang] = entry
		}
		entry.files++
		entry.lines += lines
		entry.bytes += bytes
	}

	for lang, entry := range byLang {
		result.Languages = append(result.Languages, LangStat{
			Language:  lang,
			Extension: entry.ext,
			FileCount: entry.files,
			LineCount: entry.lines,
			ByteCount: entry.bytes,
		})
	}
	sort.Slice(result.Languages, func(i, j int) bool {
		if result.Languages[i].LineCount != result.Languages[j].LineCount {
			return result.Languages[i].LineCount > result.Languages[j].LineCount
		}
		return result.Languages[i].Language < result.Languages[j].Language
	})
	return result
}
