package pack

import (
	"strings"

	"github.com/sjzsdu/codepack/project/metadata"
)

// Format 导出格式
type Format string

const (
	FormatPlain    Format = "plain"
	FormatMarkdown Format = "markdown"
	FormatXML      Format = "xml"
)

// Formatter 定义打包格式的接口。
// 格式只决定定界与转义，绝不影响文件取舍逻辑。
type Formatter interface {
	// Header 生成项目头（元数据摘要、文件数、token 估算）
	Header(meta *metadata.Metadata, fileCount int, tokens int64) string
	// TreeOverview 渲染选中文件的目录树概览
	TreeOverview(lines []string) string
	// FormatFile 格式化单个文件段落
	FormatFile(relativePath, content string) string
	// SkipNotice 超限文件在正文中的占位标记
	SkipNotice(relativePath string, sizeBytes, limit int64) string
	// DiffSection 追加 Git diff 区块，diff 文本由外部提供
	DiffSection(paths []string, diffs map[string]string) string
	// InstructionSection 审阅指令区块
	InstructionSection(instruction string) string
	// Footer 文档尾部
	Footer() string
	// FileExtension 导出文件的默认扩展名
	FileExtension() string
}

// GetFormatter 根据格式名称获取对应的格式化器，未知格式回退 plain
func GetFormatter(format Format) Formatter {
	switch Format(strings.ToLower(string(format))) {
	case FormatMarkdown, "md":
		return &MarkdownFormatter{}
	case FormatXML:
		return &XMLFormatter{}
	default:
		return &PlainFormatter{}
	}
}

// ensureNewline 内容末尾补齐换行
func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
