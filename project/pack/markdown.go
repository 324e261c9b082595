package pack

import (
	"fmt"
	"strings"

	"github.com/sjzsdu/codepack/helper"
	"github.com/sjzsdu/codepack/project/metadata"
)

// MarkdownFormatter Markdown 格式：标题 + 按扩展名标注语言的代码块
type MarkdownFormatter struct{}

func (m *MarkdownFormatter) Header(meta *metadata.Metadata, fileCount int, tokens int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", meta.Name)
	fmt.Fprintf(&b, "- **Type:** %s\n", meta.ProjectType)
	if meta.Version != "" {
		fmt.Fprintf(&b, "- **Version:** %s\n", meta.Version)
	}
	if meta.Description != "" {
		fmt.Fprintf(&b, "- **Description:** %s\n", meta.Description)
	}
	if meta.EntryPoint != "" {
		fmt.Fprintf(&b, "- **Entry Point:** `%s`\n", meta.EntryPoint)
	}
	if len(meta.Runtime) > 0 {
		fmt.Fprintf(&b, "- **Runtime:** %s\n", strings.Join(meta.Runtime, ", "))
	}
	if len(meta.Dependencies) > 0 {
		fmt.Fprintf(&b, "- **Dependencies (%d):** %s\n",
			len(meta.Dependencies), strings.Join(meta.Dependencies, ", "))
	}
	if len(meta.DevDependencies) > 0 {
		fmt.Fprintf(&b, "- **Dev Dependencies (%d):** %s\n",
			len(meta.DevDependencies), strings.Join(meta.DevDependencies, ", "))
	}
	if len(meta.Requirements) > 0 {
		b.WriteString("- **Requirements:**\n")
		for _, req := range meta.Requirements {
			fmt.Fprintf(&b, "  - `%s`\n", req)
		}
	}
	fmt.Fprintf(&b, "- **Files:** %d\n", fileCount)
	fmt.Fprintf(&b, "- **Estimated Tokens:** %s\n", FormatTokens(tokens))
	b.WriteString("\n---\n\n")
	return b.String()
}

func (m *MarkdownFormatter) TreeOverview(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## File Tree\n\n```\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString("```\n\n")
	return b.String()
}

func (m *MarkdownFormatter) FormatFile(relativePath, content string) string {
	lang := helper.GetLanguageFromExtension(helper.GetFileExt(relativePath))
	return fmt.Sprintf("## %s\n\n```%s\n%s```\n\n", relativePath, lang, ensureNewline(content))
}

func (m *MarkdownFormatter) SkipNotice(relativePath string, sizeBytes, limit int64) string {
	return fmt.Sprintf("## %s *(skipped: %dKB > %dKB limit)*\n\n",
		relativePath, sizeBytes/1024, limit/1024)
}

func (m *MarkdownFormatter) DiffSection(paths []string, diffs map[string]string) string {
	if len(paths) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Git Diff (Working Changes)\n\n")
	for _, path := range paths {
		fmt.Fprintf(&b, "### %s\n\n```diff\n", path)
		b.WriteString(ensureNewline(diffs[path]))
		b.WriteString("```\n\n")
	}
	return b.String()
}

func (m *MarkdownFormatter) InstructionSection(instruction string) string {
	return "## Review Instructions\n\n" + ensureNewline(instruction) + "\n"
}

func (m *MarkdownFormatter) Footer() string { return "" }

func (m *MarkdownFormatter) FileExtension() string { return ".md" }
