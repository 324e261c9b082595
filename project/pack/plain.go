package pack

import (
	"fmt"
	"strings"

	"github.com/sjzsdu/codepack/helper"
	"github.com/sjzsdu/codepack/project/metadata"
)

// PlainFormatter 纯文本格式：路径横幅使用该文件语言的行注释前缀
type PlainFormatter struct{}

func (p *PlainFormatter) Header(meta *metadata.Metadata, fileCount int, tokens int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Project: %s\n", meta.Name)
	fmt.Fprintf(&b, "# Type: %s\n", meta.ProjectType)
	if meta.Version != "" {
		fmt.Fprintf(&b, "# Version: %s\n", meta.Version)
	}
	if meta.Description != "" {
		fmt.Fprintf(&b, "# Description: %s\n", meta.Description)
	}
	if meta.EntryPoint != "" {
		fmt.Fprintf(&b, "# Entry Point: %s\n", meta.EntryPoint)
	}
	if len(meta.Runtime) > 0 {
		fmt.Fprintf(&b, "# Runtime: %s\n", strings.Join(meta.Runtime, ", "))
	}
	if len(meta.Dependencies) > 0 {
		fmt.Fprintf(&b, "# Dependencies: %s\n", strings.Join(meta.Dependencies, ", "))
	}
	if len(meta.DevDependencies) > 0 {
		fmt.Fprintf(&b, "# Dev Dependencies: %s\n", strings.Join(meta.DevDependencies, ", "))
	}
	if len(meta.Requirements) > 0 {
		b.WriteString("# Requirements:\n")
		for _, req := range meta.Requirements {
			fmt.Fprintf(&b, "#   %s\n", req)
		}
	}
	fmt.Fprintf(&b, "# Files: %d\n", fileCount)
	fmt.Fprintf(&b, "# Estimated Tokens: %s\n", FormatTokens(tokens))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	return b.String()
}

func (p *PlainFormatter) TreeOverview(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("# File Tree:\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "#   %s\n", line)
	}
	b.WriteString("#\n\n")
	return b.String()
}

func (p *PlainFormatter) FormatFile(relativePath, content string) string {
	comment := helper.CommentPrefix(relativePath)
	return fmt.Sprintf("%s ===== %s =====\n%s\n", comment, relativePath, ensureNewline(content))
}

func (p *PlainFormatter) SkipNotice(relativePath string, sizeBytes, limit int64) string {
	comment := helper.CommentPrefix(relativePath)
	return fmt.Sprintf("%s ===== %s [SKIPPED: %dKB > %dKB limit] =====\n\n",
		comment, relativePath, sizeBytes/1024, limit/1024)
}

func (p *PlainFormatter) DiffSection(paths []string, diffs map[string]string) string {
	if len(paths) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("# ===== Git Diff (Working Changes) =====\n\n")
	for _, path := range paths {
		fmt.Fprintf(&b, "# --- %s ---\n", path)
		b.WriteString(ensureNewline(diffs[path]))
		b.WriteString("\n")
	}
	return b.String()
}

func (p *PlainFormatter) InstructionSection(instruction string) string {
	return "# ===== Review Instructions =====\n" + ensureNewline(instruction) + "\n"
}

func (p *PlainFormatter) Footer() string { return "" }

func (p *PlainFormatter) FileExtension() string { return ".txt" }
