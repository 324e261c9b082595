package pack

import (
	"fmt"
	"strings"

	"github.com/sjzsdu/codepack/project/metadata"
)

// XMLFormatter XML 格式：<file path="..."> 包裹 CDATA 内容
type XMLFormatter struct{}

func (x *XMLFormatter) Header(meta *metadata.Metadata, fileCount int, tokens int64) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<codepack>\n<metadata>\n")
	fmt.Fprintf(&b, "  <name>%s</name>\n", xmlEscape(meta.Name))
	fmt.Fprintf(&b, "  <type>%s</type>\n", xmlEscape(meta.ProjectType))
	if meta.Version != "" {
		fmt.Fprintf(&b, "  <version>%s</version>\n", xmlEscape(meta.Version))
	}
	if meta.Description != "" {
		fmt.Fprintf(&b, "  <description>%s</description>\n", xmlEscape(meta.Description))
	}
	if meta.EntryPoint != "" {
		fmt.Fprintf(&b, "  <entry_point>%s</entry_point>\n", xmlEscape(meta.EntryPoint))
	}
	if len(meta.Runtime) > 0 {
		b.WriteString("  <runtime>\n")
		for _, env := range meta.Runtime {
			fmt.Fprintf(&b, "    <env>%s</env>\n", xmlEscape(env))
		}
		b.WriteString("  </runtime>\n")
	}
	if len(meta.Dependencies) > 0 {
		b.WriteString("  <dependencies>\n")
		for _, dep := range meta.Dependencies {
			fmt.Fprintf(&b, "    <dep>%s</dep>\n", xmlEscape(dep))
		}
		b.WriteString("  </dependencies>\n")
	}
	fmt.Fprintf(&b, "  <file_count>%d</file_count>\n", fileCount)
	fmt.Fprintf(&b, "  <estimated_tokens>%s</estimated_tokens>\n", FormatTokens(tokens))
	b.WriteString("</metadata>\n<files>\n\n")
	return b.String()
}

func (x *XMLFormatter) TreeOverview(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<file_tree>\n<![CDATA[\n")
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString("]]>\n</file_tree>\n\n")
	return b.String()
}

func (x *XMLFormatter) FormatFile(relativePath, content string) string {
	return fmt.Sprintf("<file path=\"%s\">\n<![CDATA[\n%s]]>\n</file>\n\n",
		xmlEscape(relativePath), ensureNewline(content))
}

func (x *XMLFormatter) SkipNotice(relativePath string, sizeBytes, limit int64) string {
	return fmt.Sprintf("<file path=\"%s\" skipped=\"true\" size_kb=\"%d\" />\n\n",
		xmlEscape(relativePath), sizeBytes/1024)
}

func (x *XMLFormatter) DiffSection(paths []string, diffs map[string]string) string {
	if len(paths) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("<diffs>\n")
	for _, path := range paths {
		fmt.Fprintf(&b, "<diff path=\"%s\">\n<![CDATA[\n", xmlEscape(path))
		b.WriteString(ensureNewline(diffs[path]))
		b.WriteString("]]>\n</diff>\n")
	}
	b.WriteString("</diffs>\n\n")
	return b.String()
}

func (x *XMLFormatter) InstructionSection(instruction string) string {
	return "<instruction>\n<![CDATA[\n" + ensureNewline(instruction) + "]]>\n</instruction>\n\n"
}

func (x *XMLFormatter) Footer() string { return "</files>\n</codepack>\n" }

func (x *XMLFormatter) FileExtension() string { return ".xml" }

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return replacer.Replace(s)
}
