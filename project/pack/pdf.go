package pack

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// ExportToPDF 将打包内容渲染为 PDF 文件。
// gofpdf 内置字体只覆盖 CP1252，超出范围的字符降级为 '?'。
func ExportToPDF(result *Result, outputPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Courier", "", 9)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	_, lineHeight := pdf.GetFontSize()
	lineHeight *= 0.5
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, line := range strings.Split(result.Content, "\n") {
		pdf.MultiCell(0, lineHeight, tr(sanitizePDFLine(line)), "", "L", false)
	}
	return pdf.OutputFileAndClose(outputPath)
}

// sanitizePDFLine 制表符展开为空格，控制字符替换为 '?'
func sanitizePDFLine(line string) string {
	line = strings.ReplaceAll(line, "\t", "    ")
	return strings.Map(func(r rune) rune {
		if r < 0x20 {
			return '?'
		}
		return r
	}, line)
}
