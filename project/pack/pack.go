package pack

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sjzsdu/codepack/helper"
	"github.com/sjzsdu/codepack/project/metadata"
	"github.com/sjzsdu/codepack/project/security"
	"github.com/sjzsdu/codepack/project/tree"
	"github.com/sjzsdu/codepack/share"
)

// 跳过原因
const (
	SkipReasonBinary = "binary"
	SkipReasonLimit  = "limit"
)

// SkippedFile 记录打包时被跳过的文件
type SkippedFile struct {
	Path      string `json:"path"`
	Reason    string `json:"reason"`
	SizeBytes int64  `json:"size_bytes"`
}

// Options 打包参数
type Options struct {
	// ProjectPath 项目根目录，相对路径以此为基准
	ProjectPath string
	// Paths 选中文件的绝对路径，按给定顺序输出（调用方传入树遍历序）
	Paths []string
	// Metadata 项目元数据，nil 时按路径名生成最小元数据
	Metadata *metadata.Metadata
	// Format 导出格式，未知值回退 plain
	Format Format
	// MaxFileBytes 单文件大小上限，<=0 时使用默认值
	MaxFileBytes int64
	// Instruction 审阅指令，置于文件正文之前
	Instruction string
	// Diffs Git 工作区差异，键为相对路径
	Diffs map[string]string
	// Redact 为 true 时对文件内容执行密钥脱敏
	Redact bool
}

// Result 打包结果
type Result struct {
	Content         string        `json:"content"`
	FileCount       int           `json:"file_count"`
	TotalBytes      int64         `json:"total_bytes"`
	EstimatedTokens int64         `json:"estimated_tokens"`
	SkippedFiles    []SkippedFile `json:"skipped_files"`
}

// Pack 将选中文件装配为单个文本文档。
// 遍历顺序、跳过规则与输出内容完全由输入决定，重复调用结果一致。
func Pack(opts Options) (*Result, error) {
	if len(opts.Paths) == 0 {
		return nil, fmt.Errorf("没有选中任何文件")
	}

	maxBytes := opts.MaxFileBytes
	if maxBytes <= 0 {
		maxBytes = share.DEFAULT_MAX_FILE_BYTES
	}
	meta := opts.Metadata
	if meta == nil {
		meta = &metadata.Metadata{
			Name:        filepath.Base(opts.ProjectPath),
			ProjectType: share.GENERIC_PROJECT,
		}
	}
	formatter := GetFormatter(opts.Format)

	var (
		body       strings.Builder
		requested  []string
		included   []string
		skipped    []SkippedFile
		totalBytes int64
	)
	for _, path := range opts.Paths {
		rel := relativeTo(opts.ProjectPath, path)
		requested = append(requested, rel)
		if len(included) >= share.MAX_PACK_FILES {
			skipped = append(skipped, SkippedFile{Path: rel, Reason: SkipReasonLimit})
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			// 不可读文件与二进制同样静默跳过
			skipped = append(skipped, SkippedFile{Path: rel, Reason: SkipReasonBinary})
			continue
		}
		if info.Size() > maxBytes {
			skipped = append(skipped, SkippedFile{Path: rel, Reason: SkipReasonLimit, SizeBytes: info.Size()})
			body.WriteString(formatter.SkipNotice(rel, info.Size(), maxBytes))
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			skipped = append(skipped, SkippedFile{Path: rel, Reason: SkipReasonBinary, SizeBytes: info.Size()})
			continue
		}
		if isBinary(data) {
			skipped = append(skipped, SkippedFile{Path: rel, Reason: SkipReasonBinary, SizeBytes: info.Size()})
			continue
		}
		content := string(data)
		if opts.Redact {
			content = security.Mask(content, security.ScanContent(content))
		}
		body.WriteString(formatter.FormatFile(rel, content))
		included = append(included, rel)
		totalBytes += int64(len(data))
	}

	var doc strings.Builder
	doc.WriteString(formatter.Header(meta, len(included), estimateBytes(totalBytes)))
	if opts.Instruction != "" {
		doc.WriteString(formatter.InstructionSection(opts.Instruction))
	}
	// 概览覆盖所有请求的文件，被跳过的也在其中
	doc.WriteString(formatter.TreeOverview(tree.FromPaths(requested)))
	doc.WriteString(body.String())
	if len(opts.Diffs) > 0 {
		diffPaths := make([]string, 0, len(opts.Diffs))
		for path := range opts.Diffs {
			diffPaths = append(diffPaths, path)
		}
		sort.Strings(diffPaths)
		doc.WriteString(formatter.DiffSection(diffPaths, opts.Diffs))
	}
	doc.WriteString(formatter.Footer())

	return &Result{
		Content:         doc.String(),
		FileCount:       len(included),
		TotalBytes:      totalBytes,
		EstimatedTokens: estimateBytes(totalBytes),
		SkippedFiles:    skipped,
	}, nil
}

// ExportToFile 将打包内容原子写入目标文件。
// outputPath 为空时按项目名与格式扩展名在项目目录下生成。
func ExportToFile(result *Result, opts Options, outputPath string) (string, error) {
	if outputPath == "" {
		formatter := GetFormatter(opts.Format)
		name := filepath.Base(opts.ProjectPath)
		outputPath = filepath.Join(opts.ProjectPath, name+"-pack"+formatter.FileExtension())
	}
	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, ".codepack-*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(result.Content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, outputPath); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	return outputPath, nil
}

// isBinary 含 NUL 字节或非法 UTF-8 即视为二进制
func isBinary(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}
	return !utf8.Valid(data)
}

// relativeTo 失败时退回路径基名，保证输出里不出现绝对路径
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(path)
	}
	return helper.StandardizePath(rel)
}
