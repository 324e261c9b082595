package mcpserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/sjzsdu/codepack/helper"
	"github.com/sjzsdu/codepack/project"
	"github.com/sjzsdu/codepack/project/git"
	"github.com/sjzsdu/codepack/project/pack"
	"github.com/sjzsdu/codepack/project/plugin"
	"github.com/sjzsdu/codepack/project/security"
	"github.com/sjzsdu/codepack/project/stats"
	"github.com/sjzsdu/codepack/share"
)

// requireProjectPath 取出并校验 path 参数
func requireProjectPath(req mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	path, err := req.RequireString("path")
	if err != nil {
		return "", mcp.NewToolResultError("missing or invalid path parameter: required argument \"path\" not found")
	}
	info, statErr := os.Stat(path)
	if statErr != nil || !info.IsDir() {
		return "", mcp.NewToolResultError(fmt.Sprintf("目录不存在: %s", path))
	}
	return path, nil
}

// splitList 逗号分隔参数转切片，空串返回 nil
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// scanAndResolve 扫描项目，files 为空时返回全部文件的绝对路径
func scanAndResolve(root, files string) (*project.ScanResult, []string, error) {
	scanner := &project.Scanner{Plugins: plugin.Load()}
	result, err := scanner.Scan(root)
	if err != nil {
		return nil, nil, err
	}
	rels := splitList(files)
	if len(rels) == 0 {
		return result, result.Tree.FilePaths(), nil
	}
	paths := make([]string, 0, len(rels))
	for _, rel := range rels {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(rel)))
	}
	return result, paths, nil
}

func scanProject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, errRes := requireProjectPath(req)
	if errRes != nil {
		return errRes, nil
	}
	scanner := &project.Scanner{
		Plugins:      plugin.Load(),
		UserExcludes: splitList(req.GetString("excludes", "")),
	}
	result, err := scanner.Scan(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(helper.ToJSON(result)), nil
}

func packFiles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, errRes := requireProjectPath(req)
	if errRes != nil {
		return errRes, nil
	}
	result, paths, err := scanAndResolve(root, req.GetString("files", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	opts := pack.Options{
		ProjectPath:  root,
		Paths:        paths,
		Metadata:     result.Metadata,
		Format:       pack.Format(req.GetString("format", string(pack.FormatPlain))),
		MaxFileBytes: int64(req.GetInt("maxBytes", share.DEFAULT_MAX_FILE_BYTES)),
		Instruction:  req.GetString("instruction", ""),
		Redact:       req.GetBool("redact", false),
	}
	if req.GetBool("diffs", false) {
		opts.Diffs = git.Diffs(root)
	}
	packed, err := pack.Pack(opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(packed.Content), nil
}

func estimateTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, errRes := requireProjectPath(req)
	if errRes != nil {
		return errRes, nil
	}
	_, paths, err := scanAndResolve(root, req.GetString("files", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	est := pack.EstimateTokens(paths)
	return mcp.NewToolResultText(helper.ToJSON(map[string]any{
		"files":       len(paths),
		"total_bytes": est.TotalBytes,
		"tokens":      est.Tokens,
		"display":     pack.FormatTokens(est.Tokens),
	})), nil
}

func projectStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, errRes := requireProjectPath(req)
	if errRes != nil {
		return errRes, nil
	}
	result, paths, err := scanAndResolve(root, "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	computed := stats.Compute(paths)
	return mcp.NewToolResultText(helper.ToJSON(map[string]any{
		"project_type": result.ProjectType,
		"metadata":     result.Metadata,
		"stats":        computed,
	})), nil
}

func scanSecrets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, errRes := requireProjectPath(req)
	if errRes != nil {
		return errRes, nil
	}
	_, paths, err := scanAndResolve(root, req.GetString("files", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	type fileMatches struct {
		Path    string           `json:"path"`
		Matches []security.Match `json:"matches"`
	}
	var found []fileMatches
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		matches := security.ScanContent(string(data))
		if len(matches) == 0 {
			continue
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		found = append(found, fileMatches{Path: filepath.ToSlash(rel), Matches: matches})
	}
	return mcp.NewToolResultText(helper.ToJSON(map[string]any{
		"files_scanned": len(paths),
		"findings":      found,
	})), nil
}
