package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterPackTools 将扫描与打包相关工具注册到 MCP 服务器
func RegisterPackTools(s *server.MCPServer) {
	if s == nil {
		return
	}
	toolHandlers = make(map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error))

	// scan_project
	toolScan := mcp.NewTool(
		"scan_project",
		mcp.WithDescription("扫描项目目录，返回项目类型、文件树与元数据"),
		mcp.WithString("path", mcp.Required(), mcp.Description("项目根目录的绝对路径")),
		mcp.WithString("excludes", mcp.Description("额外排除规则（逗号分隔，支持 *.ext 形式）")),
	)
	s.AddTool(toolScan, scanProject)
	toolHandlers["scan_project"] = scanProject

	// pack_files
	toolPack := mcp.NewTool(
		"pack_files",
		mcp.WithDescription("将项目源文件打包为单个文本文档"),
		mcp.WithString("path", mcp.Required(), mcp.Description("项目根目录的绝对路径")),
		mcp.WithString("format", mcp.Description("输出格式: plain/markdown/xml，默认 plain")),
		mcp.WithString("files", mcp.Description("要打包的相对路径列表（逗号分隔），缺省打包全部扫描结果")),
		mcp.WithString("instruction", mcp.Description("置于文件正文之前的审阅指令，可选")),
		mcp.WithNumber("maxBytes", mcp.Description("单文件大小上限（字节），默认 1MiB")),
		mcp.WithBoolean("redact", mcp.Description("是否对文件内容执行密钥脱敏，默认 false")),
		mcp.WithBoolean("diffs", mcp.Description("是否附加 Git 工作区差异，默认 false")),
	)
	s.AddTool(toolPack, packFiles)
	toolHandlers["pack_files"] = packFiles

	// estimate_tokens
	toolTokens := mcp.NewTool(
		"estimate_tokens",
		mcp.WithDescription("估算打包选中文件所需的 token 数"),
		mcp.WithString("path", mcp.Required(), mcp.Description("项目根目录的绝对路径")),
		mcp.WithString("files", mcp.Description("相对路径列表（逗号分隔），缺省统计全部扫描结果")),
	)
	s.AddTool(toolTokens, estimateTokens)
	toolHandlers["estimate_tokens"] = estimateTokens

	// project_stats
	toolStats := mcp.NewTool(
		"project_stats",
		mcp.WithDescription("按语言统计项目的文件数、字节数与行数"),
		mcp.WithString("path", mcp.Required(), mcp.Description("项目根目录的绝对路径")),
	)
	s.AddTool(toolStats, projectStats)
	toolHandlers["project_stats"] = projectStats

	// scan_secrets
	toolSecrets := mcp.NewTool(
		"scan_secrets",
		mcp.WithDescription("扫描项目源文件中的疑似密钥并返回命中位置"),
		mcp.WithString("path", mcp.Required(), mcp.Description("项目根目录的绝对路径")),
		mcp.WithString("files", mcp.Description("相对路径列表（逗号分隔），缺省扫描全部扫描结果")),
	)
	s.AddTool(toolSecrets, scanSecrets)
	toolHandlers["scan_secrets"] = scanSecrets
}
