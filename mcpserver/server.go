package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sjzsdu/codepack/share"
)

var toolHandlers map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// NewCodepackMCPServer 创建 MCP 服务器并注册全部打包工具
func NewCodepackMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		share.BUILDNAME,
		share.VERSION,
		server.WithToolCapabilities(true),
	)
	RegisterPackTools(s)
	return s
}
