package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/sjzsdu/codepack/lang"
	"github.com/sjzsdu/codepack/mcpserver"
)

var (
	mcpTransport string
	mcpPortFlag  string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: lang.T("Start the MCP server"),
	Long:  lang.T("Expose scan, pack and estimate operations as MCP tools"),
	Run:   runMCP,
}

func init() {
	mcpCmd.Flags().StringVarP(&mcpTransport, "transport", "t", "", lang.T("Transport: stdio (default), http or sse"))
	mcpCmd.Flags().StringVarP(&mcpPortFlag, "port", "p", "8080", lang.T("Port for http/sse transport"))
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) {
	mcpSrv := mcpserver.NewCodepackMCPServer()

	transport := mcpTransport
	if transport == "" {
		transport = os.Getenv("MCP_TRANSPORT")
	}
	port := mcpPortFlag
	if envPort := os.Getenv("MCP_PORT"); envPort != "" {
		port = envPort
	}

	switch transport {
	case "http":
		fmt.Printf("%s: http://localhost:%s\n", lang.T("MCP server listening"), port)
		httpServer := server.NewStreamableHTTPServer(mcpSrv)
		if err := httpServer.Start(":" + port); err != nil {
			log.Fatalf("%s: %v", lang.T("server failed"), err)
		}
	case "sse":
		fmt.Printf("%s: http://localhost:%s\n", lang.T("MCP server listening"), port)
		sseServer := server.NewSSEServer(mcpSrv)
		if err := sseServer.Start(":" + port); err != nil {
			log.Fatalf("%s: %v", lang.T("server failed"), err)
		}
	default:
		fmt.Println(lang.T("MCP server on stdio, waiting for client"))
		if err := server.ServeStdio(mcpSrv); err != nil {
			log.Fatalf("%s: %v", lang.T("server failed"), err)
		}
	}
}
