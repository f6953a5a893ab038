package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer creates a configured MCP server with all JobShield tools registered.
func NewMCPServer(cfg Config) *server.MCPServer {
	s := server.NewMCPServer("jobshield", "0.1.0")
	client := NewClient(cfg)
	h := NewHandlers(client)

	s.AddTool(ToolAnalyzeMessage, h.HandleAnalyzeMessage)
	s.AddTool(ToolAnalyzeLink, h.HandleAnalyzeLink)
	s.AddTool(ToolAnalyzeEmail, h.HandleAnalyzeEmail)

	return s
}
