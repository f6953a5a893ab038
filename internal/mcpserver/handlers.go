package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers holds the handler functions for each MCP tool.
type Handlers struct {
	client *Client
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(client *Client) *Handlers {
	return &Handlers{client: client}
}

// HandleAnalyzeMessage runs message analysis.
func (h *Handlers) HandleAnalyzeMessage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("message_text", "")
	if text == "" {
		return mcp.NewToolResultError("message_text is required"), nil
	}

	result, err := h.client.AnalyzeMessage(ctx, text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Message analysis failed: %v", err)), nil
	}
	return mcp.NewToolResultText(formatResult("Message", result)), nil
}

// HandleAnalyzeLink runs link analysis.
func (h *Handlers) HandleAnalyzeLink(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url := req.GetString("url", "")
	if url == "" {
		return mcp.NewToolResultError("url is required"), nil
	}

	result, err := h.client.AnalyzeLink(ctx, url)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Link analysis failed: %v", err)), nil
	}
	return mcp.NewToolResultText(formatResult("Link", result)), nil
}

// HandleAnalyzeEmail runs email analysis.
func (h *Handlers) HandleAnalyzeEmail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	emailText := req.GetString("email_text", "")
	if emailText == "" {
		return mcp.NewToolResultError("email_text is required"), nil
	}
	sender := req.GetString("sender_email", "")
	if sender == "" {
		return mcp.NewToolResultError("sender_email is required"), nil
	}

	result, err := h.client.AnalyzeEmail(ctx, emailText, sender)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Email analysis failed: %v", err)), nil
	}
	return mcp.NewToolResultText(formatResult("Email", result)), nil
}

// formatResult renders a verdict as readable text for the LLM.
func formatResult(kind string, r *AnalysisResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s risk: %s (score %d/100)\n", kind, r.RiskLevel, r.RiskScore)

	if len(r.DetectedPatterns) == 0 {
		sb.WriteString("Detected patterns: none\n")
	} else {
		fmt.Fprintf(&sb, "Detected patterns: %s\n", strings.Join(r.DetectedPatterns, ", "))
	}

	fmt.Fprintf(&sb, "\n%s\n\nAdvice: %s", r.Explanation, r.Advice)
	return sb.String()
}
