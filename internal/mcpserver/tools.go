package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the JobShield MCP server.
// Descriptions are what the LLM reads to decide which tool to use.

var ToolAnalyzeMessage = mcp.NewTool("analyze_message",
	mcp.WithDescription(
		"Analyze a free-text message (SMS, chat, job ad) for employment scam indicators. "+
			"Returns a risk score (0-100), risk level (LOW/MEDIUM/HIGH), the detection "+
			"rules that matched, and plain-language advice."),
	mcp.WithString("message_text",
		mcp.Required(),
		mcp.Description("The full text of the message to analyze")),
)

var ToolAnalyzeLink = mcp.NewTool("analyze_link",
	mcp.WithDescription(
		"Fetch a job posting URL and analyze the page for employment scam indicators "+
			"(missing HTTPS, newly registered domain, payment instructions, missing contact info, "+
			"unrealistic promises). Returns a risk score, risk level, matched rules, and advice. "+
			"Fails if the page cannot be retrieved."),
	mcp.WithString("url",
		mcp.Required(),
		mcp.Description("Absolute http(s) URL of the job posting to analyze")),
)

var ToolAnalyzeEmail = mcp.NewTool("analyze_email",
	mcp.WithDescription(
		"Analyze a recruitment email for employment scam indicators, including whether the "+
			"sender uses a free email domain. Returns a risk score, risk level, matched rules, "+
			"and advice."),
	mcp.WithString("email_text",
		mcp.Required(),
		mcp.Description("The full body text of the email")),
	mcp.WithString("sender_email",
		mcp.Required(),
		mcp.Description("The sender's email address, e.g. 'hr@example.com'")),
)
