// Package mcpserver exposes the JobShield analysis operations as MCP tools
// so LLM clients can screen suspicious job offers directly.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config holds the configuration for connecting to the JobShield API.
type Config struct {
	APIURL string // Base URL, e.g. "http://localhost:8080"
}

// AnalysisResult mirrors the API's response shape.
type AnalysisResult struct {
	RiskLevel        string   `json:"risk_level"`
	RiskScore        int      `json:"risk_score"`
	DetectedPatterns []string `json:"detected_patterns"`
	Explanation      string   `json:"explanation"`
	Advice           string   `json:"advice"`
}

// Client is a pure HTTP client for the JobShield API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a new client for the JobShield API.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// apiError represents an error response from the API.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// doAnalyze posts a request body to an analysis endpoint and decodes the verdict.
func (c *Client) doAnalyze(ctx context.Context, path string, body any) (*AnalysisResult, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("API error (%d): %s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result AnalysisResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}

// AnalyzeMessage checks a free-text message for scam indicators.
func (c *Client) AnalyzeMessage(ctx context.Context, messageText string) (*AnalysisResult, error) {
	return c.doAnalyze(ctx, "/v1/analyze-message", map[string]string{"message_text": messageText})
}

// AnalyzeLink checks a job posting URL for scam indicators.
func (c *Client) AnalyzeLink(ctx context.Context, url string) (*AnalysisResult, error) {
	return c.doAnalyze(ctx, "/v1/analyze-link", map[string]string{"url": url})
}

// AnalyzeEmail checks an email body and sender address for scam indicators.
func (c *Client) AnalyzeEmail(ctx context.Context, emailText, senderEmail string) (*AnalysisResult, error) {
	return c.doAnalyze(ctx, "/v1/analyze-email", map[string]string{
		"email_text":   emailText,
		"sender_email": senderEmail,
	})
}
