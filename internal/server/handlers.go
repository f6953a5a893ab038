package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobshield/jobshield/internal/analyzer"
	"github.com/jobshield/jobshield/internal/logging"
	"github.com/jobshield/jobshield/internal/metrics"
	"github.com/jobshield/jobshield/internal/validation"
)

// analyzeMessage handles POST /v1/analyze-message
func (s *Server) analyzeMessage(c *gin.Context) {
	var req struct {
		MessageText string `json:"message_text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "message_text is required",
		})
		return
	}

	text := validation.SanitizeString(req.MessageText, validation.MaxStringLength)
	result := s.message.Analyze(c.Request.Context(), text)

	metrics.AnalysesTotal.WithLabelValues("message", result.RiskLevel).Inc()
	c.JSON(http.StatusOK, result)
}

// analyzeLink handles POST /v1/analyze-link
func (s *Server) analyzeLink(c *gin.Context) {
	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "url is required",
		})
		return
	}

	if !validation.IsValidHTTPURL(req.URL) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "url must be a valid absolute http(s) URL",
		})
		return
	}

	result, err := s.link.Analyze(c.Request.Context(), req.URL)
	if err != nil {
		s.renderLinkError(c, req.URL, err)
		return
	}

	metrics.AnalysesTotal.WithLabelValues("link", result.RiskLevel).Inc()
	c.JSON(http.StatusOK, result)
}

func (s *Server) renderLinkError(c *gin.Context, url string, err error) {
	ctx := c.Request.Context()

	var fetchErr *analyzer.FetchError
	var valErr *analyzer.ValidationError
	switch {
	case errors.As(err, &fetchErr):
		logging.L(ctx).Warn("link fetch failed", "url", url, "error", fetchErr.Err)
		metrics.AnalysisFailuresTotal.WithLabelValues("link", "fetch").Inc()
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "fetch_failed",
			"message": "The page could not be retrieved",
		})
	case errors.As(err, &valErr):
		metrics.AnalysisFailuresTotal.WithLabelValues("link", "validation").Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": valErr.Message,
		})
	default:
		logging.L(ctx).Error("link analysis failed", "url", url, "error", err)
		metrics.AnalysisFailuresTotal.WithLabelValues("link", "internal").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "unprocessable",
			"message": "The link could not be analyzed",
		})
	}
}

// analyzeEmail handles POST /v1/analyze-email
func (s *Server) analyzeEmail(c *gin.Context) {
	var req struct {
		EmailText   string `json:"email_text" binding:"required"`
		SenderEmail string `json:"sender_email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "email_text and a well-formed sender_email are required",
		})
		return
	}

	body := validation.SanitizeString(req.EmailText, validation.MaxStringLength)
	result, err := s.email.Analyze(c.Request.Context(), body, req.SenderEmail)
	if err != nil {
		logging.L(c.Request.Context()).Error("email analysis failed", "error", err)
		metrics.AnalysisFailuresTotal.WithLabelValues("email", "internal").Inc()
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "unprocessable",
			"message": "The email could not be analyzed",
		})
		return
	}

	metrics.AnalysesTotal.WithLabelValues("email", result.RiskLevel).Inc()
	c.JSON(http.StatusOK, result)
}

// -----------------------------------------------------------------------------
// Health & info
// -----------------------------------------------------------------------------

func (s *Server) healthHandler(c *gin.Context) {
	status := "healthy"
	httpStatus := http.StatusOK
	if !s.healthy.Load() {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, gin.H{
		"status":    status,
		"version":   "0.1.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) livenessHandler(c *gin.Context) {
	if !s.healthy.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (s *Server) infoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "JobShield",
		"description": "Employment scam risk analysis for messages, emails, and links",
		"version":     "0.1.0",
		"endpoints": []string{
			"POST /v1/analyze-message",
			"POST /v1/analyze-link",
			"POST /v1/analyze-email",
		},
	})
}
