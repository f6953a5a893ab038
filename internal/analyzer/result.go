// Package analyzer composes the rule catalogs into per-artifact analysis
// pipelines: message, email, and link. Each analyzer normalizes its input,
// evaluates every rule once, and aggregates the matched rules into a single
// risk verdict.
package analyzer

import (
	"strings"

	"github.com/jobshield/jobshield/internal/rules"
)

// Risk tiers derived from the capped score.
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// Sentinel texts returned when no rules match.
const (
	NoRiskExplanation = "No significant risk patterns were detected."
	DefaultAdvice     = "Always remain cautious and verify employer details."
)

// MaxScore caps the aggregate risk score.
const MaxScore = 100

// Result is the normalized verdict for one analysis. Instances are created
// fresh per request and owned by the caller.
type Result struct {
	RiskLevel        string   `json:"risk_level"`
	RiskScore        int      `json:"risk_score"`
	DetectedPatterns []string `json:"detected_patterns"`
	Explanation      string   `json:"explanation"`
	Advice           string   `json:"advice"`
}

// levelFor maps a capped score to a risk tier. Boundaries are
// inclusive-upper: 30 is LOW, 60 is MEDIUM, 61 is HIGH.
func levelFor(score int) string {
	switch {
	case score <= 30:
		return RiskLow
	case score <= 60:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// aggregate sums the matched rules' weights, caps the total, maps it to a
// tier, and joins explanations and advice in evidence order.
func aggregate(evidence []rules.Rule) *Result {
	score := 0
	patterns := make([]string, 0, len(evidence))
	explanations := make([]string, 0, len(evidence))
	advices := make([]string, 0, len(evidence))

	for _, r := range evidence {
		score += r.Weight
		patterns = append(patterns, r.Name)
		explanations = append(explanations, r.Explanation)
		advices = append(advices, r.Advice)
	}
	if score > MaxScore {
		score = MaxScore
	}

	explanation := NoRiskExplanation
	if len(explanations) > 0 {
		explanation = strings.Join(explanations, " ")
	}
	advice := DefaultAdvice
	if len(advices) > 0 {
		advice = strings.Join(advices, " ")
	}

	return &Result{
		RiskLevel:        levelFor(score),
		RiskScore:        score,
		DetectedPatterns: patterns,
		Explanation:      explanation,
		Advice:           advice,
	}
}
