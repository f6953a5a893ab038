package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobshield/jobshield/internal/rules"
)

func ruleWeighing(w int) rules.Rule {
	return rules.NewKeywordRule("w", w, []string{"x"}, "explain", "advise")
}

func TestLevelForBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, RiskLow},
		{30, RiskLow},
		{31, RiskMedium},
		{60, RiskMedium},
		{61, RiskHigh},
		{100, RiskHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.score), "score %d", tt.score)
	}
}

func TestAggregateEmptyEvidence(t *testing.T) {
	r := aggregate(nil)

	assert.Equal(t, RiskLow, r.RiskLevel)
	assert.Zero(t, r.RiskScore)
	assert.NotNil(t, r.DetectedPatterns, "must serialize as [] not null")
	assert.Empty(t, r.DetectedPatterns)
	assert.Equal(t, NoRiskExplanation, r.Explanation)
	assert.Equal(t, DefaultAdvice, r.Advice)
}

func TestAggregateCapsScore(t *testing.T) {
	r := aggregate([]rules.Rule{ruleWeighing(50), ruleWeighing(50), ruleWeighing(50)})

	assert.Equal(t, MaxScore, r.RiskScore)
	assert.Equal(t, RiskHigh, r.RiskLevel)
}

func TestAggregateIsMonotonic(t *testing.T) {
	evidence := []rules.Rule{ruleWeighing(10), ruleWeighing(25), ruleWeighing(40)}

	prev := 0
	for i := range evidence {
		r := aggregate(evidence[:i+1])
		assert.GreaterOrEqual(t, r.RiskScore, prev, "adding evidence must never lower the score")
		prev = r.RiskScore
	}
}

func TestAggregateJoinsInEvidenceOrder(t *testing.T) {
	a := rules.NewKeywordRule("First", 10, []string{"x"}, "First explanation.", "First advice.")
	b := rules.NewKeywordRule("Second", 20, []string{"y"}, "Second explanation.", "Second advice.")

	r := aggregate([]rules.Rule{a, b})

	assert.Equal(t, 30, r.RiskScore)
	assert.Equal(t, RiskLow, r.RiskLevel)
	assert.Equal(t, []string{"First", "Second"}, r.DetectedPatterns)
	assert.Equal(t, "First explanation. Second explanation.", r.Explanation)
	assert.Equal(t, "First advice. Second advice.", r.Advice)
}
