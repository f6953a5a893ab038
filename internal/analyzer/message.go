package analyzer

import (
	"context"

	"github.com/jobshield/jobshield/internal/rules"
	"github.com/jobshield/jobshield/internal/traces"
)

// Message analyzes raw message text against the message catalog.
type Message struct {
	catalog *rules.Catalog
}

// NewMessage creates a message analyzer over the given catalog.
func NewMessage(catalog *rules.Catalog) *Message {
	return &Message{catalog: catalog}
}

// Analyze evaluates every rule in the catalog once and aggregates the
// matches. Empty text is valid input and yields zero matches, never an
// error.
func (a *Message) Analyze(ctx context.Context, text string) *Result {
	_, span := traces.StartSpan(ctx, "analyzer.message", traces.ArtifactKind("message"))
	defer span.End()

	var evidence []rules.Rule
	for _, r := range a.catalog.Rules() {
		if r.MatchText(text) {
			evidence = append(evidence, r)
		}
	}

	result := aggregate(evidence)
	span.SetAttributes(traces.RiskLevel(result.RiskLevel), traces.RiskScore(result.RiskScore))
	return result
}
