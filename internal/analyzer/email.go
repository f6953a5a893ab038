package analyzer

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/jobshield/jobshield/internal/rules"
	"github.com/jobshield/jobshield/internal/traces"
)

// informalTokens are the fixed informal-language markers for the style
// check. Matched as case-insensitive substrings; the first hit wins and the
// style evidence is added exactly once.
var informalTokens = []string{"kindley", "ur", "pls"}

// Email analyzes an email body plus sender address against the email
// catalog.
type Email struct {
	catalog *rules.Catalog
}

// NewEmail creates an email analyzer over the given catalog.
func NewEmail(catalog *rules.Catalog) *Email {
	return &Email{catalog: catalog}
}

// Analyze checks the sender's registrable domain against the free-email
// set, runs every keyword rule against the body, and applies the style
// check. The boundary validates that both inputs are present and the sender
// is a well-formed address; anything that still goes wrong here surfaces as
// *UnprocessableError.
func (a *Email) Analyze(ctx context.Context, body, sender string) (*Result, error) {
	_, span := traces.StartSpan(ctx, "analyzer.email", traces.ArtifactKind("email"))
	defer span.End()

	domain, err := senderDomain(sender)
	if err != nil {
		return nil, &UnprocessableError{Err: err}
	}

	var evidence []rules.Rule
	for _, r := range a.catalog.Rules() {
		switch {
		case r.Structural():
			// The style rule is applied below, by name.
		case r.MatchDomain(domain) || r.MatchText(body):
			evidence = append(evidence, r)
		}
	}

	if style, ok := a.catalog.ByName(rules.RulePoorGrammar); ok && hasInformalLanguage(body) {
		evidence = append(evidence, style)
	}

	result := aggregate(evidence)
	// Detected patterns are reported as a set; first-seen order keeps the
	// output deterministic.
	result.DetectedPatterns = dedupeFirstSeen(result.DetectedPatterns)
	span.SetAttributes(traces.RiskLevel(result.RiskLevel), traces.RiskScore(result.RiskScore))
	return result, nil
}

// senderDomain extracts the registrable domain (second-level + public
// suffix) from an email address.
func senderDomain(sender string) (string, error) {
	at := strings.LastIndex(sender, "@")
	if at < 0 || at == len(sender)-1 {
		return "", fmt.Errorf("sender %q has no domain part", sender)
	}
	host := strings.ToLower(strings.TrimSpace(sender[at+1:]))
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", fmt.Errorf("derive registrable domain of %q: %w", host, err)
	}
	return domain, nil
}

func hasInformalLanguage(body string) bool {
	lowered := strings.ToLower(body)
	for _, tok := range informalTokens {
		if strings.Contains(lowered, tok) {
			return true
		}
	}
	return false
}

func dedupeFirstSeen(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := names[:0]
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
