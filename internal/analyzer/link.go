package analyzer

import (
	"context"
	"net/url"
	"regexp"

	"golang.org/x/net/publicsuffix"

	"github.com/jobshield/jobshield/internal/domainage"
	"github.com/jobshield/jobshield/internal/htmltext"
	"github.com/jobshield/jobshield/internal/logging"
	"github.com/jobshield/jobshield/internal/rules"
	"github.com/jobshield/jobshield/internal/traces"
)

// contactPattern is the word-boundary check behind the No Contact Info rule.
var contactPattern = regexp.MustCompile(`(?i)\b(contact|address|phone)\b`)

// Fetcher retrieves the raw body of a page. Errors from a Fetcher are fatal
// to the analysis and propagate to the caller as *FetchError.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Link analyzes a URL: transport checks, page retrieval, and content rules.
type Link struct {
	network    *rules.Catalog
	content    *rules.Catalog
	fetcher    Fetcher
	domainAge  domainage.Lookup
	minAgeDays int
}

// NewLink creates a link analyzer. minAgeDays is the threshold below which
// the Newly Registered Domain rule fires.
func NewLink(network, content *rules.Catalog, fetcher Fetcher, age domainage.Lookup, minAgeDays int) *Link {
	return &Link{
		network:    network,
		content:    content,
		fetcher:    fetcher,
		domainAge:  age,
		minAgeDays: minAgeDays,
	}
}

// Analyze runs the link pipeline in fixed order: HTTPS check, fetch, text
// extraction, domain-age check, content keyword rules, contact-info check,
// aggregation. The fetch is the only fatal step; a domain-age failure skips
// that single rule and nothing else.
func (a *Link) Analyze(ctx context.Context, rawURL string) (*Result, error) {
	ctx, span := traces.StartSpan(ctx, "analyzer.link", traces.ArtifactKind("link"))
	defer span.End()

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &ValidationError{Field: "url", Message: "must be a valid URL"}
	}
	span.SetAttributes(traces.Host(u.Hostname()))

	var evidence []rules.Rule

	if u.Scheme != "https" {
		if r, ok := a.network.ByName(rules.RuleNoHTTPS); ok {
			evidence = append(evidence, r)
		}
	}

	body, err := a.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}

	text := htmltext.Extract(body)

	if r, ok := a.network.ByName(rules.RuleNewDomain); ok && a.domainIsNew(ctx, u.Hostname()) {
		evidence = append(evidence, r)
	}

	for _, r := range a.content.Rules() {
		if r.Structural() {
			continue
		}
		if r.MatchText(text) {
			evidence = append(evidence, r)
		}
	}

	if r, ok := a.content.ByName(rules.RuleNoContactInfo); ok && !contactPattern.MatchString(text) {
		evidence = append(evidence, r)
	}

	result := aggregate(evidence)
	span.SetAttributes(traces.RiskLevel(result.RiskLevel), traces.RiskScore(result.RiskScore))
	return result, nil
}

// domainIsNew resolves the registrable domain and asks the age collaborator.
// Any failure along the way is absorbed: the rule simply does not fire.
func (a *Link) domainIsNew(ctx context.Context, host string) bool {
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		logging.L(ctx).Debug("skipping domain age check", "host", host, "error", err)
		return false
	}
	days, err := a.domainAge.AgeDays(ctx, domain)
	if err != nil {
		logging.L(ctx).Debug("domain age lookup failed", "domain", domain, "error", err)
		return false
	}
	return days < a.minAgeDays
}
