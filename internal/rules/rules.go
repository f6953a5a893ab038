// Package rules defines the weighted detection rules and catalogs used by the
// scam analysis engine. Catalogs are compiled assets: built once at startup,
// immutable afterwards, and safe for concurrent use.
package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is a single weighted detection rule. Exactly one predicate is active
// per rule: a keyword set, a compiled regex, or a domain set. Structural
// rules carry no predicate; the orchestrator that owns them decides when
// they fire and looks them up by name.
type Rule struct {
	Name        string
	Weight      int
	Explanation string
	Advice      string

	keywords []string
	pattern  *regexp.Regexp
	domains  map[string]struct{}
}

// NewKeywordRule builds a rule that matches when ANY keyword is a
// case-insensitive substring of the input text.
func NewKeywordRule(name string, weight int, keywords []string, explanation, advice string) Rule {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return Rule{
		Name:        name,
		Weight:      weight,
		Explanation: explanation,
		Advice:      advice,
		keywords:    lowered,
	}
}

// NewRegexRule builds a rule that matches when the pattern finds at least one
// occurrence anywhere in the input text. The pattern is compiled
// case-insensitively. A regex rule never falls back to keywords.
func NewRegexRule(name string, weight int, pattern string, explanation, advice string) Rule {
	return Rule{
		Name:        name,
		Weight:      weight,
		Explanation: explanation,
		Advice:      advice,
		pattern:     regexp.MustCompile("(?i)" + pattern),
	}
}

// NewDomainRule builds a rule that matches when the registrable domain is an
// exact member of the given set.
func NewDomainRule(name string, weight int, domains []string, explanation, advice string) Rule {
	set := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		set[strings.ToLower(d)] = struct{}{}
	}
	return Rule{
		Name:        name,
		Weight:      weight,
		Explanation: explanation,
		Advice:      advice,
		domains:     set,
	}
}

// NewStructuralRule builds a rule with no predicate of its own. The owning
// orchestrator emits its evidence based on a bespoke check (HTTPS scheme,
// domain age, missing contact info, informal language).
func NewStructuralRule(name string, weight int, explanation, advice string) Rule {
	return Rule{
		Name:        name,
		Weight:      weight,
		Explanation: explanation,
		Advice:      advice,
	}
}

// Structural reports whether the rule has no predicate of its own.
func (r Rule) Structural() bool {
	return r.pattern == nil && len(r.keywords) == 0 && len(r.domains) == 0
}

// MatchText evaluates the rule's text predicate. A rule with a regex uses
// only the regex; a keyword rule tests each keyword as a case-insensitive
// substring. Structural and domain rules never match text.
func (r Rule) MatchText(text string) bool {
	if r.pattern != nil {
		return r.pattern.MatchString(text)
	}
	if len(r.keywords) == 0 {
		return false
	}
	lowered := strings.ToLower(text)
	for _, k := range r.keywords {
		if strings.Contains(lowered, k) {
			return true
		}
	}
	return false
}

// MatchDomain reports whether the registrable domain is in the rule's set.
func (r Rule) MatchDomain(domain string) bool {
	if len(r.domains) == 0 {
		return false
	}
	_, ok := r.domains[strings.ToLower(domain)]
	return ok
}

// Catalog is an ordered, name-indexed set of rules for one artifact kind.
// Order is an observable contract: explanations and advice are concatenated
// in catalog order.
type Catalog struct {
	rules  []Rule
	byName map[string]int
}

// NewCatalog builds a catalog from the given rules. It panics on duplicate
// names or non-positive weights; catalogs are static assets, so a bad one is
// a programming error caught at startup.
func NewCatalog(rs ...Rule) *Catalog {
	c := &Catalog{
		rules:  rs,
		byName: make(map[string]int, len(rs)),
	}
	for i, r := range rs {
		if r.Weight <= 0 {
			panic(fmt.Sprintf("rules: rule %q has non-positive weight %d", r.Name, r.Weight))
		}
		if _, dup := c.byName[r.Name]; dup {
			panic(fmt.Sprintf("rules: duplicate rule name %q", r.Name))
		}
		c.byName[r.Name] = i
	}
	return c
}

// Rules returns the rules in catalog order. Callers must not modify the
// returned slice.
func (c *Catalog) Rules() []Rule {
	return c.rules
}

// ByName returns the rule with the given name. Structural rules are always
// looked up this way, never by position.
func (c *Catalog) ByName(name string) (Rule, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i], true
}

// Len returns the number of rules in the catalog.
func (c *Catalog) Len() int {
	return len(c.rules)
}
