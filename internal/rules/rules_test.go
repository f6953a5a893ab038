package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogsAreWellFormed(t *testing.T) {
	catalogs := map[string]*Catalog{
		"message":      Message(),
		"email":        Email(),
		"link-network": LinkNetwork(),
		"link-content": LinkContent(),
	}

	for name, c := range catalogs {
		t.Run(name, func(t *testing.T) {
			require.NotZero(t, c.Len())
			seen := make(map[string]bool)
			for _, r := range c.Rules() {
				assert.Positive(t, r.Weight, "rule %q", r.Name)
				assert.NotEmpty(t, r.Explanation, "rule %q", r.Name)
				assert.NotEmpty(t, r.Advice, "rule %q", r.Name)
				assert.False(t, seen[r.Name], "duplicate rule %q", r.Name)
				seen[r.Name] = true
			}
		})
	}
}

func TestCatalogByName(t *testing.T) {
	c := LinkNetwork()

	r, ok := c.ByName(RuleNoHTTPS)
	require.True(t, ok)
	assert.Equal(t, 20, r.Weight)
	assert.True(t, r.Structural())

	_, ok = c.ByName("nonexistent")
	assert.False(t, ok)
}

func TestNewCatalogPanicsOnDuplicateName(t *testing.T) {
	assert.Panics(t, func() {
		NewCatalog(
			NewStructuralRule("X", 10, "e", "a"),
			NewStructuralRule("X", 20, "e", "a"),
		)
	})
}

func TestNewCatalogPanicsOnNonPositiveWeight(t *testing.T) {
	assert.Panics(t, func() {
		NewCatalog(NewStructuralRule("X", 0, "e", "a"))
	})
}

func TestKeywordMatchIsCaseInsensitive(t *testing.T) {
	r := NewKeywordRule("Payment Request", 50, []string{"payment", "KES"}, "e", "a")

	tests := []struct {
		text string
		want bool
	}{
		{"send your PAYMENT today", true},
		{"amount is kes 1000", true},
		{"we offer a salary", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.MatchText(tt.text), "text %q", tt.text)
	}
}

func TestRegexRuleIgnoresKeywordPath(t *testing.T) {
	// A regex rule uses only the regex: the word-boundary pattern does not
	// fire on substrings the way a keyword test would.
	r := NewRegexRule("Off-Platform Communication", 30, `\b(whatsapp|telegram)\b`, "e", "a")

	assert.True(t, r.MatchText("Message me on WhatsApp now"))
	assert.True(t, r.MatchText("join our TELEGRAM group"))
	assert.False(t, r.MatchText("whatsappian protocols")) // no word boundary
}

func TestFreeEmailRecruiterRegex(t *testing.T) {
	c := Message()
	r, ok := c.ByName("Free Email Recruiter")
	require.True(t, ok)

	assert.True(t, r.MatchText("reply to recruiter.jobs@gmail.com for details"))
	assert.True(t, r.MatchText("contact hr@yahoo.com"))
	assert.False(t, r.MatchText("contact hr@techcorp.com"))
}

func TestDomainMatch(t *testing.T) {
	r := NewDomainRule("Free Email Domain", 40, []string{"gmail.com", "aol.com"}, "e", "a")

	assert.True(t, r.MatchDomain("gmail.com"))
	assert.True(t, r.MatchDomain("GMAIL.com"))
	assert.False(t, r.MatchDomain("techcorp.com"))
	assert.False(t, r.MatchText("gmail.com"), "domain rules never match text")
}

func TestStructuralRuleNeverMatches(t *testing.T) {
	r := NewStructuralRule("No Contact Info", 25, "e", "a")
	assert.True(t, r.Structural())
	assert.False(t, r.MatchText("contact us"))
	assert.False(t, r.MatchDomain("example.com"))
}
