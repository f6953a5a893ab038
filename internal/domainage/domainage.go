// Package domainage defines the domain-age collaborator used by link
// analysis. Lookup failures are the one deliberately suppressed error class
// in the system: the caller degrades the corresponding rule to "not matched"
// instead of failing the request.
package domainage

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the age of a domain could not be determined.
var ErrUnavailable = errors.New("domain age unavailable")

// Lookup resolves the age of a registrable domain in days. A WHOIS-backed
// implementation can be substituted without touching the analyzers.
type Lookup interface {
	AgeDays(ctx context.Context, domain string) (int, error)
}

// Static always reports the same age. It stands in for a real WHOIS client.
type Static struct {
	Days int
}

func (s Static) AgeDays(_ context.Context, _ string) (int, error) {
	return s.Days, nil
}

// Unavailable always fails. Useful for exercising the suppressed-error path.
type Unavailable struct{}

func (Unavailable) AgeDays(_ context.Context, _ string) (int, error) {
	return 0, ErrUnavailable
}
