package analyzer

import "fmt"

// The error taxonomy is deliberately asymmetric: page-fetch failures abort
// the whole analysis and propagate as *FetchError, while domain-age lookup
// failures are absorbed into "no evidence" and never surface to the caller.

// ValidationError reports malformed or missing caller input. The analysis
// never runs; the boundary maps it to a client error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FetchError reports that the target page could not be retrieved. The
// analysis is aborted entirely; the boundary maps it to a
// service-unavailable error.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// UnprocessableError reports any other fault during email or link analysis.
// The boundary maps it to an unprocessable-entity error.
type UnprocessableError struct {
	Err error
}

func (e *UnprocessableError) Error() string {
	return fmt.Sprintf("analysis failed: %v", e.Err)
}

func (e *UnprocessableError) Unwrap() error {
	return e.Err
}
