package cloudflare

import (
	"fmt"
	"strings"

	"github.com/lite-lake/cfman/internal/domain"
)

// CommunicationError is a transport-level failure: timeout, DNS failure,
// refused connection. The request never produced an HTTP response.
type CommunicationError struct {
	Op    string
	Cause error
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("%s: communication error with Cloudflare: %v", e.Op, e.Cause)
}

func (e *CommunicationError) Unwrap() error {
	return e.Cause
}

// HTTPError is a non-success HTTP status. Body carries the raw response for
// the caller; it has already been logged.
type HTTPError struct {
	Op         string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: HTTP error %d from Cloudflare", e.Op, e.StatusCode)
}

// APIError is an HTTP success whose envelope did not report success. Errors
// holds the provider-reported error list when present.
type APIError struct {
	Op     string
	Errors []ResponseInfo
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("%s: Cloudflare reported failure", e.Op)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, info := range e.Errors {
		parts = append(parts, fmt.Sprintf("%d %s", info.Code, info.Message))
	}
	return fmt.Sprintf("%s: Cloudflare reported failure: %s", e.Op, strings.Join(parts, "; "))
}

// AmbiguousMatchError refuses to pick between several records that share the
// requested name. It unwraps to domain.ErrAmbiguousRecord.
type AmbiguousMatchError struct {
	Name  string
	Count int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%d DNS records found for %s; refine the query", e.Count, e.Name)
}

func (e *AmbiguousMatchError) Unwrap() error {
	return domain.ErrAmbiguousRecord
}
