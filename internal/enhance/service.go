// Package enhance wraps the optional LLM text-enhancement service and
// applies it to extracted thesis content. Every remote failure is absorbed:
// the original text is kept and the pipeline continues.
package enhance

import (
	"context"
	"errors"
	"fmt"
)

// Kind selects the enhancement operation.
type Kind string

const (
	KindAbstract Kind = "abstract"
	KindKeywords Kind = "keywords"
	KindSummary  Kind = "summary"
)

// Service is the enhancement-service contract. maxWords bounds the output
// length (for KindKeywords it is the keyword count). Implementations may
// fail for network/auth/quota reasons; callers treat failure as "keep the
// input text" and continue.
type Service interface {
	Enhance(ctx context.Context, text string, kind Kind, language string, maxWords int) (string, error)
}

// ErrDisabled is returned by the Disabled service handle.
var ErrDisabled = errors.New("enhancement disabled")

// Disabled is the no-op service handle injected when AI enhancement is
// switched off or no API key is configured. The enhancer treats its error
// like any other failure, leaving content untouched.
type Disabled struct{}

func (Disabled) Enhance(context.Context, string, Kind, string, int) (string, error) {
	return "", ErrDisabled
}

// RetryableError indicates a transient remote failure worth one more attempt.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
