package enhance

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/benyaminbatau/journal-app/internal/thesis"
)

// Word budgets for the journal-article sections.
const (
	abstractMaxWords    = 250
	keywordCount        = 5
	methodologyMaxWords = 300
	resultsMaxWords     = 400
	conclusionsMaxWords = 200
)

// Enhancer applies the enhancement service to extracted thesis content.
// The service handle is injected at construction; a Disabled handle turns
// the whole pass into a no-op. timeout bounds each remote call, including
// its retry.
type Enhancer struct {
	svc     Service
	timeout time.Duration
	log     *slog.Logger
}

func NewEnhancer(svc Service, timeout time.Duration, log *slog.Logger) *Enhancer {
	return &Enhancer{svc: svc, timeout: timeout, log: log}
}

// EnhanceContent improves abstracts, generates keywords and summarizes the
// methodology/results/conclusions sections in place. Every individual
// failure is absorbed: the field keeps its pre-enhancement value (keywords
// stay empty) and processing continues.
func (e *Enhancer) EnhanceContent(ctx context.Context, c *thesis.Content) {
	if c.AbstractEN != "" {
		if out, err := e.call(ctx, c.AbstractEN, KindAbstract, "english", abstractMaxWords); err == nil {
			c.AbstractEN = out
		}
	}
	if c.AbstractID != "" {
		if out, err := e.call(ctx, c.AbstractID, KindAbstract, "indonesian", abstractMaxWords); err == nil {
			c.AbstractID = out
		}
	}

	if out, err := e.call(ctx, c.Title+" "+c.AbstractEN, KindKeywords, "english", keywordCount); err == nil {
		c.KeywordsEN = out
	}
	if out, err := e.call(ctx, c.Title+" "+c.AbstractID, KindKeywords, "indonesian", keywordCount); err == nil {
		c.KeywordsID = out
	}

	if c.Methodology != "" {
		if out, err := e.call(ctx, c.Methodology, KindSummary, "indonesian", methodologyMaxWords); err == nil {
			c.MethodologySummary = out
		}
	}
	if c.Results != "" {
		if out, err := e.call(ctx, c.Results, KindSummary, "indonesian", resultsMaxWords); err == nil {
			c.ResultsSummary = out
		}
	}
	if c.Conclusions != "" {
		if out, err := e.call(ctx, c.Conclusions, KindSummary, "indonesian", conclusionsMaxWords); err == nil {
			c.ConclusionsSummary = out
		}
	}
}

// call runs one enhancement with bounded retry for transient failures and
// flattens any Markdown out of the response. An empty input or response is
// treated as a failure so the caller keeps the original text.
func (e *Enhancer) call(ctx context.Context, input string, kind Kind, language string, maxWords int) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", ErrDisabled
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	var out string
	var err error
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		out, err = e.svc.Enhance(ctx, input, kind, language, maxWords)
		if err == nil {
			break
		}
		if !IsRetryable(err) || attempt == MaxAttempts-1 {
			e.logSkip(kind, language, err)
			return "", err
		}
		select {
		case <-ctx.Done():
			e.logSkip(kind, language, ctx.Err())
			return "", ctx.Err()
		case <-time.After(Backoff(attempt)):
		}
	}

	out = Flatten(out)
	if strings.TrimSpace(out) == "" {
		e.logSkip(kind, language, nil)
		return "", ErrDisabled
	}
	return out, nil
}

func (e *Enhancer) logSkip(kind Kind, language string, err error) {
	if err == ErrDisabled {
		return
	}
	e.log.Warn("enhancement skipped, keeping original text",
		"kind", string(kind), "language", language, "error", err)
}
