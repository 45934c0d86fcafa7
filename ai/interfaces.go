package ai

import "context"

// Summarizer produces an abridged version of a text chunk.
// Implementations must be thread-safe for concurrent use.
type Summarizer interface {
	// Summarize returns a summary of text.
	//
	// A serving endpoint that cannot be reached at all is reported as an
	// error matching ErrModelUnavailable; callers treat that as fatal for
	// the whole run since it requires operator intervention. Any other
	// error is a per-chunk failure the caller may isolate.
	Summarize(ctx context.Context, text string) (string, error)
}
