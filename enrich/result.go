package enrich

// Outcome classifies what happened to one object during a run.
type Outcome string

const (
	// OutcomeStored means at least one derived artifact was written.
	OutcomeStored Outcome = "stored"

	// OutcomeSkipped means the object was parsed but had nothing to
	// enrich, typically empty content. Not an error.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeErrored means the object produced no artifacts because of a
	// fetch, decode, key, or per-chunk failure.
	OutcomeErrored Outcome = "errored"
)

// ObjectResult is the explicit per-object outcome the driver records in
// place of broad exception-style recovery.
type ObjectResult struct {
	// Key is the source object key.
	Key string

	// Outcome classifies the result.
	Outcome Outcome

	// Err holds the failure for errored objects, nil otherwise.
	Err error

	// Chunks is the number of chunks the content produced.
	Chunks int

	// ChunkFailures counts chunks whose summarization failed.
	ChunkFailures int

	// WriteFailures counts individual artifact writes that failed. The
	// sibling artifact of a failed write is still attempted.
	WriteFailures int
}

// RunSummary aggregates one pipeline run.
type RunSummary struct {
	// Eligible is the number of listed objects that passed the classifier.
	Eligible int

	// Ineligible counts listed keys the classifier rejected. These are
	// benign skips, never fetched.
	Ineligible int

	// Stored, Skipped and Errored partition the eligible objects.
	Stored  int
	Skipped int
	Errored int

	// ChunkFailures and WriteFailures are totals across all objects.
	ChunkFailures int
	WriteFailures int

	// Results holds the per-object outcomes in processing order.
	Results []ObjectResult
}

// add folds one object result into the summary totals.
func (s *RunSummary) add(result ObjectResult) {
	s.Results = append(s.Results, result)
	s.ChunkFailures += result.ChunkFailures
	s.WriteFailures += result.WriteFailures

	switch result.Outcome {
	case OutcomeStored:
		s.Stored++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeErrored:
		s.Errored++
	}
}
