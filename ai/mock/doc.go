// Package mock provides a test double for the ai.Summarizer interface.
//
// The default behavior is deterministic so tests can assert on outputs;
// failure modes are injected through the SummarizeFunc field.
package mock
