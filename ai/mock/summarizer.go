package mock

import (
	"context"
	"strings"
	"sync"
)

// MockSummarizer is a test double for ai.Summarizer.
// It allows custom behavior injection via a function field.
type MockSummarizer struct {
	// SummarizeFunc is called by Summarize if set.
	// If nil, uses default deterministic behavior.
	SummarizeFunc func(ctx context.Context, text string) (string, error)

	mu        sync.Mutex
	callCount int
	inputs    []string
}

// NewMockSummarizer creates a mock summarizer with default deterministic
// behavior: the first eight words of the input prefixed with "summary:".
func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{}
}

// Summarize records the call and returns a deterministic summary unless
// SummarizeFunc overrides the behavior.
func (m *MockSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.inputs = append(m.inputs, text)
	fn := m.SummarizeFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, text)
	}

	words := strings.Fields(text)
	if len(words) > 8 {
		words = words[:8]
	}
	return "summary: " + strings.Join(words, " "), nil
}

// CallCount returns the number of Summarize invocations.
func (m *MockSummarizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Inputs returns the texts passed to Summarize, in call order.
func (m *MockSummarizer) Inputs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.inputs...)
}

// Reset clears recorded calls and injected behavior.
func (m *MockSummarizer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.inputs = nil
	m.SummarizeFunc = nil
}
