// Copyright 2025 Econolens
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/econolens/newsflow/ai"
)

// Summarizer implements ai.Summarizer using OpenAI-compatible chat APIs.
type Summarizer struct {
	client    llms.Model
	maxTokens int
	logger    *slog.Logger
}

var _ ai.Summarizer = (*Summarizer)(nil)

// newSummarizer is an internal constructor that returns the concrete type.
func newSummarizer(config *ai.Config) (*Summarizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Summarizer{
		client:    client,
		maxTokens: config.MaxSummaryTokens,
		logger:    slog.Default().With("component", "openai-summarizer"),
	}, nil
}

// NewSummarizer creates a summarizer using the provided configuration.
//
// Returns ai.Summarizer interface to enforce abstraction.
func NewSummarizer(config *ai.Config) (ai.Summarizer, error) {
	return newSummarizer(config)
}

// Summarize produces a summary of text via a chat completion.
// Transport-level failures reaching the endpoint are wrapped as
// ai.ErrModelUnavailable; everything else is a per-chunk failure.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ai.ErrEmptyInput
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(summaryPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	response, err := s.client.GenerateContent(ctx, content,
		llms.WithTemperature(0.0),
		llms.WithMaxTokens(s.maxTokens))
	if err != nil {
		if isEndpointDown(err) {
			s.logger.Error("serving endpoint unreachable", "err", err)
			return "", fmt.Errorf("%w: %v", ai.ErrModelUnavailable, err)
		}
		s.logger.Error("failed to generate summary", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		return "", ai.ErrEmptySummary
	}

	summary := strings.TrimSpace(response.Choices[0].Content)
	if summary == "" {
		return "", ai.ErrEmptySummary
	}

	s.logger.Debug("generated summary", "inputChars", len(text), "summaryChars", len(summary))
	return summary, nil
}

// isEndpointDown reports whether the error is a transport failure reaching
// the endpoint rather than a response-level failure from the model.
func isEndpointDown(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
