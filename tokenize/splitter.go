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


package tokenize

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultEncoding is the tiktoken encoding used when none is configured.
const DefaultEncoding = "cl100k_base"

// Codec converts between text and token ids. The tiktoken encoder is the
// production implementation; tests substitute a deterministic fake.
type Codec interface {
	Encode(text string) []int
	Decode(tokens []int) string
}

type tiktokenCodec struct {
	enc *tiktoken.Tiktoken
}

func (c *tiktokenCodec) Encode(text string) []int {
	return c.enc.Encode(text, nil, nil)
}

func (c *tiktokenCodec) Decode(tokens []int) string {
	return c.enc.Decode(tokens)
}

// Splitter tokenizes long text and splits it into overlapping fixed-size
// windows measured in token units, so each window fits a model input limit.
type Splitter struct {
	codec      Codec
	windowSize int
	overlap    int
}

// Option configures a Splitter.
type Option func(*Splitter) error

// WithCodec sets a custom token codec.
func WithCodec(codec Codec) Option {
	return func(s *Splitter) error {
		if codec == nil {
			return ErrCodecRequired
		}
		s.codec = codec
		return nil
	}
}

// WithEncoding selects a tiktoken encoding by name.
func WithEncoding(name string) Option {
	return func(s *Splitter) error {
		enc, err := tiktoken.GetEncoding(name)
		if err != nil {
			return fmt.Errorf("loading encoding %q: %w", name, err)
		}
		s.codec = &tiktokenCodec{enc: enc}
		return nil
	}
}

// NewSplitter creates a splitter producing windows of windowSize tokens
// with overlap tokens shared between consecutive windows.
// Requires 0 <= overlap < windowSize.
func NewSplitter(windowSize, overlap int, opts ...Option) (*Splitter, error) {
	if windowSize < 1 {
		return nil, fmt.Errorf("%w: window size %d", ErrInvalidWindow, windowSize)
	}
	if overlap < 0 || overlap >= windowSize {
		return nil, fmt.Errorf("%w: overlap %d with window size %d", ErrInvalidOverlap, overlap, windowSize)
	}

	s := &Splitter{
		windowSize: windowSize,
		overlap:    overlap,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.codec == nil {
		enc, err := tiktoken.GetEncoding(DefaultEncoding)
		if err != nil {
			return nil, fmt.Errorf("loading encoding %q: %w", DefaultEncoding, err)
		}
		s.codec = &tiktokenCodec{enc: enc}
	}
	return s, nil
}

// Split returns the ordered chunk texts for text.
//
// Text that fits within the window is returned verbatim as the only chunk,
// never re-encoded, to avoid a lossy round trip through the tokenizer.
// Longer text is walked with a sliding window: window i covers token units
// [start, start+windowSize), start advances by windowSize-overlap, and the
// walk stops at the first window reaching the end of the sequence. The
// union of all windows covers the full token sequence; the overlap region
// between consecutive windows is covered by both. Decoding token windows
// back to text may normalize whitespace or punctuation; that approximation
// is accepted.
func (s *Splitter) Split(text string) []string {
	ids := s.codec.Encode(text)
	if len(ids) <= s.windowSize {
		return []string{text}
	}

	step := s.windowSize - s.overlap
	var chunks []string
	for start := 0; ; start += step {
		end := start + s.windowSize
		if end >= len(ids) {
			chunks = append(chunks, s.codec.Decode(ids[start:]))
			return chunks
		}
		chunks = append(chunks, s.codec.Decode(ids[start:end]))
	}
}

// WindowSize returns the configured window size in token units.
func (s *Splitter) WindowSize() int {
	return s.windowSize
}

// Overlap returns the configured overlap in token units.
func (s *Splitter) Overlap() int {
	return s.overlap
}
