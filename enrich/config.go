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


package enrich

import "github.com/econolens/newsflow/tokenize"

// Config holds configuration for an enrichment run.
type Config struct {
	// SourceBucket holds the staged article JSON objects.
	SourceBucket string

	// DestBucket receives derived text and metadata artifacts.
	DestBucket string

	// WindowSize is the token limit per chunk for the summarized stage.
	WindowSize int

	// Overlap is the token count shared between consecutive chunks.
	Overlap int
}

// DefaultConfig returns a Config with the standard buckets and chunking
// parameters.
func DefaultConfig() *Config {
	return &Config{
		SourceBucket: "econolens-staging-area",
		DestBucket:   "econolens-data-enriched",
		WindowSize:   1024,
		Overlap:      100,
	}
}

// Validate checks bucket names and chunking parameters.
func (c *Config) Validate() error {
	if c.SourceBucket == "" {
		return ErrSourceBucketRequired
	}
	if c.DestBucket == "" {
		return ErrDestBucketRequired
	}
	if c.WindowSize < 1 {
		return tokenize.ErrInvalidWindow
	}
	if c.Overlap < 0 || c.Overlap >= c.WindowSize {
		return tokenize.ErrInvalidOverlap
	}
	return nil
}
