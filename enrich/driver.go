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

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/econolens/newsflow/ai"
	"github.com/econolens/newsflow/blob"
	"github.com/econolens/newsflow/core"
	"github.com/econolens/newsflow/tokenize"
)

// progressInterval is how many objects pass between progress reports.
const progressInterval = 10

// Driver orchestrates one enrichment pass: walk the source prefix, classify,
// fetch, chunk, summarize or extract, derive keys, store.
//
// Every eligible object is processed exactly once per run; ineligible keys
// are never fetched. Processing is sequential unless WithPoolSize enables a
// bounded worker pool, in which case per-object isolation and key
// determinism are unchanged but result order follows completion order.
type Driver struct {
	store      blob.Store
	walker     *blob.Walker
	summarizer ai.Summarizer
	splitter   *tokenize.Splitter
	config     *Config
	logger     *slog.Logger
	progress   io.Writer
	poolSize   int
}

// DriverOption configures a Driver.
type DriverOption func(*Driver) error

// WithSummarizer sets the summarization collaborator. Required before the
// summarized stage can run.
func WithSummarizer(summarizer ai.Summarizer) DriverOption {
	return func(d *Driver) error {
		if summarizer == nil {
			return ErrSummarizerRequired
		}
		d.summarizer = summarizer
		return nil
	}
}

// WithSplitter replaces the tokenizer built from the config's window and
// overlap settings.
func WithSplitter(splitter *tokenize.Splitter) DriverOption {
	return func(d *Driver) error {
		d.splitter = splitter
		return nil
	}
}

// WithDriverLogger sets a custom logger.
func WithDriverLogger(logger *slog.Logger) DriverOption {
	return func(d *Driver) error {
		if logger == nil {
			logger = slog.Default()
		}
		d.logger = logger
		return nil
	}
}

// WithProgress sets the writer progress reports go to, typically os.Stderr.
func WithProgress(w io.Writer) DriverOption {
	return func(d *Driver) error {
		if w == nil {
			w = io.Discard
		}
		d.progress = w
		return nil
	}
}

// WithPoolSize enables a bounded worker pool of n objects in flight.
// n = 1 keeps sequential processing.
func WithPoolSize(n int) DriverOption {
	return func(d *Driver) error {
		if n < 1 {
			return ErrInvalidPoolSize
		}
		d.poolSize = n
		return nil
	}
}

// NewDriver creates an enrichment driver over the given store.
func NewDriver(store blob.Store, config *Config, opts ...DriverOption) (*Driver, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	walker, err := blob.NewWalker(store)
	if err != nil {
		return nil, err
	}

	d := &Driver{
		store:    store,
		walker:   walker,
		config:   config,
		logger:   slog.Default().With("component", "enricher"),
		progress: io.Discard,
		poolSize: 1,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Run processes every staged article under the date prefix for one stage.
//
// The original stage copies content verbatim into a single text artifact;
// the summarized stage chunks content and summarizes each chunk. Listing
// failures and an unavailable model endpoint are fatal; everything else is
// isolated to the object or chunk it happened on. Re-running over unchanged
// inputs rewrites byte-identical artifacts at identical keys.
func (d *Driver) Run(ctx context.Context, stage core.Stage, date string) (*RunSummary, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidStage, stage)
	}
	if err := core.ValidateDate(date); err != nil {
		return nil, err
	}
	if stage == core.StageSummarized {
		if d.summarizer == nil {
			return nil, ErrSummarizerRequired
		}
		if d.splitter == nil {
			splitter, err := tokenize.NewSplitter(d.config.WindowSize, d.config.Overlap)
			if err != nil {
				return nil, err
			}
			d.splitter = splitter
		}
	}

	summary := &RunSummary{}
	prefix := date + "/"

	// Classify during the walk so ineligible keys are never fetched.
	var eligible []string
	err := d.walker.Walk(ctx, d.config.SourceBucket, prefix, func(obj blob.ObjectInfo) error {
		if !Eligible(obj.Key) {
			summary.Ineligible++
			d.logger.Debug("skipping ineligible key", "key", obj.Key)
			return nil
		}
		eligible = append(eligible, obj.Key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	summary.Eligible = len(eligible)

	d.logger.Info("starting enrichment run",
		"stage", stage, "date", date, "eligible", len(eligible), "ineligible", summary.Ineligible)

	tracker := NewProgressTracker(d.progress, len(eligible), progressInterval)
	tracker.Start()
	defer tracker.Finish()

	if d.poolSize > 1 {
		return d.runPooled(ctx, stage, eligible, summary, tracker)
	}

	for _, key := range eligible {
		result, fatal := d.processObject(ctx, stage, key)
		summary.add(result)
		tracker.Increment(1)
		if fatal != nil {
			return summary, fatal
		}
	}
	return summary, nil
}

// runPooled processes eligible objects on a bounded ants pool. A fatal
// failure stops new work from being useful but already-submitted objects
// run to completion before the error is returned.
func (d *Driver) runPooled(ctx context.Context, stage core.Stage, keys []string, summary *RunSummary, tracker *ProgressTracker) (*RunSummary, error) {
	pool, err := ants.NewPool(d.poolSize)
	if err != nil {
		return summary, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]ObjectResult, len(keys))
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		fatal error
	)

	for i, key := range keys {
		i, key := i, key
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			result, ferr := d.processObject(ctx, stage, key)
			results[i] = result
			tracker.Increment(1)
			if ferr != nil {
				mu.Lock()
				if fatal == nil {
					fatal = ferr
				}
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			results[i] = ObjectResult{
				Key:     key,
				Outcome: OutcomeErrored,
				Err:     fmt.Errorf("submitting to pool: %w", submitErr),
			}
		}
	}
	wg.Wait()

	for _, result := range results {
		summary.add(result)
	}
	return summary, fatal
}

// processObject runs one object through the per-object state machine. The
// returned error is non-nil only for fatal conditions that must abort the
// whole run; every other failure is recorded in the ObjectResult.
func (d *Driver) processObject(ctx context.Context, stage core.Stage, key string) (ObjectResult, error) {
	result := ObjectResult{Key: key}

	body, err := d.store.Get(ctx, d.config.SourceBucket, key)
	if err != nil {
		d.logger.Error("fetch failed", "key", key, "err", err)
		result.Outcome = OutcomeErrored
		result.Err = fmt.Errorf("fetching %s: %w", key, err)
		return result, nil
	}

	var record core.ArticleRecord
	if err := json.Unmarshal(body, &record); err != nil {
		d.logger.Error("decode failed", "key", key, "err", err)
		result.Outcome = OutcomeErrored
		result.Err = fmt.Errorf("decoding %s: %w", key, err)
		return result, nil
	}

	if strings.TrimSpace(record.Content) == "" {
		d.logger.Info("skipping article without content", "key", key)
		result.Outcome = OutcomeSkipped
		return result, nil
	}

	// Probe key derivation before any chunking or model work so a
	// malformed key costs nothing downstream.
	if _, err := core.DeriveKeys(key, stage, 1, 1); err != nil {
		d.logger.Warn("malformed source key", "key", key, "err", err)
		result.Outcome = OutcomeErrored
		result.Err = err
		return result, nil
	}

	var chunks []string
	if stage == core.StageSummarized {
		chunks = d.splitter.Split(record.Content)
	} else {
		chunks = []string{record.Content}
	}
	result.Chunks = len(chunks)

	meta, err := json.Marshal(record.Meta())
	if err != nil {
		result.Outcome = OutcomeErrored
		result.Err = fmt.Errorf("encoding metadata for %s: %w", key, err)
		return result, nil
	}

	stored := 0
	for i, chunkText := range chunks {
		text := chunkText
		if stage == core.StageSummarized {
			summarized, err := d.summarizer.Summarize(ctx, chunkText)
			if errors.Is(err, ai.ErrModelUnavailable) {
				result.Outcome = OutcomeErrored
				result.Err = err
				return result, fmt.Errorf("summarizing chunk %d of %s: %w", i+1, key, err)
			}
			if err != nil {
				d.logger.Error("summarization failed", "key", key, "chunk", i+1, "err", err)
				result.ChunkFailures++
				continue
			}
			text = summarized
		}

		keys, err := core.DeriveKeys(key, stage, i+1, len(chunks))
		if err != nil {
			result.Outcome = OutcomeErrored
			result.Err = err
			return result, nil
		}

		// Two independent writes; one failing never blocks the other.
		wrote := 0
		if err := d.store.Put(ctx, d.config.DestBucket, keys.ContentKey, []byte(text), blob.ContentTypeText); err != nil {
			d.logger.Error("content write failed", "key", keys.ContentKey, "err", err)
			result.WriteFailures++
		} else {
			wrote++
		}
		if err := d.store.Put(ctx, d.config.DestBucket, keys.MetadataKey, meta, blob.ContentTypeJSON); err != nil {
			d.logger.Error("metadata write failed", "key", keys.MetadataKey, "err", err)
			result.WriteFailures++
		} else {
			wrote++
		}
		if wrote > 0 {
			stored++
		}
	}

	if stored == 0 {
		result.Outcome = OutcomeErrored
		if result.Err == nil {
			result.Err = fmt.Errorf("no artifacts stored for %s", key)
		}
		return result, nil
	}

	result.Outcome = OutcomeStored
	d.logger.Info("enriched article", "key", key, "stage", stage, "chunks", len(chunks))
	return result, nil
}
