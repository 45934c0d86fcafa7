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


package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/econolens/newsflow/blob"
	"github.com/econolens/newsflow/core"
	"github.com/econolens/newsflow/gnews"
)

// Searcher is the slice of the search API the ingester depends on.
type Searcher interface {
	Search(ctx context.Context, query string, from, to time.Time) ([]gnews.Article, error)
}

// Ingester fetches articles per topic for one calendar day and stages each
// as a JSON object at {date}/{topic}/{title}.json in the staging bucket.
type Ingester struct {
	store    blob.Store
	searcher Searcher
	bucket   string
	topics   Topics
	logger   *slog.Logger
}

// Option configures an Ingester.
type Option func(*Ingester) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ing *Ingester) error {
		if logger == nil {
			logger = slog.Default()
		}
		ing.logger = logger
		return nil
	}
}

// WithTopics replaces the default topic registry.
func WithTopics(topics Topics) Option {
	return func(ing *Ingester) error {
		if len(topics) == 0 {
			return ErrNoTopics
		}
		ing.topics = topics
		return nil
	}
}

// NewIngester creates a staging ingester.
func NewIngester(store blob.Store, searcher Searcher, bucket string, opts ...Option) (*Ingester, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	if bucket == "" {
		return nil, ErrBucketRequired
	}

	ing := &Ingester{
		store:    store,
		searcher: searcher,
		bucket:   bucket,
		topics:   DefaultTopics(),
		logger:   slog.Default().With("component", "ingester"),
	}
	for _, opt := range opts {
		if err := opt(ing); err != nil {
			return nil, err
		}
	}
	return ing, nil
}

// Summary aggregates the outcome of one ingestion run.
type Summary struct {
	Topics         int
	TopicFailures  int
	Articles       int
	Stored         int
	UploadFailures int
}

// Run ingests all registered topics for the given date (yyyy-mm-dd),
// searching the window [date, date+1d). A search failure fails that topic
// only; an upload failure fails that article only. An invalid date is
// fatal before any topic is queried.
func (ing *Ingester) Run(ctx context.Context, date string) (*Summary, error) {
	if err := core.ValidateDate(date); err != nil {
		return nil, err
	}

	from, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidDate, date)
	}
	to := from.AddDate(0, 0, 1)

	summary := &Summary{Topics: len(ing.topics)}
	for _, topic := range ing.topics.Names() {
		query := ing.topics[topic]
		ing.logger.Info("searching topic", "topic", topic, "date", date)

		articles, err := ing.searcher.Search(ctx, query, from, to)
		if err != nil {
			ing.logger.Error("topic search failed", "topic", topic, "err", err)
			summary.TopicFailures++
			continue
		}

		for _, article := range articles {
			summary.Articles++
			key := fmt.Sprintf("%s/%s/%s.json", date, topic, sanitizeTitle(article.Title))
			if err := ing.storeArticle(ctx, key, topic, article); err != nil {
				ing.logger.Error("upload failed", "key", key, "err", err)
				summary.UploadFailures++
				continue
			}
			summary.Stored++
			ing.logger.Info("staged article", "key", key)
		}
	}
	return summary, nil
}

// storeArticle uploads one article as a pretty-printed JSON record.
func (ing *Ingester) storeArticle(ctx context.Context, key, topic string, article gnews.Article) error {
	record := core.ArticleRecord{
		Title:       article.Title,
		Description: article.Description,
		PublishedAt: article.PublishedAt,
		Topic:       topic,
		Content:     article.Content,
	}

	body, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return err
	}
	return ing.store.Put(ctx, ing.bucket, key, body, blob.ContentTypeJSON)
}

// sanitizeTitle turns an article title into a filename segment. Spaces
// become underscores; path separators would corrupt the derived key layout
// and are replaced too.
func sanitizeTitle(title string) string {
	title = strings.ReplaceAll(title, " ", "_")
	return strings.ReplaceAll(title, "/", "_")
}
