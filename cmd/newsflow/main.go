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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/econolens/newsflow/ai"
	"github.com/econolens/newsflow/ai/openai"
	"github.com/econolens/newsflow/blob/badger"
	"github.com/econolens/newsflow/core"
	"github.com/econolens/newsflow/enrich"
	"github.com/econolens/newsflow/gnews"
	"github.com/econolens/newsflow/ingest"
	"github.com/econolens/newsflow/secrets"
)

const gnewsAPIKeySecret = "gnews-api-key"

func main() {
	app := &cli.App{
		Name:  "newsflow",
		Usage: "News article ingestion and enrichment pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Fetch articles per topic for a date and stage them as JSON",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB store directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "date",
						Usage:    "Date to ingest (yyyy-mm-dd)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "staging-bucket",
						Usage: "Bucket receiving staged article JSON",
						Value: "econolens-staging-area",
					},
					&cli.StringFlag{
						Name:  "topics-file",
						Usage: "YAML file mapping topic labels to keyword queries (default: built-in registry)",
					},
					&cli.IntFlag{
						Name:  "max-results",
						Usage: "Maximum articles requested per topic",
						Value: 10,
					},
				},
			},
			{
				Name:   "extract",
				Usage:  "Extract article text verbatim into the enriched bucket",
				Action: extractCommand,
				Flags:  enrichFlags(),
			},
			{
				Name:   "summarize",
				Usage:  "Chunk and summarize article text into the enriched bucket",
				Action: summarizeCommand,
				Flags: append(enrichFlags(),
					&cli.StringFlag{
						Name:  "model-host",
						Usage: "Summarization service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "model",
						Usage: "Summarization model name",
						Value: "qwen2.5:3b",
					},
					&cli.IntFlag{
						Name:  "max-summary-tokens",
						Usage: "Cap on generated summary length",
						Value: 160,
					},
					&cli.IntFlag{
						Name:  "window-size",
						Usage: "Token limit per chunk",
						Value: 1024,
					},
					&cli.IntFlag{
						Name:  "overlap",
						Usage: "Tokens shared between consecutive chunks",
						Value: 100,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// enrichFlags are the flags shared by the extract and summarize commands.
func enrichFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB store directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "date",
			Usage:    "Date prefix to process (yyyy-mm-dd)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "source-bucket",
			Usage: "Bucket holding staged article JSON",
			Value: "econolens-staging-area",
		},
		&cli.StringFlag{
			Name:  "dest-bucket",
			Usage: "Bucket receiving derived artifacts",
			Value: "econolens-data-enriched",
		},
		&cli.IntFlag{
			Name:  "pool-size",
			Usage: "Objects processed concurrently (1 = sequential)",
			Value: 1,
		},
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	// The API key is required before any processing starts; a missing
	// secret fails the whole run here.
	apiKey, err := secrets.NewEnvProvider().GetSecret(ctx, gnewsAPIKeySecret)
	if err != nil {
		return fmt.Errorf("retrieving API key: %w", err)
	}

	store, err := badger.Open(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	client, err := gnews.NewClient(apiKey, gnews.WithMaxResults(c.Int("max-results")))
	if err != nil {
		return fmt.Errorf("creating search client: %w", err)
	}

	opts := []ingest.Option{}
	if path := c.String("topics-file"); path != "" {
		topics, err := ingest.LoadTopics(path)
		if err != nil {
			return err
		}
		opts = append(opts, ingest.WithTopics(topics))
	}

	ingester, err := ingest.NewIngester(store, client, c.String("staging-bucket"), opts...)
	if err != nil {
		return fmt.Errorf("creating ingester: %w", err)
	}

	summary, err := ingester.Run(ctx, c.String("date"))
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Ingested %d articles (%d stored, %d upload failures, %d topic failures)\n",
		summary.Articles, summary.Stored, summary.UploadFailures, summary.TopicFailures)
	return nil
}

func extractCommand(c *cli.Context) error {
	return runEnrichment(c, core.StageOriginal)
}

func summarizeCommand(c *cli.Context) error {
	return runEnrichment(c, core.StageSummarized)
}

func runEnrichment(c *cli.Context, stage core.Stage) error {
	ctx := context.Background()

	store, err := badger.Open(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	config := enrich.DefaultConfig()
	config.SourceBucket = c.String("source-bucket")
	config.DestBucket = c.String("dest-bucket")

	opts := []enrich.DriverOption{
		enrich.WithProgress(os.Stderr),
	}
	if n := c.Int("pool-size"); n > 1 {
		opts = append(opts, enrich.WithPoolSize(n))
	}

	if stage == core.StageSummarized {
		config.WindowSize = c.Int("window-size")
		config.Overlap = c.Int("overlap")

		aiConfig := ai.NewConfig(
			ai.WithHost(c.String("model-host")),
			ai.WithModel(c.String("model")),
			ai.WithMaxSummaryTokens(c.Int("max-summary-tokens")),
		)
		summarizer, err := openai.NewSummarizer(aiConfig)
		if err != nil {
			return fmt.Errorf("creating summarizer: %w", err)
		}
		opts = append(opts, enrich.WithSummarizer(summarizer))
	}

	driver, err := enrich.NewDriver(store, config, opts...)
	if err != nil {
		return fmt.Errorf("creating driver: %w", err)
	}

	summary, err := driver.Run(ctx, stage, c.String("date"))
	if err != nil {
		return fmt.Errorf("%s run failed: %w", stage, err)
	}

	fmt.Fprintf(os.Stderr,
		"Processed %d objects (%d stored, %d skipped, %d errored, %d ineligible, %d chunk failures, %d write failures)\n",
		summary.Eligible, summary.Stored, summary.Skipped, summary.Errored,
		summary.Ineligible, summary.ChunkFailures, summary.WriteFailures)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
