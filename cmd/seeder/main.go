// Seeder stages sample articles into a local store so the enrichment
// pipeline can be exercised without a search API key.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/econolens/newsflow/blob"
	"github.com/econolens/newsflow/blob/badger"
	"github.com/econolens/newsflow/core"
)

type sample struct {
	topic  string
	record core.ArticleRecord
}

var samples = []sample{
	{
		topic: "inflation",
		record: core.ArticleRecord{
			Title:       "CPI cools for third straight month",
			Description: "Consumer prices rose less than forecast in August.",
			Content:     "Consumer prices rose 0.2 percent in August, the third straight month of cooling inflation. Shelter costs remained the largest contributor while energy prices declined. Economists said the report keeps a rate cut on the table for the next policy meeting.",
		},
	},
	{
		topic: "labor_market",
		record: core.ArticleRecord{
			Title:       "Jobless claims edge higher",
			Description: "Weekly unemployment filings rose to a two month high.",
			Content:     "Initial claims for unemployment benefits rose by 12,000 last week, the highest level in two months. Continuing claims also climbed, suggesting laid-off workers are taking longer to find new positions. The labor market remains tight by historical standards.",
		},
	},
	{
		topic: "government_and_policy",
		record: core.ArticleRecord{
			Title:       "Fed officials split on pace of rate cuts",
			Description: "Minutes show a divided committee ahead of the next meeting.",
			Content:     "Federal Reserve officials were divided over how quickly to lower interest rates, minutes from the latest meeting showed. Several participants favored a quarter-point cut while others preferred to hold steady until inflation data improves further. Treasury yields fell after the release.",
		},
	},
	{
		topic: "corporate",
		record: core.ArticleRecord{
			Title:       "Regional banks announce merger",
			Description: "Two mid-sized lenders agree to a stock-for-stock deal.",
			Content:     "Two regional lenders agreed to merge in an all-stock transaction valuing the combined company at about 9 billion dollars. Executives said the deal would close next year pending regulatory approval and would create the largest bank headquartered in the region.",
		},
	},
	{
		topic: "consumer_behavior",
		record: core.ArticleRecord{
			Title:       "Retail sales beat expectations",
			Description: "Household spending stayed resilient in August.",
			Content:     "Retail sales rose 0.6 percent in August, well above the 0.2 percent economists expected. Spending gains were broad, led by online retailers and restaurants. The report suggests disposable income growth is still supporting household spending despite higher borrowing costs.",
		},
	},
	{
		// Empty content exercises the benign-skip path downstream.
		topic: "economy_general",
		record: core.ArticleRecord{
			Title:       "Tariff review announced",
			Description: "The administration will revisit import duties next quarter.",
		},
	},
}

var (
	dbPath = flag.String("db", "./newsflow_db", "path to BadgerDB store directory")
	bucket = flag.String("bucket", "econolens-staging-area", "staging bucket to seed")
	date   = flag.String("date", "2025-09-01", "date prefix for seeded articles (yyyy-mm-dd)")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

func main() {
	if err := core.ValidateDate(*date); err != nil {
		panic(err)
	}

	store, err := badger.Open(*dbPath, false)
	if err != nil {
		panic(err)
	}
	defer store.Close()

	ctx := context.Background()
	for _, s := range samples {
		record := s.record
		record.Topic = s.topic
		record.PublishedAt = *date + "T12:00:00Z"

		title := strings.ReplaceAll(record.Title, " ", "_")
		key := fmt.Sprintf("%s/%s/%s.json", *date, s.topic, title)

		body, err := json.MarshalIndent(record, "", "    ")
		if err != nil {
			panic(err)
		}
		if err := store.Put(ctx, *bucket, key, body, blob.ContentTypeJSON); err != nil {
			panic(err)
		}
		slog.Info("seeded article", "key", key)
	}
	slog.Info("seeding complete", "articles", len(samples), "bucket", *bucket)
}
