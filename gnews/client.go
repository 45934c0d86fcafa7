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


package gnews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the production GNews API endpoint.
const DefaultBaseURL = "https://gnews.io/api/v4"

// timestampLayout is the ISO 8601 form the API expects for from/to bounds.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Client is a GNews search API client.
type Client struct {
	baseURL    string
	apiKey     string
	maxResults int
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint, mainly for tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithMaxResults caps the number of articles per search (API limit is 100;
// the default of 10 keeps within the free tier quota).
func WithMaxResults(max int) ClientOption {
	return func(c *Client) {
		if max >= 1 {
			c.maxResults = max
		}
	}
}

// NewClient creates a GNews client.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		maxResults: 10,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default().With("component", "gnews-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search runs a keyword query over articles published in [from, to).
//
// Keywords are matched against title and description only; matching inside
// the article body hampers result quality. A non-success response status is
// returned as a StatusError so the caller can fail that query alone.
func (c *Client) Search(ctx context.Context, query string, from, to time.Time) ([]Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("apikey", c.apiKey)
	params.Set("lang", "en")
	params.Set("country", "us")
	params.Set("in", "title,description")
	params.Set("nullable", "image")
	params.Set("max", strconv.Itoa(c.maxResults))
	params.Set("from", from.UTC().Format(timestampLayout))
	params.Set("to", to.UTC().Format(timestampLayout))
	params.Set("sortby", "relevance")
	params.Set("expand", "content")

	endpoint := c.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching gnews: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding gnews response: %w", err)
	}

	c.logger.Debug("search complete",
		"query", query,
		"totalArticles", result.TotalArticles,
		"returned", len(result.Articles))
	return result.Articles, nil
}
