package gnews

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchBuildsExpectedQuery(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		json.NewEncoder(w).Encode(searchResponse{
			TotalArticles: 1,
			Articles: []Article{
				{
					Title:       "Fed raises rates",
					Description: "Quarter point hike",
					Content:     "The Federal Reserve raised rates today.",
					PublishedAt: "2025-09-01T12:00:00Z",
					Source:      Source{Name: "Example Wire"},
				},
			},
		})
	}))
	defer server.Close()

	client, err := NewClient("k-123", WithBaseURL(server.URL))
	require.NoError(t, err)

	from := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	articles, err := client.Search(context.Background(), "(Inflation)", from, to)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	assert.Equal(t, "Fed raises rates", articles[0].Title)
	assert.Equal(t, "(Inflation)", gotQuery["q"])
	assert.Equal(t, "k-123", gotQuery["apikey"])
	assert.Equal(t, "en", gotQuery["lang"])
	assert.Equal(t, "us", gotQuery["country"])
	assert.Equal(t, "title,description", gotQuery["in"])
	assert.Equal(t, "image", gotQuery["nullable"])
	assert.Equal(t, "10", gotQuery["max"])
	assert.Equal(t, "relevance", gotQuery["sortby"])
	assert.Equal(t, "content", gotQuery["expand"])
	assert.Equal(t, "2025-09-01T00:00:00.000Z", gotQuery["from"])
	assert.Equal(t, "2025-09-02T00:00:00.000Z", gotQuery["to"])
}

func TestSearchNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"errors":["quota exceeded"]}`))
	}))
	defer server.Close()

	client, err := NewClient("k-123", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "(Inflation)", time.Now(), time.Now())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "quota exceeded")
}

func TestSearchMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client, err := NewClient("k-123", WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "(Inflation)", time.Now(), time.Now())
	assert.ErrorContains(t, err, "decoding gnews response")
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("")
	assert.ErrorIs(t, err, ErrAPIKeyRequired)
}

func TestWithMaxResults(t *testing.T) {
	var gotMax string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMax = r.URL.Query().Get("max")
		json.NewEncoder(w).Encode(searchResponse{})
	}))
	defer server.Close()

	client, err := NewClient("k-123", WithBaseURL(server.URL), WithMaxResults(25))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "q", time.Now(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "25", gotMax)
}
