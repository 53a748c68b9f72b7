package news

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_FetchArticles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/everything", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("pageSize"))

		resp := map[string]any{
			"status": "ok",
			"articles": []map[string]any{
				{
					"source":      map[string]string{"name": "Reuters"},
					"author":      "Jane Roe",
					"title":       "Markets rally on rate cut hopes",
					"description": "Stocks climbed broadly.",
					"url":         "https://example.com/a",
					"publishedAt": "2026-08-27T10:00:00Z",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	fetcher := NewFetcher("test-key")
	fetcher.BaseURL = server.URL

	articles, err := fetcher.FetchArticles("finance", 5)
	require.NoError(t, err)
	require.Len(t, articles, 1)

	assert.Equal(t, "Reuters", articles[0].Source)
	assert.Equal(t, "Markets rally on rate cut hopes", articles[0].Title)
	assert.Equal(t, "https://example.com/a", articles[0].URL)
}

func TestFetcher_FetchArticles_ProviderStatusNotOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "error"})
	}))
	defer server.Close()

	fetcher := NewFetcher("test-key")
	fetcher.BaseURL = server.URL

	_, err := fetcher.FetchArticles("finance", 5)
	require.Error(t, err)
}

func TestFetcher_FetchArticles_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	fetcher := NewFetcher("test-key")
	fetcher.BaseURL = server.URL

	_, err := fetcher.FetchArticles("finance", 5)
	require.Error(t, err)
}

func TestQueryForCategory_Unknown(t *testing.T) {
	assert.Equal(t, QueryForCategory("finance"), QueryForCategory("bogus"))
}
