package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Article is one provider article, prior to any enrichment.
type Article struct {
	Source      string
	Author      string
	Title       string
	Description string
	Content     string
	URL         string
	PublishedAt string
}

type Fetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewFetcher(apiKey string) *Fetcher {
	return &Fetcher{
		BaseURL: "https://newsapi.org/v2",
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// queries maps a feed category to the provider search keywords.
var queries = map[string]string{
	"finance":     "finance OR economy OR markets",
	"crypto":      "bitcoin OR cryptocurrency OR blockchain",
	"stock":       "stocks OR equities OR earnings",
	"policy":      "central bank OR monetary policy OR interest rates",
	"real_estate": "real estate OR housing OR property market",
}

func QueryForCategory(category string) string {
	if q, ok := queries[category]; ok {
		return q
	}
	return queries["finance"]
}

// FetchArticles returns up to limit articles for the category. A non-ok
// provider status is an error; the caller decides how to degrade.
func (f *Fetcher) FetchArticles(category string, limit int) ([]Article, error) {
	params := url.Values{}
	params.Set("q", QueryForCategory(category))
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("apiKey", f.APIKey)

	endpoint := fmt.Sprintf("%s/everything?%s", f.BaseURL, params.Encode())

	resp, err := f.Client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result struct {
		Status   string `json:"status"`
		Articles []struct {
			Source struct {
				Name string `json:"name"`
			} `json:"source"`
			Author      string `json:"author"`
			Title       string `json:"title"`
			Description string `json:"description"`
			Content     string `json:"content"`
			URL         string `json:"url"`
			PublishedAt string `json:"publishedAt"`
		} `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Status != "ok" {
		return nil, fmt.Errorf("provider status not ok: %s", result.Status)
	}

	articles := make([]Article, 0, len(result.Articles))
	for _, a := range result.Articles {
		articles = append(articles, Article{
			Source:      a.Source.Name,
			Author:      a.Author,
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}

	return articles, nil
}
