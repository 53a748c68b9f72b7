package markets

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Index is one market index quote in display form.
type Index struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

type Fetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewFetcher(apiKey string) *Fetcher {
	return &Fetcher{
		BaseURL: "https://www.alphavantage.co",
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

var indexSymbols = []string{"^GSPC", "^DJI", "^IXIC", "000001.SS"}

var indexNames = map[string]string{
	"^GSPC":     "S&P 500",
	"^DJI":      "Dow Jones",
	"^IXIC":     "Nasdaq",
	"000001.SS": "SSE Composite",
}

func IndexName(symbol string) string {
	if name, ok := indexNames[symbol]; ok {
		return name
	}
	return symbol
}

// FetchIndexes quotes the major indexes one by one; symbols that fail are
// skipped. An empty result is an error so the caller can fall back.
func (f *Fetcher) FetchIndexes() ([]Index, error) {
	indexes := make([]Index, 0, len(indexSymbols))

	for _, symbol := range indexSymbols {
		quote, err := f.fetchQuote(symbol)
		if err != nil {
			continue
		}
		indexes = append(indexes, *quote)
	}

	if len(indexes) == 0 {
		return nil, fmt.Errorf("no index quotes available")
	}
	return indexes, nil
}

func (f *Fetcher) fetchQuote(symbol string) (*Index, error) {
	params := url.Values{}
	params.Set("function", "GLOBAL_QUOTE")
	params.Set("symbol", symbol)
	params.Set("apikey", f.APIKey)

	endpoint := fmt.Sprintf("%s/query?%s", f.BaseURL, params.Encode())

	resp, err := f.Client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result struct {
		Quote struct {
			Price         string `json:"05. price"`
			Change        string `json:"09. change"`
			ChangePercent string `json:"10. change percent"`
		} `json:"Global Quote"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Quote.Price == "" {
		return nil, fmt.Errorf("empty quote for symbol %s", symbol)
	}

	change, _ := strconv.ParseFloat(result.Quote.Change, 64)
	trend := "down"
	if change > 0 {
		trend = "up"
	}

	return &Index{
		Name:   IndexName(symbol),
		Value:  result.Quote.Price,
		Change: result.Quote.ChangePercent,
		Trend:  trend,
	}, nil
}

// FallbackIndexes is the fixed table served when the provider is
// unreachable; the news endpoint must not fail on a degraded provider.
func FallbackIndexes() []Index {
	return []Index{
		{Name: "SSE Composite", Value: "3,245.67", Change: "+1.2%", Trend: "up"},
		{Name: "SZSE Component", Value: "10,856.23", Change: "+0.8%", Trend: "up"},
		{Name: "ChiNext", Value: "2,156.89", Change: "+2.1%", Trend: "up"},
		{Name: "Hang Seng", Value: "18,456.78", Change: "-0.3%", Trend: "down"},
		{Name: "Dow Jones", Value: "35,678.90", Change: "+0.5%", Trend: "up"},
		{Name: "Nasdaq", Value: "14,567.34", Change: "+1.8%", Trend: "up"},
	}
}
