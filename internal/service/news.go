package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"finboard/pkg/integrations/markets"
	"finboard/pkg/integrations/news"
	tickerScheduler "finboard/pkg/integrations/scheduler"
	"finboard/pkg/types/cache"
	"finboard/pkg/types/scheduler"

	"github.com/pkg/errors"
)

var ErrInvalidNewsServiceConfig = errors.New("invalid news service configuration")

// ArticleFetcher yields raw articles for a news category.
type ArticleFetcher interface {
	FetchArticles(category string, limit int) ([]news.Article, error)
}

// IndexFetcher yields current market index quotes.
type IndexFetcher interface {
	FetchIndexes() ([]markets.Index, error)
}

// NewsItem is one enriched article ready for the API.
type NewsItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Source   string `json:"source"`
	Time     string `json:"time"`
	Category string `json:"category"`
	Impact   string `json:"impact"`
	URL      string `json:"url"`
	Author   string `json:"author"`
}

// Recommendation is a rule-based reading of the feed and market trend.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Feed is the full news payload: articles, index quotes and suggestions.
type Feed struct {
	News            []NewsItem       `json:"news"`
	MarketData      []markets.Index  `json:"marketData"`
	Recommendations []Recommendation `json:"recommendations"`
}

type NewsService struct {
	ctx       context.Context
	logger    *slog.Logger
	articles  ArticleFetcher
	indexes   IndexFetcher
	cache     cache.Cache[string, Feed]
	scheduler scheduler.Scheduler
}

// Option is the functional options pattern for NewsService
type Option func(*NewsService) error

func WithContext(ctx context.Context) Option {
	return func(s *NewsService) error {
		s.ctx = ctx
		return nil
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *NewsService) error {
		s.logger = l
		return nil
	}
}

func WithArticleFetcher(f ArticleFetcher) Option {
	return func(s *NewsService) error {
		s.articles = f
		return nil
	}
}

func WithIndexFetcher(f IndexFetcher) Option {
	return func(s *NewsService) error {
		s.indexes = f
		return nil
	}
}

func WithCache(c cache.Cache[string, Feed]) Option {
	return func(s *NewsService) error {
		s.cache = c
		return nil
	}
}

func (s *NewsService) IsValid() error {
	if s.articles == nil {
		return errors.Wrap(ErrInvalidNewsServiceConfig, "article fetcher cannot be nil")
	}
	return nil
}

func NewNewsService(opts ...Option) (*NewsService, error) {
	s := &NewsService{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if err := s.IsValid(); err != nil {
		return nil, err
	}
	return s, nil
}

// Feed assembles the news payload. Provider failures degrade to empty
// sections; this never returns an error to the handler.
func (s *NewsService) Feed(category string, limit int) Feed {
	cacheKey := fmt.Sprintf("%s:%d", category, limit)
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			return cached
		}
	}

	items := s.fetchNews(category, limit)
	marketData := s.fetchMarketData()
	feed := Feed{
		News:            items,
		MarketData:      marketData,
		Recommendations: buildRecommendations(items, marketData),
	}

	if s.cache != nil && len(items) > 0 {
		s.cache.Set(cacheKey, feed)
	}

	return feed
}

// WarmCache refreshes the default feed.
func (s *NewsService) WarmCache() {
	if s.cache == nil {
		return
	}
	s.cache.Clear()
	s.Feed("finance", 10)
	s.logger.Info("news cache warmed")
}

// Start schedules hourly cache warming. Without a cache or context there
// is nothing to run and Start is a no-op.
func (s *NewsService) Start() error {
	if s.cache == nil || s.ctx == nil {
		return nil
	}

	warm, err := tickerScheduler.New(
		tickerScheduler.WithName("news-cache-warm"),
		tickerScheduler.WithContext(s.ctx),
		tickerScheduler.WithLogger(s.logger),
		tickerScheduler.WithInterval(scheduler.IntervalHourly),
		tickerScheduler.WithJob(func() error {
			s.WarmCache()
			return nil
		}),
	)
	if err != nil {
		return errors.Wrap(err, "failed to create warm scheduler")
	}
	s.scheduler = warm

	s.WarmCache()
	return s.scheduler.Start()
}

func (s *NewsService) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *NewsService) fetchNews(category string, limit int) []NewsItem {
	raw, err := s.articles.FetchArticles(category, limit)
	if err != nil {
		s.logger.Warn("news provider unavailable", "category", category, "error", err)
		return []NewsItem{}
	}

	items := make([]NewsItem, 0, len(raw))
	for i, a := range raw {
		items = append(items, NewsItem{
			ID:       fmt.Sprintf("%s-%d", category, i+1),
			Title:    a.Title,
			Summary:  summarize(a),
			Source:   a.Source,
			Time:     a.PublishedAt,
			Category: categorize(a.Title + " " + a.Description),
			Impact:   sentiment(a.Title + " " + a.Description),
			URL:      a.URL,
			Author:   a.Author,
		})
	}
	return items
}

func (s *NewsService) fetchMarketData() []markets.Index {
	if s.indexes == nil {
		return markets.FallbackIndexes()
	}
	indexes, err := s.indexes.FetchIndexes()
	if err != nil || len(indexes) == 0 {
		s.logger.Warn("market data unavailable, using static quotes", "error", err)
		return markets.FallbackIndexes()
	}
	return indexes
}

// summarize prefers the description, falls back to content, then title.
func summarize(a news.Article) string {
	text := a.Description
	if text == "" {
		text = a.Content
	}
	if text == "" {
		text = a.Title
	}
	if len(text) > 200 {
		// cut on a rune boundary so a multibyte character is never split
		cut := 200
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "..."
	}
	return text
}

var categoryKeywords = map[string][]string{
	"stock":       {"stock", "share", "equity", "nasdaq", "dow", "s&p"},
	"crypto":      {"bitcoin", "crypto", "ethereum", "blockchain", "token"},
	"real_estate": {"real estate", "property", "housing", "mortgage"},
	"policy":      {"fed", "central bank", "interest rate", "policy", "regulation", "tariff"},
	"tech":        {"tech", "ai", "software", "chip", "semiconductor"},
}

func categorize(text string) string {
	lower := strings.ToLower(text)
	for category, keywords := range categoryKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return category
			}
		}
	}
	return "finance"
}

var positiveKeywords = []string{"surge", "rally", "gain", "rise", "growth", "record", "beat", "jump", "soar"}

var negativeKeywords = []string{"fall", "drop", "plunge", "loss", "decline", "crash", "slump", "fear", "cut", "miss"}

func sentiment(text string) string {
	lower := strings.ToLower(text)
	score := 0
	for _, kw := range positiveKeywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			score--
		}
	}
	switch {
	case score > 0:
		return "positive"
	case score < 0:
		return "negative"
	default:
		return "neutral"
	}
}

const maxRecommendations = 5

func buildRecommendations(items []NewsItem, indexes []markets.Index) []Recommendation {
	var positive, negative, up, down int
	for _, item := range items {
		switch item.Impact {
		case "positive":
			positive++
		case "negative":
			negative++
		}
	}
	for _, idx := range indexes {
		switch idx.Trend {
		case "up":
			up++
		case "down":
			down++
		}
	}

	recs := []Recommendation{}

	if positive > negative && up > down {
		recs = append(recs, Recommendation{
			Title:       "Consider adding to positions",
			Description: "News sentiment and index trends are both positive",
			Category:    "opportunity",
		})
	}
	if negative > positive {
		recs = append(recs, Recommendation{
			Title:       "Stay cautious",
			Description: "Negative headlines dominate; avoid large new commitments",
			Category:    "risk",
		})
	}

	// headline-driven suggestions only consider the top of the feed
	top := items
	if len(top) > 3 {
		top = top[:3]
	}
	for _, item := range top {
		lower := strings.ToLower(item.Title)
		switch {
		case strings.Contains(lower, "rate cut"):
			recs = append(recs, Recommendation{
				Title:       "Watch bank and dividend stocks",
				Description: "Rate cuts tend to favor financials and yield plays",
				Category:    "sector",
			})
		case strings.Contains(lower, "ev") || strings.Contains(lower, "new energy"):
			recs = append(recs, Recommendation{
				Title:       "Review clean energy exposure",
				Description: "Headlines point at movement in the new energy sector",
				Category:    "sector",
			})
		case strings.Contains(lower, "real estate") || strings.Contains(lower, "housing"):
			recs = append(recs, Recommendation{
				Title:       "Treat property exposure carefully",
				Description: "Real estate headlines suggest elevated sector uncertainty",
				Category:    "sector",
			})
		}
	}

	if len(recs) == 0 {
		recs = append(recs, Recommendation{
			Title:       "Diversify holdings",
			Description: "No strong signal either way; spreading risk remains sound",
			Category:    "general",
		})
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
