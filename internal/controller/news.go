package controller

import (
	"strconv"

	"finboard/internal/service"

	"github.com/gin-gonic/gin"
)

// NewsFeeder assembles the news payload; provider failures inside it
// degrade to empty sections rather than errors.
type NewsFeeder interface {
	Feed(category string, limit int) service.Feed
}

// GetNews godoc
// @Summary Financial news feed
// @Description Articles for a category plus market index quotes and reading suggestions
// @Tags news
// @Produce json
// @Param category query string false "News category (default finance)"
// @Param limit query int false "Max articles (default 10, max 50)"
// @Success 200 {object} Envelope
// @Router /api/news [get]
func (c *Controller) GetNews(ctx *gin.Context) {
	category := ctx.DefaultQuery("category", "finance")

	limit := 10
	if parsed, err := strconv.Atoi(ctx.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}
	if limit > 50 {
		limit = 50
	}

	if c.feed == nil {
		respondOK(ctx, service.Feed{
			News:            []service.NewsItem{},
			MarketData:      nil,
			Recommendations: []service.Recommendation{},
		}, "news retrieved")
		return
	}

	respondOK(ctx, c.feed.Feed(category, limit), "news retrieved")
}
