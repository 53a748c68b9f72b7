package controller

import (
	"sort"
	"strings"

	"finboard/internal/models"

	"github.com/gin-gonic/gin"
)

// Illustrative constants keyed by asset type, not derived from market data.
var riskLevels = map[string]string{
	"STOCK":  "high",
	"BOND":   "low",
	"FUND":   "medium",
	"CRYPTO": "high",
	"OPTION": "high",
}

var expectedReturns = map[string]float64{
	"STOCK":  10.0,
	"BOND":   4.0,
	"FUND":   8.0,
	"CRYPTO": 15.0,
	"OPTION": 12.0,
}

func riskLevelFor(assetType string) string {
	if level, ok := riskLevels[strings.ToUpper(assetType)]; ok {
		return level
	}
	return "medium"
}

func expectedReturnFor(assetType string) float64 {
	if expected, ok := expectedReturns[strings.ToUpper(assetType)]; ok {
		return expected
	}
	return 8.0
}

var allocationCategories = map[string]string{
	"stock":  "Stocks",
	"bond":   "Bonds",
	"fund":   "Funds",
	"etf":    "ETFs",
	"crypto": "Cryptocurrency",
	"option": "Options",
}

func allocationCategory(assetType string) string {
	if name, ok := allocationCategories[assetType]; ok {
		return name
	}
	return assetType
}

// AllocationEntry buckets current value by asset type.
type AllocationEntry struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

func assetAllocation(positions []Position, totalValue float64) []AllocationEntry {
	if totalValue == 0 {
		return []AllocationEntry{}
	}

	byType := make(map[string]float64)
	for _, p := range positions {
		byType[p.Type] += p.CurrentValue
	}

	allocation := make([]AllocationEntry, 0, len(byType))
	for assetType, amount := range byType {
		allocation = append(allocation, AllocationEntry{
			Category:   allocationCategory(assetType),
			Percentage: round1(amount / totalValue * 100),
			Amount:     round2(amount),
		})
	}

	sort.Slice(allocation, func(i, j int) bool {
		return allocation[i].Amount > allocation[j].Amount
	})

	return allocation
}

// GetInvestments godoc
// @Summary Investment portfolio view
// @Description Per-holding valuation, portfolio summary and asset allocation
// @Tags investments
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/investments [get]
func (c *Controller) GetInvestments(ctx *gin.Context) {
	userID := callerID(ctx)

	positions, totals, err := c.portfolioPositions(userID)
	if err != nil {
		internalError(ctx, "failed to load portfolio", err)
		return
	}

	var totalReturnPct float64
	if totals.invested != 0 {
		totalReturnPct = round1(totals.gain / totals.invested * 100)
	}

	respondOK(ctx, gin.H{
		"portfolio": positions,
		"summary": gin.H{
			"totalValue":       round2(totals.current),
			"totalReturn":      round2(totals.gain),
			"returnPercentage": totalReturnPct,
			"totalInvested":    round2(totals.invested),
			"totalGain":        round2(totals.gain),
		},
		"assetAllocation": assetAllocation(positions, totals.current),
	}, "investment portfolio retrieved")
}

type createHoldingRequest struct {
	Name          *string  `json:"name"`
	Type          *string  `json:"type"`
	Amount        *float64 `json:"amount"`
	Shares        *float64 `json:"shares"`
	PurchasePrice *float64 `json:"purchasePrice"`
}

// CreateInvestment godoc
// @Summary Add a holding
// @Tags investments
// @Accept json
// @Produce json
// @Param body body createHoldingRequest true "Holding data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/investments [post]
func (c *Controller) CreateInvestment(ctx *gin.Context) {
	userID := callerID(ctx)

	var req createHoldingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid input: "+err.Error())
		return
	}

	switch {
	case req.Name == nil:
		badRequest(ctx, "missing required field: name")
		return
	case req.Type == nil:
		badRequest(ctx, "missing required field: type")
		return
	case req.Amount == nil:
		badRequest(ctx, "missing required field: amount")
		return
	case req.Shares == nil:
		badRequest(ctx, "missing required field: shares")
		return
	case req.PurchasePrice == nil:
		badRequest(ctx, "missing required field: purchasePrice")
		return
	}

	holding := &models.Holding{
		UserID:      userID,
		AccountID:   1, // single-account assumption pending account selection
		ProductName: *req.Name,
		AssetType:   strings.ToUpper(*req.Type),
		Quantity:    *req.Shares,
		UnitCost:    *req.PurchasePrice,
	}
	if err := c.repo.CreateHolding(holding); err != nil {
		internalError(ctx, "failed to add holding", err)
		return
	}

	respondCreated(ctx, gin.H{"id": holding.ID}, "holding added")
}
