package controller

import (
	"math"
	"strconv"
	"strings"
	"time"

	"finboard/internal/models"
	"finboard/internal/repo"

	"github.com/gin-gonic/gin"
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// monthWindow returns the first day of now's month and the first day of
// the next month; queries treat the window as [first, next).
func monthWindow(now time.Time) (time.Time, time.Time) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return first, first.AddDate(0, 1, 0)
}

func yearWindow(now time.Time) (time.Time, time.Time) {
	first := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	return first, first.AddDate(1, 0, 0)
}

// signedAmount applies the display convention: spending renders as the
// negative of the stored magnitude, income as positive.
func signedAmount(row repo.TransactionRow) float64 {
	if row.FlowType == models.FlowSpending {
		return -row.Amount
	}
	return row.Amount
}

func apiFlowType(flowType string) string {
	if flowType == models.FlowIncome {
		return "income"
	}
	return "expense"
}

func storedFlowType(apiType string) string {
	if apiType == "income" {
		return models.FlowIncome
	}
	return models.FlowSpending
}

func transactionJSON(row repo.TransactionRow) gin.H {
	return gin.H{
		"id":          row.ID,
		"userId":      row.UserID,
		"amount":      signedAmount(row),
		"type":        apiFlowType(row.FlowType),
		"category":    row.Category,
		"description": row.Description,
		"date":        row.TxnDate.Format("2006-01-02"),
		"tags":        []string{},
		"location":    nil,
	}
}

// BudgetProgress is one category's spend against its budget for the
// current month. Remaining may go negative; overspend is not clamped.
type BudgetProgress struct {
	Category   string  `json:"category"`
	Budgeted   float64 `json:"budgeted"`
	Spent      float64 `json:"spent"`
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining"`
}

// budgetProgress folds this month's budgets with their transaction sums.
// The budget and dashboard endpoints both call it, so the two views
// cannot drift.
func (c *Controller) budgetProgress(userID int64, now time.Time) ([]BudgetProgress, error) {
	first, next := monthWindow(now)

	budgets, err := c.repo.BudgetsForPeriod(userID, first)
	if err != nil {
		return nil, err
	}

	progress := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		spent, err := c.repo.SpentByCategory(userID, b.CategoryID, first, next)
		if err != nil {
			return nil, err
		}

		var pct float64
		if b.Budgeted != 0 {
			pct = round2(spent / b.Budgeted * 100)
		}

		progress = append(progress, BudgetProgress{
			Category:   b.Category,
			Budgeted:   b.Budgeted,
			Spent:      spent,
			Percentage: pct,
			Remaining:  b.Budgeted - spent,
		})
	}

	return progress, nil
}

// Position is one holding valued at its latest known close price; a
// missing price series degrades to the purchase price, never an error.
type Position struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Amount         float64 `json:"amount"`
	Shares         float64 `json:"shares"`
	PurchasePrice  float64 `json:"purchasePrice"`
	CurrentPrice   float64 `json:"currentPrice"`
	PurchaseDate   string  `json:"purchaseDate"`
	RiskLevel      string  `json:"riskLevel"`
	ExpectedReturn float64 `json:"expectedReturn"`
	Return         float64 `json:"return"`
	CurrentValue   float64 `json:"currentValue"`
}

type portfolioTotals struct {
	invested float64
	current  float64
	gain     float64
}

// holdings carry no purchase date column; reads render this placeholder.
const placeholderPurchaseDate = "2023-06-01T00:00:00Z"

// portfolioPositions values every holding for the user. The investment
// and dashboard endpoints share it.
func (c *Controller) portfolioPositions(userID int64) ([]Position, portfolioTotals, error) {
	holdings, err := c.repo.GetHoldings(userID)
	if err != nil {
		return nil, portfolioTotals{}, err
	}

	positions := make([]Position, 0, len(holdings))
	var totals portfolioTotals

	for _, h := range holdings {
		currentPrice := h.UnitCost
		if latest, ok, err := c.repo.LatestClosePrice(h.ID); err != nil {
			return nil, portfolioTotals{}, err
		} else if ok {
			currentPrice = latest
		}

		purchaseValue := h.UnitCost * h.Quantity
		currentValue := currentPrice * h.Quantity
		gain := currentValue - purchaseValue

		var returnPct float64
		if purchaseValue != 0 {
			returnPct = round1(gain / purchaseValue * 100)
		}

		positions = append(positions, Position{
			ID:             strconv.FormatInt(h.ID, 10),
			UserID:         strconv.FormatInt(h.UserID, 10),
			Name:           h.ProductName,
			Type:           strings.ToLower(h.AssetType),
			Amount:         purchaseValue,
			Shares:         h.Quantity,
			PurchasePrice:  h.UnitCost,
			CurrentPrice:   currentPrice,
			PurchaseDate:   placeholderPurchaseDate,
			RiskLevel:      riskLevelFor(h.AssetType),
			ExpectedReturn: expectedReturnFor(h.AssetType),
			Return:         returnPct,
			CurrentValue:   round2(currentValue),
		})

		totals.invested += purchaseValue
		totals.current += currentValue
		totals.gain += gain
	}

	return positions, totals, nil
}
