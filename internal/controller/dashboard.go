package controller

import (
	"finboard/internal/models"

	"github.com/gin-gonic/gin"
)

// Dashboard godoc
// @Summary Composite dashboard snapshot
// @Description Balances, monthly flows, budget progress, recent and upcoming transactions, investment summary
// @Tags dashboard
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/dashboard [get]
func (c *Controller) Dashboard(ctx *gin.Context) {
	userID := callerID(ctx)
	now := c.now()
	first, next := monthWindow(now)

	totalBalance, err := c.repo.TotalBalance(userID)
	if err != nil {
		internalError(ctx, "failed to load balances", err)
		return
	}

	monthlyIncome, err := c.repo.SumAmount(userID, models.FlowIncome, first, next)
	if err != nil {
		internalError(ctx, "failed to load monthly income", err)
		return
	}
	monthlyExpenses, err := c.repo.SumAmount(userID, models.FlowSpending, first, next)
	if err != nil {
		internalError(ctx, "failed to load monthly expenses", err)
		return
	}

	var savingsRate float64
	if monthlyIncome != 0 {
		savingsRate = round2((monthlyIncome - monthlyExpenses) / monthlyIncome * 100)
	}

	progress, err := c.budgetProgress(userID, now)
	if err != nil {
		internalError(ctx, "failed to load budget progress", err)
		return
	}

	recent, err := c.repo.RecentTransactions(userID, 5)
	if err != nil {
		internalError(ctx, "failed to load recent transactions", err)
		return
	}
	recentJSON := make([]gin.H, 0, len(recent))
	for _, row := range recent {
		recentJSON = append(recentJSON, transactionJSON(row))
	}

	// bills due: spending dated after today through the end of the month
	upcoming, err := c.repo.UpcomingSpending(userID, now, next.AddDate(0, 0, -1), 5)
	if err != nil {
		internalError(ctx, "failed to load upcoming bills", err)
		return
	}
	upcomingJSON := make([]gin.H, 0, len(upcoming))
	for _, row := range upcoming {
		upcomingJSON = append(upcomingJSON, transactionJSON(row))
	}

	positions, _, err := c.portfolioPositions(userID)
	if err != nil {
		internalError(ctx, "failed to load investments", err)
		return
	}

	respondOK(ctx, gin.H{
		"totalBalance":       totalBalance,
		"monthlyIncome":      monthlyIncome,
		"monthlyExpenses":    monthlyExpenses,
		"savingsRate":        savingsRate,
		"budgetProgress":     progress,
		"recentTransactions": recentJSON,
		"upcomingBills":      upcomingJSON,
		"investmentSummary":  positions,
		"goalProgress":       []gin.H{}, // goals have their own endpoint
	}, "dashboard data retrieved")
}
