package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type budgetItemRequest struct {
	Category string  `json:"category"`
	Budgeted float64 `json:"budgeted"`
}

type budgetUpdateRequest struct {
	Categories []budgetItemRequest `json:"categories"`
}

// GetBudget godoc
// @Summary Current month budget view
// @Description Budgets for the current calendar month with per-category spend and totals
// @Tags budget
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/budget [get]
func (c *Controller) GetBudget(ctx *gin.Context) {
	userID := callerID(ctx)

	progress, err := c.budgetProgress(userID, c.now())
	if err != nil {
		internalError(ctx, "failed to load budget", err)
		return
	}

	var totalBudget, totalSpent float64
	for _, p := range progress {
		totalBudget += p.Budgeted
		totalSpent += p.Spent
	}

	var overallPct float64
	if totalBudget != 0 {
		overallPct = round2(totalSpent / totalBudget * 100)
	}

	respondOK(ctx, gin.H{
		"monthlyBudget":     round2(totalBudget),
		"categories":        progress,
		"totalSpent":        round2(totalSpent),
		"totalRemaining":    round2(totalBudget - totalSpent),
		"overallPercentage": overallPct,
	}, "budget data retrieved")
}

// UpdateBudget godoc
// @Summary Set budgets for the current month
// @Description Upserts one budget row per category; unknown category names are skipped
// @Tags budget
// @Accept json
// @Produce json
// @Param body body budgetUpdateRequest true "Budget amounts by category"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/budget [put]
func (c *Controller) UpdateBudget(ctx *gin.Context) {
	userID := callerID(ctx)

	var req budgetUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid input: "+err.Error())
		return
	}

	periodStart, _ := monthWindow(c.now())

	for _, item := range req.Categories {
		category, err := c.repo.ResolveCategory(item.Category)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.logger.Warn("skipping unknown budget category", "category", item.Category)
			continue
		}
		if err != nil {
			internalError(ctx, "failed to resolve category", err)
			return
		}

		if err := c.repo.UpsertBudget(userID, category.ID, periodStart, item.Budgeted); err != nil {
			internalError(ctx, "failed to save budget", err)
			return
		}
	}

	respondOK(ctx, nil, "budget updated")
}
