package controller

import (
	"finboard/internal/models"

	"github.com/gin-gonic/gin"
)

// ListCategories godoc
// @Summary Category taxonomy
// @Description Category names grouped by flow direction, for budget and transaction forms
// @Tags categories
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/categories [get]
func (c *Controller) ListCategories(ctx *gin.Context) {
	categories, err := c.repo.GetAllCategories()
	if err != nil {
		internalError(ctx, "failed to load categories", err)
		return
	}

	income := []string{}
	expense := []string{}
	for _, category := range categories {
		if category.FlowType == models.FlowIncome {
			income = append(income, category.Name)
		} else {
			expense = append(expense, category.Name)
		}
	}

	respondOK(ctx, gin.H{"income": income, "expense": expense}, "categories retrieved")
}
