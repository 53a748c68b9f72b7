package repo

import (
	"time"

	"finboard/internal/models"

	"gorm.io/gorm/clause"
)

// BudgetRow is a budget joined with its category name.
type BudgetRow struct {
	ID         int64   `json:"id"`
	CategoryID int64   `json:"category_id"`
	Category   string  `json:"category"`
	Budgeted   float64 `json:"budgeted"`
}

func (r *Repository) BudgetsForPeriod(userID int64, periodStart time.Time) ([]BudgetRow, error) {
	var rows []BudgetRow
	if err := r.db.Model(&models.Budget{}).
		Joins("JOIN categories ON categories.category_id = budgets.category_id").
		Where("budgets.user_id = ? AND budgets.period_start = ?", userID, periodStart).
		Select("budgets.budget_id AS id, budgets.category_id, categories.name AS category, budgets.budget_amount AS budgeted").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// UpsertBudget writes the budget for (user, category, period) as a single
// conflict-aware insert, closing the update-then-insert race window.
func (r *Repository) UpsertBudget(userID, categoryID int64, periodStart time.Time, amount float64) error {
	budget := models.Budget{
		UserID:       userID,
		CategoryID:   categoryID,
		PeriodStart:  periodStart,
		BudgetAmount: amount,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "category_id"},
			{Name: "period_start"},
		},
		DoUpdates: clause.Assignments(map[string]any{"budget_amount": amount}),
	}).Create(&budget).Error
}
