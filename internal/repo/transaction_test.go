package repo

import (
	"testing"
	"time"

	"finboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTransaction(t *testing.T, r *Repository, userID, categoryID int64, flowType string, amount float64, txnDate time.Time) *models.Transaction {
	tx := &models.Transaction{
		UserID:     userID,
		AccountID:  1,
		CategoryID: categoryID,
		TxnDate:    txnDate,
		FlowType:   flowType,
		Amount:     amount,
	}
	require.NoError(t, r.CreateTransaction(tx))
	return tx
}

func TestListTransactions_Filters(t *testing.T) {
	r := setupTestRepo(t)
	food := seedCategory(t, r, "Food", models.FlowSpending)
	salary := seedCategory(t, r, "Salary", models.FlowIncome)

	seedTransaction(t, r, 1, food.ID, models.FlowSpending, 50, date(2026, 8, 10))
	seedTransaction(t, r, 1, food.ID, models.FlowSpending, 30, date(2026, 8, 20))
	seedTransaction(t, r, 1, salary.ID, models.FlowIncome, 5000, date(2026, 8, 1))
	seedTransaction(t, r, 2, food.ID, models.FlowSpending, 99, date(2026, 8, 10))

	result, err := r.ListTransactions(TransactionFilter{UserID: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 3, result.Total)

	result, err = r.ListTransactions(TransactionFilter{UserID: 1, Category: "Food"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.Total)
	for _, row := range result.Rows {
		assert.Equal(t, "Food", row.Category)
	}

	result, err = r.ListTransactions(TransactionFilter{UserID: 1, FlowType: models.FlowIncome})
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)

	start := date(2026, 8, 15)
	result, err = r.ListTransactions(TransactionFilter{UserID: 1, StartDate: &start})
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Total)
	assert.Equal(t, 30.0, result.Rows[0].Amount)
}

func TestListTransactions_Pagination(t *testing.T) {
	r := setupTestRepo(t)
	food := seedCategory(t, r, "Food", models.FlowSpending)

	for i := 0; i < 5; i++ {
		seedTransaction(t, r, 1, food.ID, models.FlowSpending, float64(i+1), date(2026, 8, i+1))
	}

	result, err := r.ListTransactions(TransactionFilter{UserID: 1, Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, result.Total)
	assert.Equal(t, 2, result.Page)
	assert.Len(t, result.Rows, 2)

	// newest first: page 2 holds days 3 and 2
	assert.Equal(t, date(2026, 8, 3), result.Rows[0].TxnDate)
	assert.Equal(t, date(2026, 8, 2), result.Rows[1].TxnDate)
}

func TestListTransactions_Empty(t *testing.T) {
	r := setupTestRepo(t)

	result, err := r.ListTransactions(TransactionFilter{UserID: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 0, result.Total)
	assert.Empty(t, result.Rows)
	assert.Equal(t, 20, result.Limit)
	assert.Equal(t, 1, result.Page)
}

func TestUpdateTransactionFields_Partial(t *testing.T) {
	r := setupTestRepo(t)
	food := seedCategory(t, r, "Food", models.FlowSpending)
	tx := seedTransaction(t, r, 1, food.ID, models.FlowSpending, 50, date(2026, 8, 10))

	affected, err := r.UpdateTransactionFields(tx.ID, 1, map[string]any{"amount": 75.0})
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err := r.GetTransactionByID(tx.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 75.0, got.Amount)
	assert.Equal(t, models.FlowSpending, got.FlowType)
	assert.Equal(t, food.ID, got.CategoryID)
}

func TestUpdateTransactionFields_WrongOwner(t *testing.T) {
	r := setupTestRepo(t)
	food := seedCategory(t, r, "Food", models.FlowSpending)
	tx := seedTransaction(t, r, 1, food.ID, models.FlowSpending, 50, date(2026, 8, 10))

	affected, err := r.UpdateTransactionFields(tx.ID, 2, map[string]any{"amount": 75.0})
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestDeleteTransaction_ScopedToOwner(t *testing.T) {
	r := setupTestRepo(t)
	food := seedCategory(t, r, "Food", models.FlowSpending)
	tx := seedTransaction(t, r, 1, food.ID, models.FlowSpending, 50, date(2026, 8, 10))

	affected, err := r.DeleteTransaction(tx.ID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	affected, err = r.DeleteTransaction(tx.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	_, err = r.GetTransactionByID(tx.ID, 1)
	require.Error(t, err)
}

func TestSumAmount_ByFlowAndWindow(t *testing.T) {
	r := setupTestRepo(t)
	food := seedCategory(t, r, "Food", models.FlowSpending)
	salary := seedCategory(t, r, "Salary", models.FlowIncome)

	seedTransaction(t, r, 1, salary.ID, models.FlowIncome, 5000, date(2026, 8, 1))
	seedTransaction(t, r, 1, food.ID, models.FlowSpending, 120, date(2026, 8, 5))
	seedTransaction(t, r, 1, food.ID, models.FlowSpending, 80, date(2026, 7, 5))

	income, err := r.SumAmount(1, models.FlowIncome, date(2026, 8, 1), date(2026, 9, 1))
	require.NoError(t, err)
	assert.Equal(t, 5000.0, income)

	spending, err := r.SumAmount(1, models.FlowSpending, date(2026, 8, 1), date(2026, 9, 1))
	require.NoError(t, err)
	assert.Equal(t, 120.0, spending)
}

func TestSumAmountForCategories(t *testing.T) {
	r := setupTestRepo(t)
	tax := seedCategory(t, r, "Tax", models.FlowSpending)
	incomeTax := seedCategory(t, r, "Personal Income Tax", models.FlowSpending)
	food := seedCategory(t, r, "Food", models.FlowSpending)

	seedTransaction(t, r, 1, tax.ID, models.FlowSpending, 1000, date(2026, 3, 1))
	seedTransaction(t, r, 1, incomeTax.ID, models.FlowSpending, 2500, date(2026, 6, 1))
	seedTransaction(t, r, 1, food.ID, models.FlowSpending, 300, date(2026, 6, 1))

	total, err := r.SumAmountForCategories(1, models.FlowSpending,
		[]string{"Tax", "Personal Income Tax", "Corporate Income Tax"},
		date(2026, 1, 1), date(2027, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 3500.0, total)
}

func TestRecentAndUpcomingTransactions(t *testing.T) {
	r := setupTestRepo(t)
	food := seedCategory(t, r, "Food", models.FlowSpending)
	rent := seedCategory(t, r, "Rent", models.FlowSpending)

	today := date(2026, 8, 15)
	seedTransaction(t, r, 1, food.ID, models.FlowSpending, 10, date(2026, 8, 10))
	seedTransaction(t, r, 1, food.ID, models.FlowSpending, 20, date(2026, 8, 14))
	seedTransaction(t, r, 1, rent.ID, models.FlowSpending, 900, date(2026, 8, 25))

	recent, err := r.RecentTransactions(1, 5)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, date(2026, 8, 25), recent[0].TxnDate)

	upcoming, err := r.UpcomingSpending(1, today, date(2026, 8, 31), 5)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Rent", upcoming[0].Category)
}
