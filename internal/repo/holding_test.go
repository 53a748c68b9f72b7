package repo

import (
	"testing"

	"finboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestClosePrice(t *testing.T) {
	r := setupTestRepo(t)

	holding := &models.Holding{
		UserID: 1, AccountID: 1,
		ProductName: "Tech Index Fund", AssetType: "FUND",
		Quantity: 1000, UnitCost: 25.0,
	}
	require.NoError(t, r.CreateHolding(holding))

	require.NoError(t, r.CreateHoldingPrice(&models.HoldingPrice{
		HoldingID: holding.ID, PriceDate: date(2026, 8, 1), ClosePrice: 26.2,
	}))
	require.NoError(t, r.CreateHoldingPrice(&models.HoldingPrice{
		HoldingID: holding.ID, PriceDate: date(2026, 8, 20), ClosePrice: 27.1,
	}))
	require.NoError(t, r.CreateHoldingPrice(&models.HoldingPrice{
		HoldingID: holding.ID, PriceDate: date(2026, 8, 10), ClosePrice: 24.9,
	}))

	price, ok, err := r.LatestClosePrice(holding.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 27.1, price)
}

func TestLatestClosePrice_NoSeries(t *testing.T) {
	r := setupTestRepo(t)

	price, ok, err := r.LatestClosePrice(42)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, price)
}

func TestGetHoldings_ScopedToOwner(t *testing.T) {
	r := setupTestRepo(t)

	require.NoError(t, r.CreateHolding(&models.Holding{UserID: 1, AccountID: 1, ProductName: "A", AssetType: "STOCK", Quantity: 10, UnitCost: 5}))
	require.NoError(t, r.CreateHolding(&models.Holding{UserID: 2, AccountID: 1, ProductName: "B", AssetType: "BOND", Quantity: 10, UnitCost: 5}))

	holdings, err := r.GetHoldings(1)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, "A", holdings[0].ProductName)
}

func TestTotalBalance(t *testing.T) {
	r := setupTestRepo(t)

	require.NoError(t, r.CreateAccount(&models.Account{UserID: 1, Name: "Checking", CurrentBalance: 1200.5}))
	require.NoError(t, r.CreateAccount(&models.Account{UserID: 1, Name: "Savings", CurrentBalance: 8000}))
	require.NoError(t, r.CreateAccount(&models.Account{UserID: 2, Name: "Other", CurrentBalance: 999}))

	total, err := r.TotalBalance(1)
	require.NoError(t, err)
	assert.Equal(t, 9200.5, total)
}

func TestResolveCategory(t *testing.T) {
	r := setupTestRepo(t)
	seedCategory(t, r, "Food", models.FlowSpending)

	category, err := r.ResolveCategory("Food")
	require.NoError(t, err)
	assert.Equal(t, models.FlowSpending, category.FlowType)

	_, err = r.ResolveCategory("Nonexistent")
	require.Error(t, err)
}
