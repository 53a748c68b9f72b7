package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxRateBrackets(t *testing.T) {
	cases := []struct {
		income float64
		rate   float64
	}{
		{0, 3},
		{36000, 3},
		{36001, 10},
		{144000, 10},
		{144001, 20},
		{300000, 20},
		{420000, 25},
		{660000, 30},
		{960000, 35},
		{960001, 45},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.rate, taxRateFor(tc.income), "income %.0f", tc.income)
	}
}

func TestEstimateTax_NoDeductions(t *testing.T) {
	est := estimateTax(80000, 5000, nil)

	assert.Equal(t, 80000.0, est.TaxableIncome)
	assert.Equal(t, 10.0, est.Rate)
	assert.Equal(t, 8000.0, est.EstimatedTax)
	assert.Equal(t, 3000.0, est.Difference)
	assert.Equal(t, "underpaid", est.Status)
}

func TestEstimateTax_DeductionStatuses(t *testing.T) {
	deductions := []Deduction{
		{Name: "Mortgage Interest", Amount: 12000, Status: "available"},
		{Name: "Continuing Education", Amount: 4000, Status: "pending"},
		{Name: "Medical Expenses", Amount: 15000, Status: "unavailable"},
	}

	// only the available item reduces taxable income
	est := estimateTax(48000, 0, deductions)
	assert.Equal(t, 36000.0, est.TaxableIncome)
	assert.Equal(t, 3.0, est.Rate)
	assert.Equal(t, 1080.0, est.EstimatedTax)
}

func TestEstimateTax_OverpaidAndSettled(t *testing.T) {
	est := estimateTax(30000, 2000, nil)
	assert.Equal(t, "overpaid", est.Status)
	assert.Equal(t, -1100.0, est.Difference)

	est = estimateTax(30000, 900, nil)
	assert.Equal(t, "balanced", est.Status)
	assert.Zero(t, est.Difference)
}

func TestEstimateTax_DeductionsExceedIncome(t *testing.T) {
	est := estimateTax(10000, 0, defaultDeductions())
	assert.Zero(t, est.TaxableIncome)
	assert.Zero(t, est.EstimatedTax)
}

func TestTaxRecommendations_Rules(t *testing.T) {
	// high income with little deducted triggers the retirement suggestion
	est := estimateTax(200000, 0, nil)
	recs := taxRecommendations(est)
	require.NotEmpty(t, recs)

	titles := make(map[string]TaxRecommendation, len(recs))
	for _, r := range recs {
		titles[r.Title] = r
	}

	retirement, ok := titles["Increase retirement contributions"]
	require.True(t, ok)
	assert.Equal(t, "high", retirement.Priority)
	assert.Equal(t, 2400.0, retirement.Savings) // min(12000, 20000) * 0.2

	donation, ok := titles["Charitable donations"]
	require.True(t, ok)
	assert.Equal(t, 750.0, donation.Savings) // 5000 * 0.15

	_, ok = titles["Harvest investment losses"]
	assert.True(t, ok)
	_, ok = titles["Review bonus timing"]
	assert.True(t, ok)
}

func TestTaxRecommendations_FallbackEmpty(t *testing.T) {
	est := estimateTax(20000, 600, nil)
	assert.Empty(t, taxRecommendations(est))
}
