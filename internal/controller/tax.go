package controller

import (
	"math"

	"finboard/internal/models"

	"github.com/gin-gonic/gin"
)

// Deduction is a candidate deduction item with its claim status.
type Deduction struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// TaxRecommendation is a rule-based planning suggestion.
type TaxRecommendation struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Savings     float64 `json:"savings"`
	Priority    string  `json:"priority"`
}

// taxEstimate is the result of the flat-rate estimation over a calendar
// year of income.
type taxEstimate struct {
	AnnualIncome  float64
	TaxableIncome float64
	Rate          float64
	EstimatedTax  float64
	PaidTax       float64
	Difference    float64
	Status        string
	Deductions    []Deduction
}

// taxRateFor maps annual taxable income to a flat percentage. The whole
// amount is taxed at the bracket rate; these are not marginal brackets.
func taxRateFor(taxableIncome float64) float64 {
	switch {
	case taxableIncome <= 36000:
		return 3
	case taxableIncome <= 144000:
		return 10
	case taxableIncome <= 300000:
		return 20
	case taxableIncome <= 420000:
		return 25
	case taxableIncome <= 660000:
		return 30
	case taxableIncome <= 960000:
		return 35
	default:
		return 45
	}
}

// defaultDeductions is a static catalogue; only "available" items reduce
// taxable income.
func defaultDeductions() []Deduction {
	return []Deduction{
		{Name: "Mortgage Interest", Amount: 12000, Status: "available"},
		{Name: "Child Education", Amount: 8000, Status: "available"},
		{Name: "Elderly Care", Amount: 6000, Status: "available"},
		{Name: "Continuing Education", Amount: 4000, Status: "pending"},
		{Name: "Medical Expenses", Amount: 15000, Status: "unavailable"},
	}
}

func estimateTax(annualIncome, paidTax float64, deductions []Deduction) taxEstimate {
	var deducted float64
	for _, d := range deductions {
		if d.Status == "available" {
			deducted += d.Amount
		}
	}

	taxableIncome := annualIncome - deducted
	if taxableIncome < 0 {
		taxableIncome = 0
	}

	rate := taxRateFor(taxableIncome)
	estimated := round2(taxableIncome * rate / 100)
	difference := round2(estimated - paidTax)

	status := "balanced"
	switch {
	case difference > 0:
		status = "underpaid"
	case difference < 0:
		status = "overpaid"
	}

	return taxEstimate{
		AnnualIncome:  annualIncome,
		TaxableIncome: taxableIncome,
		Rate:          rate,
		EstimatedTax:  estimated,
		PaidTax:       paidTax,
		Difference:    difference,
		Status:        status,
		Deductions:    deductions,
	}
}

func taxRecommendations(est taxEstimate) []TaxRecommendation {
	var deducted float64
	for _, d := range est.Deductions {
		if d.Status == "available" {
			deducted += d.Amount
		}
	}

	recs := []TaxRecommendation{}

	if est.AnnualIncome > 100000 && deducted < 20000 {
		contribution := math.Min(12000, est.AnnualIncome*0.1)
		recs = append(recs, TaxRecommendation{
			Title:       "Increase retirement contributions",
			Description: "Contributing to a tax-deferred retirement account lowers taxable income",
			Savings:     math.Round(contribution * 0.2),
			Priority:    "high",
		})
	}

	if est.Difference > 5000 {
		donation := math.Min(5000, est.Difference)
		recs = append(recs, TaxRecommendation{
			Title:       "Charitable donations",
			Description: "Qualifying donations are deductible and shrink the amount still owed",
			Savings:     math.Round(donation * 0.15),
			Priority:    "medium",
		})
	}

	if est.TaxableIncome > 50000 {
		recs = append(recs, TaxRecommendation{
			Title:       "Harvest investment losses",
			Description: "Realized losses can offset investment gains recognized this year",
			Savings:     0,
			Priority:    "low",
		})
	}

	if est.AnnualIncome > 150000 {
		recs = append(recs, TaxRecommendation{
			Title:       "Review bonus timing",
			Description: "Shifting a year-end bonus across the bracket boundary can lower the applied rate",
			Savings:     1200,
			Priority:    "medium",
		})
	}

	return recs
}

// tax payments are recognized by category name, not flow type
var taxCategories = []string{"Tax", "Personal Income Tax", "Corporate Income Tax"}

// GetTaxes godoc
// @Summary Year-to-date tax estimate
// @Description Flat-rate estimate over the calendar year's income with deductions and planning suggestions
// @Tags taxes
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/tax [get]
func (c *Controller) GetTaxes(ctx *gin.Context) {
	userID := callerID(ctx)
	first, next := yearWindow(c.now())

	annualIncome, err := c.repo.SumAmount(userID, models.FlowIncome, first, next)
	if err != nil {
		internalError(ctx, "failed to load annual income", err)
		return
	}

	paidTax, err := c.repo.SumAmountForCategories(userID, models.FlowSpending, taxCategories, first, next)
	if err != nil {
		internalError(ctx, "failed to load paid tax", err)
		return
	}

	est := estimateTax(annualIncome, paidTax, defaultDeductions())

	respondOK(ctx, gin.H{
		"annualIncome":     round2(est.AnnualIncome),
		"estimatedTaxRate": round1(est.Rate),
		"paidTax":          round2(est.PaidTax),
		"estimatedTax":     est.EstimatedTax,
		"difference":       est.Difference,
		"status":           est.Status,
		"deductions":       est.Deductions,
		"recommendations":  taxRecommendations(est),
	}, "tax data retrieved")
}
