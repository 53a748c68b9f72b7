package controller

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"time"

	"finboard/internal/models"
	"finboard/internal/repo"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const txnDateLayout = "2006-01-02"

// parseTxnDate keeps only the date part of an ISO timestamp.
func parseTxnDate(value string) (time.Time, error) {
	if len(value) > 10 {
		value = value[:10]
	}
	return time.Parse(txnDateLayout, value)
}

// ListTransactions godoc
// @Summary List transactions
// @Description Paginated transactions filtered by category, type and date range
// @Tags transactions
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Param category query string false "Category name"
// @Param type query string false "income or expense"
// @Param startDate query string false "ISO date lower bound"
// @Param endDate query string false "ISO date upper bound"
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/transactions [get]
func (c *Controller) ListTransactions(ctx *gin.Context) {
	userID := callerID(ctx)

	filter := repo.TransactionFilter{UserID: userID, Page: 1, Limit: 20}
	if page, err := strconv.Atoi(ctx.Query("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(ctx.Query("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	filter.Category = ctx.Query("category")
	if apiType := ctx.Query("type"); apiType != "" {
		filter.FlowType = storedFlowType(apiType)
	}
	if start := ctx.Query("startDate"); start != "" {
		if parsed, err := parseTxnDate(start); err == nil {
			filter.StartDate = &parsed
		}
	}
	if end := ctx.Query("endDate"); end != "" {
		if parsed, err := parseTxnDate(end); err == nil {
			filter.EndDate = &parsed
		}
	}

	result, err := c.repo.ListTransactions(filter)
	if err != nil {
		internalError(ctx, "failed to list transactions", err)
		return
	}

	transactions := make([]gin.H, 0, len(result.Rows))
	for _, row := range result.Rows {
		transactions = append(transactions, transactionJSON(row))
	}

	totalPages := int(math.Ceil(float64(result.Total) / float64(result.Limit)))

	respondOK(ctx, gin.H{
		"transactions": transactions,
		"pagination": gin.H{
			"page":       result.Page,
			"limit":      result.Limit,
			"total":      result.Total,
			"totalPages": totalPages,
		},
	}, "transactions retrieved")
}

type createTransactionRequest struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param body body createTransactionRequest true "Transaction data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/transactions [post]
func (c *Controller) CreateTransaction(ctx *gin.Context) {
	userID := callerID(ctx)

	var req createTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid input: "+err.Error())
		return
	}

	category, err := c.repo.ResolveCategory(req.Category)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		badRequest(ctx, "unknown category: "+req.Category)
		return
	}
	if err != nil {
		internalError(ctx, "failed to resolve category", err)
		return
	}

	txnDate, err := parseTxnDate(req.Date)
	if err != nil {
		badRequest(ctx, "invalid date: "+req.Date)
		return
	}

	tx := &models.Transaction{
		UserID:      userID,
		AccountID:   1, // single-account assumption pending account selection
		CategoryID:  category.ID,
		TxnDate:     txnDate,
		FlowType:    storedFlowType(req.Type),
		Amount:      math.Abs(req.Amount),
		Description: req.Description,
	}
	if err := c.repo.CreateTransaction(tx); err != nil {
		internalError(ctx, "failed to create transaction", err)
		return
	}

	if c.txEvents != nil {
		if data, err := json.Marshal(tx); err == nil {
			if pubErr := c.txEvents.Publish(data); pubErr != nil {
				c.logger.Error("failed to publish transaction created event", "error", pubErr)
			}
		}
	}

	respondCreated(ctx, gin.H{"id": tx.ID}, "transaction created")
}

type updateTransactionRequest struct {
	Type        *string  `json:"type"`
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
	Description *string  `json:"description"`
}

// UpdateTransaction godoc
// @Summary Partially update a transaction
// @Description Only the supplied fields change; unknown category names fail closed
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param body body updateTransactionRequest true "Fields to change"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/transactions/{id} [put]
func (c *Controller) UpdateTransaction(ctx *gin.Context) {
	userID := callerID(ctx)

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "invalid transaction id")
		return
	}

	var req updateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid input: "+err.Error())
		return
	}

	fields := map[string]any{}
	if req.Category != nil {
		category, err := c.repo.ResolveCategory(*req.Category)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			badRequest(ctx, "unknown category: "+*req.Category)
			return
		}
		if err != nil {
			internalError(ctx, "failed to resolve category", err)
			return
		}
		fields["category_id"] = category.ID
	}
	if req.Amount != nil {
		fields["amount"] = math.Abs(*req.Amount)
	}
	if req.Type != nil {
		fields["flow_type"] = storedFlowType(*req.Type)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Date != nil {
		txnDate, err := parseTxnDate(*req.Date)
		if err != nil {
			badRequest(ctx, "invalid date: "+*req.Date)
			return
		}
		fields["txn_date"] = txnDate
	}

	if len(fields) == 0 {
		respondOK(ctx, nil, "nothing to update")
		return
	}

	affected, err := c.repo.UpdateTransactionFields(id, userID, fields)
	if err != nil {
		internalError(ctx, "failed to update transaction", err)
		return
	}
	if affected == 0 {
		notFound(ctx, "transaction not found")
		return
	}

	respondOK(ctx, nil, "transaction updated")
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/transactions/{id} [delete]
func (c *Controller) DeleteTransaction(ctx *gin.Context) {
	userID := callerID(ctx)

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "invalid transaction id")
		return
	}

	affected, err := c.repo.DeleteTransaction(id, userID)
	if err != nil {
		internalError(ctx, "failed to delete transaction", err)
		return
	}
	if affected == 0 {
		notFound(ctx, "transaction not found")
		return
	}

	respondOK(ctx, nil, "transaction deleted")
}
