package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"finboard/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// daysBetweenDates is a calendar-date difference; the time of day on
// either side does not shift the count.
func daysBetweenDates(from, to time.Time) int {
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDate.Sub(fromDate).Hours() / 24)
}

func goalJSON(g models.Goal, now time.Time) gin.H {
	var pct float64
	if g.TargetAmount != 0 {
		pct = round1(g.CurrentAmount / g.TargetAmount * 100)
	}

	remaining := g.TargetAmount - g.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}

	var deadline any
	daysRemaining := 0
	if g.Deadline != nil {
		deadline = g.Deadline.Format("2006-01-02") + "T00:00:00Z"
		if days := daysBetweenDates(now, *g.Deadline); days > 0 {
			daysRemaining = days
		}
	}

	return gin.H{
		"id":              strconv.FormatInt(g.ID, 10),
		"userId":          strconv.FormatInt(g.UserID, 10),
		"name":            g.GoalName,
		"type":            g.GoalType,
		"targetAmount":    g.TargetAmount,
		"currentAmount":   g.CurrentAmount,
		"deadline":        deadline,
		"priority":        strings.ToLower(g.Priority),
		"isActive":        g.IsActive,
		"percentage":      pct,
		"remainingAmount": remaining,
		"daysRemaining":   daysRemaining,
	}
}

// GetGoals godoc
// @Summary List savings goals
// @Description Goals ordered by priority then deadline, with aggregate statistics
// @Tags goals
// @Produce json
// @Success 200 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/goals [get]
func (c *Controller) GetGoals(ctx *gin.Context) {
	userID := callerID(ctx)
	now := c.now()

	goals, err := c.repo.GetGoals(userID)
	if err != nil {
		internalError(ctx, "failed to load goals", err)
		return
	}

	items := make([]gin.H, 0, len(goals))
	var activeGoals int
	var totalTarget, totalCurrent float64
	for _, g := range goals {
		items = append(items, goalJSON(g, now))
		if g.IsActive {
			activeGoals++
		}
		totalTarget += g.TargetAmount
		totalCurrent += g.CurrentAmount
	}

	var averageProgress float64
	if totalTarget != 0 {
		averageProgress = round1(totalCurrent / totalTarget * 100)
	}

	respondOK(ctx, gin.H{
		"goals": items,
		"statistics": gin.H{
			"totalGoals":         len(goals),
			"activeGoals":        activeGoals,
			"totalTargetAmount":  round2(totalTarget),
			"totalCurrentAmount": round2(totalCurrent),
			"averageProgress":    averageProgress,
		},
	}, "goals retrieved")
}

type createGoalRequest struct {
	Name         *string  `json:"name"`
	Type         *string  `json:"type"`
	TargetAmount *float64 `json:"targetAmount"`
	Deadline     *string  `json:"deadline"`
	Priority     *string  `json:"priority"`
}

func parseGoalDeadline(value string) (time.Time, error) {
	value = strings.TrimSuffix(value, "Z")
	if parsed, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// CreateGoal godoc
// @Summary Create a savings goal
// @Description New goals start at zero progress regardless of the request body
// @Tags goals
// @Accept json
// @Produce json
// @Param body body createGoalRequest true "Goal data"
// @Success 201 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/goals [post]
func (c *Controller) CreateGoal(ctx *gin.Context) {
	userID := callerID(ctx)

	var req createGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid input: "+err.Error())
		return
	}

	switch {
	case req.Name == nil:
		badRequest(ctx, "missing required field: name")
		return
	case req.Type == nil:
		badRequest(ctx, "missing required field: type")
		return
	case req.TargetAmount == nil:
		badRequest(ctx, "missing required field: targetAmount")
		return
	case req.Deadline == nil:
		badRequest(ctx, "missing required field: deadline")
		return
	case req.Priority == nil:
		badRequest(ctx, "missing required field: priority")
		return
	}

	deadline, err := parseGoalDeadline(*req.Deadline)
	if err != nil {
		badRequest(ctx, "invalid deadline: "+*req.Deadline)
		return
	}

	goal := &models.Goal{
		UserID:        userID,
		GoalName:      *req.Name,
		GoalType:      *req.Type,
		TargetAmount:  *req.TargetAmount,
		CurrentAmount: 0,
		Deadline:      &deadline,
		Priority:      strings.ToUpper(*req.Priority),
		IsActive:      true,
	}
	if err := c.repo.CreateGoal(goal); err != nil {
		internalError(ctx, "failed to create goal", err)
		return
	}

	respondCreated(ctx, gin.H{"id": goal.ID}, "goal created")
}

type goalProgressRequest struct {
	CurrentAmount *float64 `json:"currentAmount"`
}

// UpdateGoalProgress godoc
// @Summary Update goal progress
// @Description Rejects negative amounts and amounts above the target
// @Tags goals
// @Accept json
// @Produce json
// @Param id path int true "Goal ID"
// @Param body body goalProgressRequest true "New current amount"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/goals/{id}/progress [put]
func (c *Controller) UpdateGoalProgress(ctx *gin.Context) {
	userID := callerID(ctx)

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "invalid goal id")
		return
	}

	var req goalProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "invalid input: "+err.Error())
		return
	}
	if req.CurrentAmount == nil {
		badRequest(ctx, "missing required field: currentAmount")
		return
	}
	amount := *req.CurrentAmount
	if amount < 0 {
		badRequest(ctx, "currentAmount cannot be negative")
		return
	}

	goal, err := c.repo.GetGoalByID(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(ctx, "goal not found")
		return
	}
	if err != nil {
		internalError(ctx, "failed to load goal", err)
		return
	}
	if amount > goal.TargetAmount {
		badRequest(ctx, "currentAmount cannot exceed targetAmount")
		return
	}

	// The update re-checks the target so a concurrent change to the goal
	// cannot slip an over-target amount through.
	affected, err := c.repo.UpdateGoalProgress(id, userID, amount)
	if err != nil {
		internalError(ctx, "failed to update goal progress", err)
		return
	}
	if affected == 0 {
		badRequest(ctx, "currentAmount cannot exceed targetAmount")
		return
	}

	var pct float64
	if goal.TargetAmount != 0 {
		pct = round1(amount / goal.TargetAmount * 100)
	}

	respondOK(ctx, gin.H{
		"id":            strconv.FormatInt(id, 10),
		"currentAmount": amount,
		"percentage":    pct,
	}, "goal progress updated")
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Tags goals
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {object} Envelope
// @Failure 400 {object} Envelope
// @Failure 404 {object} Envelope
// @Failure 500 {object} Envelope
// @Router /api/goals/{id} [delete]
func (c *Controller) DeleteGoal(ctx *gin.Context) {
	userID := callerID(ctx)

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		badRequest(ctx, "invalid goal id")
		return
	}

	affected, err := c.repo.DeleteGoal(id, userID)
	if err != nil {
		internalError(ctx, "failed to delete goal", err)
		return
	}
	if affected == 0 {
		notFound(ctx, "goal not found")
		return
	}

	respondOK(ctx, nil, "goal deleted")
}
