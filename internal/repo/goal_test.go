package repo

import (
	"testing"
	"time"

	"finboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGoal(t *testing.T, r *Repository, userID int64, name, priority string, target, current float64, deadline *time.Time) *models.Goal {
	goal := &models.Goal{
		UserID:        userID,
		GoalName:      name,
		TargetAmount:  target,
		CurrentAmount: current,
		Deadline:      deadline,
		Priority:      priority,
		GoalType:      "savings",
		IsActive:      true,
	}
	require.NoError(t, r.CreateGoal(goal))
	return goal
}

func TestGetGoals_OrderedByPriorityThenDeadline(t *testing.T) {
	r := setupTestRepo(t)

	near := date(2026, 9, 1)
	far := date(2027, 9, 1)

	seedGoal(t, r, 1, "vacation", models.PriorityLow, 3000, 500, &far)
	seedGoal(t, r, 1, "house", models.PriorityHigh, 100000, 20000, &far)
	seedGoal(t, r, 1, "emergency", models.PriorityHigh, 10000, 8000, &near)
	seedGoal(t, r, 1, "car", models.PriorityMedium, 20000, 0, &near)

	goals, err := r.GetGoals(1)
	require.NoError(t, err)
	require.Len(t, goals, 4)

	// HIGH before MEDIUM before LOW; within HIGH the nearer deadline first
	assert.Equal(t, "emergency", goals[0].GoalName)
	assert.Equal(t, "house", goals[1].GoalName)
	assert.Equal(t, "car", goals[2].GoalName)
	assert.Equal(t, "vacation", goals[3].GoalName)
}

func TestUpdateGoalProgress_Conditional(t *testing.T) {
	r := setupTestRepo(t)
	goal := seedGoal(t, r, 1, "emergency", models.PriorityHigh, 10000, 0, nil)

	affected, err := r.UpdateGoalProgress(goal.ID, 1, 4000)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	got, err := r.GetGoalByID(goal.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, got.CurrentAmount)

	// amounts above target never match the guarded update
	affected, err = r.UpdateGoalProgress(goal.ID, 1, 10001)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	// wrong owner
	affected, err = r.UpdateGoalProgress(goal.ID, 2, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestDeleteGoal_ScopedToOwner(t *testing.T) {
	r := setupTestRepo(t)
	goal := seedGoal(t, r, 1, "emergency", models.PriorityHigh, 10000, 0, nil)

	affected, err := r.DeleteGoal(goal.ID, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)

	affected, err = r.DeleteGoal(goal.ID, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)
}
