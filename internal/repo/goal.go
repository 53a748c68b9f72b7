package repo

import "finboard/internal/models"

// goalPriorityOrder ranks stored priorities; string DESC would sort
// MEDIUM above HIGH.
const goalPriorityOrder = "CASE priority WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 WHEN 'LOW' THEN 1 ELSE 0 END DESC, deadline ASC"

func (r *Repository) CreateGoal(goal *models.Goal) error {
	return r.db.Create(goal).Error
}

func (r *Repository) GetGoals(userID int64) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.Where("user_id = ?", userID).
		Order(goalPriorityOrder).
		Find(&goals).Error; err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *Repository) GetGoalByID(id, userID int64) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.Where("goal_id = ? AND user_id = ?", id, userID).First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoalProgress writes current_amount with the target bound checked in
// the same statement, so a concurrent target change cannot slip an
// over-target amount through. Returns rows affected.
func (r *Repository) UpdateGoalProgress(id, userID int64, amount float64) (int64, error) {
	res := r.db.Model(&models.Goal{}).
		Where("goal_id = ? AND user_id = ? AND target_amount >= ?", id, userID, amount).
		Update("current_amount", amount)
	return res.RowsAffected, res.Error
}

func (r *Repository) DeleteGoal(id, userID int64) (int64, error) {
	res := r.db.Where("goal_id = ? AND user_id = ?", id, userID).Delete(&models.Goal{})
	return res.RowsAffected, res.Error
}
