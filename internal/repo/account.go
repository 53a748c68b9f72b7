package repo

import "finboard/internal/models"

func (r *Repository) CreateAccount(account *models.Account) error {
	return r.db.Create(account).Error
}

func (r *Repository) TotalBalance(userID int64) (float64, error) {
	var total float64
	if err := r.db.Model(&models.Account{}).
		Where("user_id = ?", userID).
		Pluck("COALESCE(SUM(current_balance), 0)", &total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
