package repo

import (
	"errors"

	"finboard/internal/models"

	"gorm.io/gorm"
)

func (r *Repository) CreateHolding(holding *models.Holding) error {
	return r.db.Create(holding).Error
}

func (r *Repository) GetHoldings(userID int64) ([]models.Holding, error) {
	var holdings []models.Holding
	if err := r.db.Where("user_id = ?", userID).Order("holding_id").Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

func (r *Repository) CreateHoldingPrice(price *models.HoldingPrice) error {
	return r.db.Create(price).Error
}

// LatestClosePrice returns the most recent close price for a holding. The
// second return is false when the series has no rows yet.
func (r *Repository) LatestClosePrice(holdingID int64) (float64, bool, error) {
	var price models.HoldingPrice
	err := r.db.Where("holding_id = ?", holdingID).
		Order("price_date DESC").
		First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return price.ClosePrice, true, nil
}
