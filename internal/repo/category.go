package repo

import "finboard/internal/models"

func (r *Repository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

// ResolveCategory maps a category name to its row. Callers translate
// gorm.ErrRecordNotFound into their own unknown-category policy.
func (r *Repository) ResolveCategory(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *Repository) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
