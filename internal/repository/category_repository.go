package repository

import (
	"fmt"

	"gorm.io/gorm"

	"bokasafn/internal/model"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) List() ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories failed: %w", err)
	}
	return categories, nil
}

// FindByName returns every row matching the name. The slice doubles as the
// existence check for book validation and as the idempotent-create response.
func (r *CategoryRepository) FindByName(name string) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.Where("name = ?", name).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("query category by name failed: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) Create(name string) (*model.Category, error) {
	category := &model.Category{Name: name}
	if err := r.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("create category failed: %w", err)
	}
	return category, nil
}
