package repository

import (
	"fmt"

	"gorm.io/gorm"

	"bokasafn/internal/model"
)

type ReadRepository struct {
	db *gorm.DB
}

func NewReadRepository(db *gorm.DB) *ReadRepository {
	return &ReadRepository{db: db}
}

func (r *ReadRepository) Create(record *model.ReadRecord) error {
	if err := r.db.Create(record).Error; err != nil {
		return translateReadError(err)
	}
	return nil
}

func (r *ReadRepository) ListByUser(userID uint, limit, offset int) ([]model.ReadRecord, error) {
	var records []model.ReadRecord
	err := r.db.
		Where("userid = ?", userID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list read records failed: %w", err)
	}
	return records, nil
}

// DeleteOwned deletes only when both id and owner match, so a non-owner
// cannot tell "not found" from "not yours".
func (r *ReadRepository) DeleteOwned(id, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND userid = ?", id, userID).Delete(&model.ReadRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete read record failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}
