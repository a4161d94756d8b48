package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bokasafn/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by username failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) List(limit, offset int) ([]model.User, error) {
	var users []model.User
	err := r.db.
		Select("id, username, name, imgurl").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users failed: %w", err)
	}
	return users, nil
}

// UpdateProfile replaces name and password hash in one statement and returns
// the fresh row.
func (r *UserRepository) UpdateProfile(id uint, name, passwordHash string) (*model.User, error) {
	err := r.db.Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "password": passwordHash}).Error
	if err != nil {
		return nil, fmt.Errorf("update user failed: %w", err)
	}
	return r.GetByID(id)
}

func (r *UserRepository) SaveImageURL(id uint, url string) (string, error) {
	err := r.db.Model(&model.User{}).
		Where("id = ?", id).
		Update("imgurl", url).Error
	if err != nil {
		return "", fmt.Errorf("save image url failed: %w", err)
	}
	return url, nil
}
