package app

import (
	"errors"

	"bokasafn/internal/model"
)

var ErrEmptyCategoryName = errors.New("category name must not be empty")

type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

func (s *CategoryService) List() ([]model.Category, error) {
	return s.categories.List()
}

// Create is idempotent by name: when the name already exists the matching
// rows come back unchanged instead of an error. The existence check and the
// insert are two statements; the unique constraint catches the race.
func (s *CategoryService) Create(name string) ([]model.Category, error) {
	if name == "" {
		return nil, ErrEmptyCategoryName
	}

	existing, err := s.categories.FindByName(name)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	created, err := s.categories.Create(name)
	if err != nil {
		return nil, err
	}
	return []model.Category{*created}, nil
}
