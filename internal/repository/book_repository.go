package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bokasafn/internal/model"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) List(limit, offset int) ([]model.Book, error) {
	var books []model.Book
	err := r.db.Order("id ASC").Limit(limit).Offset(offset).Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("list books failed: %w", err)
	}
	return books, nil
}

// Search hands matching and ranking entirely to Postgres full-text search
// over the concatenated title and description.
func (r *BookRepository) Search(query string, limit, offset int) ([]model.Book, error) {
	var books []model.Book
	err := r.db.Raw(`
		SELECT id, title, isbn13, author, description, category
		FROM books
		WHERE to_tsvector(title || ' ' || description) @@ to_tsquery(?)
		LIMIT ? OFFSET ?`,
		query, limit, offset,
	).Scan(&books).Error
	if err != nil {
		return nil, fmt.Errorf("search books failed: %w", err)
	}
	return books, nil
}

func (r *BookRepository) GetByID(id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query book by id failed: %w", err)
	}
	return &book, nil
}

func (r *BookRepository) Create(book *model.Book) error {
	if err := r.db.Create(book).Error; err != nil {
		return translateBookError(err)
	}
	return nil
}

func (r *BookRepository) Update(book *model.Book) error {
	err := r.db.Model(&model.Book{}).
		Where("id = ?", book.ID).
		Updates(map[string]interface{}{
			"title":       book.Title,
			"isbn13":      book.ISBN13,
			"author":      book.Author,
			"description": book.Description,
			"category":    book.Category,
		}).Error
	if err != nil {
		return translateBookError(err)
	}
	return nil
}
