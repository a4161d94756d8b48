package app

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"bokasafn/internal/model"
	"bokasafn/internal/repository"
)

var (
	ErrDuplicateTitle = errors.New("title already exists")
	ErrDuplicateISBN  = errors.New("isbn13 already exists")
	ErrBookNotFound   = errors.New("book not found")
	// ErrUnexpected is what every unrecognized store failure on the book
	// write path collapses to; details never reach the client.
	ErrUnexpected = errors.New("unexpected error")
)

var validate = validator.New()

type BookInput struct {
	Title       string
	ISBN13      string
	Author      string
	Description string
	Category    string
}

type BookService struct {
	books      BookStore
	categories CategoryStore
}

func NewBookService(books BookStore, categories CategoryStore) *BookService {
	return &BookService{books: books, categories: categories}
}

func (s *BookService) List(limit, offset int) ([]model.Book, error) {
	return s.books.List(limit, offset)
}

func (s *BookService) Search(query string, limit, offset int) ([]model.Book, error) {
	return s.books.Search(query, limit, offset)
}

func (s *BookService) Get(id uint) (*model.Book, error) {
	book, err := s.books.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

// Create returns either the new book, the full list of validation messages,
// or an error. Uniqueness conflicts surface as ErrDuplicateTitle and
// ErrDuplicateISBN, everything else from the insert as ErrUnexpected.
func (s *BookService) Create(input BookInput) (*model.Book, []string, error) {
	validationErrs, err := s.validateBook(input)
	if err != nil {
		return nil, nil, err
	}
	if len(validationErrs) > 0 {
		return nil, validationErrs, nil
	}

	book := &model.Book{
		Title:       input.Title,
		ISBN13:      input.ISBN13,
		Author:      input.Author,
		Description: input.Description,
		Category:    input.Category,
	}
	if err := s.books.Create(book); err != nil {
		return nil, nil, translateStoreError(err)
	}
	return book, nil, nil
}

func (s *BookService) Update(id uint, input BookInput) (*model.Book, []string, error) {
	validationErrs, err := s.validateBook(input)
	if err != nil {
		return nil, nil, err
	}
	if len(validationErrs) > 0 {
		return nil, validationErrs, nil
	}

	book := &model.Book{
		ID:          id,
		Title:       input.Title,
		ISBN13:      input.ISBN13,
		Author:      input.Author,
		Description: input.Description,
		Category:    input.Category,
	}
	if err := s.books.Update(book); err != nil {
		return nil, nil, translateStoreError(err)
	}
	return book, nil, nil
}

// validateBook collects every rule violation. The category existence check
// is a plain read; it is not transactional with the following insert.
func (s *BookService) validateBook(input BookInput) ([]string, error) {
	var validationErrs []string

	if input.Title == "" {
		validationErrs = append(validationErrs, "Title must not be empty string")
	}
	if err := validate.Var(input.ISBN13, "len=13,numeric"); err != nil {
		validationErrs = append(validationErrs, "isbn13 must be string containing 13 digits")
	}
	if input.Category == "" {
		validationErrs = append(validationErrs, "Category must not be empty string")
	} else {
		existing, err := s.categories.FindByName(input.Category)
		if err != nil {
			return nil, err
		}
		if len(existing) == 0 {
			validationErrs = append(validationErrs, "Category must exist")
		}
	}
	return validationErrs, nil
}

func translateStoreError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateTitle):
		return ErrDuplicateTitle
	case errors.Is(err, repository.ErrDuplicateISBN):
		return ErrDuplicateISBN
	}
	return ErrUnexpected
}
