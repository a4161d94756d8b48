package app

import (
	"context"
	"io"

	"bokasafn/internal/model"
)

// Store interfaces let the services run against the gorm repositories in
// production and against in-memory fakes in tests.

type UserStore interface {
	Create(user *model.User) error
	GetByUsername(username string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
	List(limit, offset int) ([]model.User, error)
	UpdateProfile(id uint, name, passwordHash string) (*model.User, error)
	SaveImageURL(id uint, url string) (string, error)
}

type BookStore interface {
	List(limit, offset int) ([]model.Book, error)
	Search(query string, limit, offset int) ([]model.Book, error)
	GetByID(id uint) (*model.Book, error)
	Create(book *model.Book) error
	Update(book *model.Book) error
}

type CategoryStore interface {
	List() ([]model.Category, error)
	FindByName(name string) ([]model.Category, error)
	Create(name string) (*model.Category, error)
}

type ReadStore interface {
	Create(record *model.ReadRecord) error
	ListByUser(userID uint, limit, offset int) ([]model.ReadRecord, error)
	DeleteOwned(id, userID uint) (int64, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
