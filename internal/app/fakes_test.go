package app_test

import (
	"context"
	"io"

	"bokasafn/internal/model"
)

// In-memory stands-ins for the gorm repositories. Error fields let tests
// inject store failures.

type fakeUserStore struct {
	users  []*model.User
	nextID uint
}

func (f *fakeUserStore) Create(user *model.User) error {
	f.nextID++
	user.ID = f.nextID
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) GetByUsername(username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(id uint) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) List(limit, offset int) ([]model.User, error) {
	var out []model.User
	for i, u := range f.users {
		if i < offset {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) UpdateProfile(id uint, name, passwordHash string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.Name = name
			u.Password = passwordHash
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) SaveImageURL(id uint, url string) (string, error) {
	for _, u := range f.users {
		if u.ID == id {
			u.ImgURL = url
			return url, nil
		}
	}
	return url, nil
}

type fakeBookStore struct {
	books     []*model.Book
	createErr error
	updateErr error
	nextID    uint
}

func (f *fakeBookStore) List(limit, offset int) ([]model.Book, error) {
	var out []model.Book
	for i, b := range f.books {
		if i < offset {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookStore) Search(query string, limit, offset int) ([]model.Book, error) {
	return f.List(limit, offset)
}

func (f *fakeBookStore) GetByID(id uint) (*model.Book, error) {
	for _, b := range f.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookStore) Create(book *model.Book) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	book.ID = f.nextID
	f.books = append(f.books, book)
	return nil
}

func (f *fakeBookStore) Update(book *model.Book) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, b := range f.books {
		if b.ID == book.ID {
			f.books[i] = book
		}
	}
	return nil
}

type fakeCategoryStore struct {
	categories  []model.Category
	createCalls int
	nextID      uint
}

func (f *fakeCategoryStore) List() ([]model.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryStore) FindByName(name string) ([]model.Category, error) {
	var out []model.Category
	for _, c := range f.categories {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategoryStore) Create(name string) (*model.Category, error) {
	f.createCalls++
	f.nextID++
	category := model.Category{ID: f.nextID, Name: name}
	f.categories = append(f.categories, category)
	return &category, nil
}

type fakeReadStore struct {
	records   []*model.ReadRecord
	createErr error
	nextID    uint
}

func (f *fakeReadStore) Create(record *model.ReadRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	record.ID = f.nextID
	f.records = append(f.records, record)
	return nil
}

func (f *fakeReadStore) ListByUser(userID uint, limit, offset int) ([]model.ReadRecord, error) {
	var mine []model.ReadRecord
	for _, r := range f.records {
		if r.UserID == userID {
			mine = append(mine, *r)
		}
	}
	var out []model.ReadRecord
	for i, r := range mine {
		if i < offset {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReadStore) DeleteOwned(id, userID uint) (int64, error) {
	for i, r := range f.records {
		if r.ID == id && r.UserID == userID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeUploader struct {
	url  string
	err  error
	keys []string
}

func (f *fakeUploader) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, key)
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	return f.url, nil
}
