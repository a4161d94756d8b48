package http_test

import (
	"context"
	"io"

	"bokasafn/internal/model"
)

// Slice-backed stores so router tests run the full stack without postgres.

type memUserStore struct {
	users  []*model.User
	nextID uint
}

func (m *memUserStore) Create(user *model.User) error {
	m.nextID++
	user.ID = m.nextID
	m.users = append(m.users, user)
	return nil
}

func (m *memUserStore) GetByUsername(username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) GetByID(id uint) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) List(limit, offset int) ([]model.User, error) {
	var out []model.User
	for i, u := range m.users {
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

func (m *memUserStore) UpdateProfile(id uint, name, passwordHash string) (*model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			u.Name = name
			u.Password = passwordHash
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserStore) SaveImageURL(id uint, url string) (string, error) {
	for _, u := range m.users {
		if u.ID == id {
			u.ImgURL = url
		}
	}
	return url, nil
}

type memBookStore struct {
	books     []*model.Book
	createErr error
	nextID    uint
}

func (m *memBookStore) List(limit, offset int) ([]model.Book, error) {
	var out []model.Book
	for i, b := range m.books {
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

func (m *memBookStore) Search(query string, limit, offset int) ([]model.Book, error) {
	return m.List(limit, offset)
}

func (m *memBookStore) GetByID(id uint) (*model.Book, error) {
	for _, b := range m.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (m *memBookStore) Create(book *model.Book) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	book.ID = m.nextID
	m.books = append(m.books, book)
	return nil
}

func (m *memBookStore) Update(book *model.Book) error {
	for i, b := range m.books {
		if b.ID == book.ID {
			m.books[i] = book
		}
	}
	return nil
}

type memCategoryStore struct {
	categories  []model.Category
	createCalls int
	nextID      uint
}

func (m *memCategoryStore) List() ([]model.Category, error) {
	return m.categories, nil
}

func (m *memCategoryStore) FindByName(name string) ([]model.Category, error) {
	var out []model.Category
	for _, c := range m.categories {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategoryStore) Create(name string) (*model.Category, error) {
	m.createCalls++
	m.nextID++
	category := model.Category{ID: m.nextID, Name: name}
	m.categories = append(m.categories, category)
	return &category, nil
}

type memReadStore struct {
	records   []*model.ReadRecord
	createErr error
	nextID    uint
}

func (m *memReadStore) Create(record *model.ReadRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	record.ID = m.nextID
	m.records = append(m.records, record)
	return nil
}

func (m *memReadStore) ListByUser(userID uint, limit, offset int) ([]model.ReadRecord, error) {
	var mine []model.ReadRecord
	for _, r := range m.records {
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

func (m *memReadStore) DeleteOwned(id, userID uint) (int64, error) {
	for i, r := range m.records {
		if r.ID == id && r.UserID == userID {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memUploader struct {
	url string
	err error
}

func (m *memUploader) Upload(_ context.Context, _ string, body io.Reader, _ string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	return m.url, nil
}
