package app

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bokasafn/internal/model"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(limit, offset int) ([]model.User, error) {
	return s.users.List(limit, offset)
}

// Get returns (nil, nil) when no user has that id.
func (s *UserService) Get(id uint) (*model.User, error) {
	return s.users.GetByID(id)
}

// UpdateProfile is the self-service update: it only ever touches name and
// password, and the password is re-hashed before it is stored.
func (s *UserService) UpdateProfile(id uint, name, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}
	return s.users.UpdateProfile(id, name, string(hash))
}
