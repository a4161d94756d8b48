package app

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bokasafn/internal/model"
	"bokasafn/internal/pkg/jwtutil"
)

var (
	ErrNoSuchUser      = errors.New("no such user")
	ErrInvalidPassword = errors.New("invalid password")
)

// bcryptCost matches the work factor the stored hashes were created with.
const bcryptCost = 11

// FieldError is one entry in the list of registration failures; every failed
// rule is reported, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type RegisterInput struct {
	Username string
	Password string
	Name     string
}

type AuthService struct {
	users         UserStore
	jwtSecret     string
	tokenLifetime time.Duration
}

func NewAuthService(users UserStore, jwtSecret string, tokenLifetime time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		jwtSecret:     jwtSecret,
		tokenLifetime: tokenLifetime,
	}
}

// Register validates all fields, collecting every failure, and creates the
// user only when the list comes back empty. The username-taken check is a
// read before the insert; the unique constraint still backs it up.
func (s *AuthService) Register(input RegisterInput) (*model.User, []FieldError, error) {
	var fieldErrs []FieldError

	if len(input.Username) < 2 {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   "username",
			Message: "Username must be at least two letters",
		})
	}

	existing, err := s.users.GetByUsername(input.Username)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   "username",
			Message: "Username already exists",
		})
	}

	if len(input.Password) < 6 {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   "password",
			Message: "Password must be at least six letters",
		})
	}

	if input.Name == "" {
		fieldErrs = append(fieldErrs, FieldError{
			Field:   "name",
			Message: "Name is required and must not be empty",
		})
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Username: input.Username,
		Password: string(hash),
		Name:     input.Name,
	}
	if err := s.users.Create(user); err != nil {
		return nil, nil, err
	}
	return user, nil, nil
}

// Login reports ErrNoSuchUser and ErrInvalidPassword separately; both end up
// as 401 but with different messages.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrNoSuchUser
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	return jwtutil.Issue(s.jwtSecret, s.tokenLifetime, user.ID)
}
