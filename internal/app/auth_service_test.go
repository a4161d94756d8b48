package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bokasafn/internal/app"
	"bokasafn/internal/pkg/jwtutil"
)

const testSecret = "auth-test-secret"

func newAuthService(users *fakeUserStore) *app.AuthService {
	return app.NewAuthService(users, testSecret, time.Hour)
}

func fieldsOf(fieldErrs []app.FieldError) []string {
	var fields []string
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestRegisterCollectsAllFieldErrors(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	user, fieldErrs, err := svc.Register(app.RegisterInput{
		Username: "a",
		Password: "123",
		Name:     "",
	})
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.ElementsMatch(t, []string{"username", "password", "name"}, fieldsOf(fieldErrs))
	assert.Empty(t, users.users, "no user row may be created on validation failure")
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	_, fieldErrs, err := svc.Register(app.RegisterInput{Username: "alice", Password: "password1", Name: "Alice"})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)

	user, fieldErrs, err := svc.Register(app.RegisterInput{Username: "alice", Password: "password2", Name: "Other Alice"})
	require.NoError(t, err)
	assert.Nil(t, user)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "username", fieldErrs[0].Field)
	assert.Len(t, users.users, 1, "duplicate registration must not create a row")
}

func TestRegisterHashesPassword(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	user, fieldErrs, err := svc.Register(app.RegisterInput{Username: "alice", Password: "password1", Name: "Alice"})
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, user)

	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "password1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password1")))
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(&fakeUserStore{})

	_, err := svc.Login("ghost", "whatever")
	assert.ErrorIs(t, err, app.ErrNoSuchUser)
}

func TestLoginWrongPassword(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	_, _, err := svc.Register(app.RegisterInput{Username: "alice", Password: "password1", Name: "Alice"})
	require.NoError(t, err)

	_, err = svc.Login("alice", "password2")
	assert.ErrorIs(t, err, app.ErrInvalidPassword)
}

func TestLoginIssuesTokenForSameUser(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	user, _, err := svc.Register(app.RegisterInput{Username: "alice", Password: "password1", Name: "Alice"})
	require.NoError(t, err)

	token, err := svc.Login("alice", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := jwtutil.Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}
