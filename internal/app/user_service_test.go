package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bokasafn/internal/app"
	"bokasafn/internal/model"
)

func TestUpdateProfileRehashesPassword(t *testing.T) {
	users := &fakeUserStore{users: []*model.User{{ID: 1, Username: "alice", Name: "Alice", Password: "old-hash"}}, nextID: 1}
	svc := app.NewUserService(users)

	user, err := svc.UpdateProfile(1, "Alice B", "newpassword")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "Alice B", user.Name)
	assert.NotEqual(t, "newpassword", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newpassword")))
}

func TestGetMissingUserIsNil(t *testing.T) {
	svc := app.NewUserService(&fakeUserStore{})

	user, err := svc.Get(42)
	require.NoError(t, err)
	assert.Nil(t, user)
}
