package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*AuthService, *memUsers, *memStorage) {
	t.Helper()
	hashed, err := auth.HashPassword("Secret123")
	require.NoError(t, err)

	users := newMemUsers(&models.User{ID: 1, FullName: "Jane Doe", Email: "jane@contoso.edu", Password: hashed, Role: models.RoleStudent})
	storage := &memStorage{}
	svc := NewAuthService(users, newMemDepartments(1), storage, stubTokens{}, zerolog.Nop())
	return svc, users, storage
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	session, err := svc.Login(ctx, "JANE@Contoso.edu", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "token-for-jane@contoso.edu", session.Token)
	assert.Equal(t, "Jane Doe", session.User.FullName)

	_, err = svc.Login(ctx, "jane@contoso.edu", "wrong-pass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@contoso.edu", "Secret123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Register(t *testing.T) {
	base := dto.RegisterRequest{
		FullName:        " Sam Lee ",
		Email:           "Sam@Contoso.edu",
		Password:        "Password1",
		ConfirmPassword: "Password1",
	}

	t.Run("defaults to student and stores document", func(t *testing.T) {
		svc, users, storage := newAuthFixture(t)
		req := base

		user, err := svc.Register(context.Background(), &req, imageHeader("me.png"))
		require.NoError(t, err)

		assert.Equal(t, models.RoleStudent, user.Role)
		assert.Equal(t, "sam@contoso.edu", user.Email)
		assert.Equal(t, "Sam Lee", user.FullName)
		require.NotNil(t, user.ProfileDocument)
		assert.Equal(t, "profiles/me.png", *user.ProfileDocument)
		assert.Equal(t, []string{"profiles/me.png"}, storage.saved)
		assert.True(t, auth.CheckPassword(users.users[user.ID].Password, "Password1"))
	})

	t.Run("password mismatch", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)
		req := base
		req.ConfirmPassword = "Different1"

		_, err := svc.Register(context.Background(), &req, nil)
		assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
	})

	t.Run("email taken ignoring case", func(t *testing.T) {
		svc, _, storage := newAuthFixture(t)
		req := base
		req.Email = "JANE@contoso.EDU"

		_, err := svc.Register(context.Background(), &req, imageHeader("me.png"))
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		assert.Empty(t, storage.saved)
	})

	t.Run("unknown department", func(t *testing.T) {
		svc, _, _ := newAuthFixture(t)
		req := base
		dept := int64(77)
		req.DepartmentID = &dept

		_, err := svc.Register(context.Background(), &req, nil)
		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})
}

func TestAuthService_ListRegisteredUsers_Empty(t *testing.T) {
	svc := NewAuthService(newMemUsers(), newMemDepartments(), &memStorage{}, stubTokens{}, zerolog.Nop())

	_, err := svc.ListRegisteredUsers(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.EqualError(t, err, "No users found.")
}
