package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/model"
	"github.com/yasminebk/beautyuniverse-backend/internal/app/repository"
	"github.com/yasminebk/beautyuniverse-backend/internal/db"
	"github.com/yasminebk/beautyuniverse-backend/pkg/util"
)

const testJWTSecret = "test-secret-key"

func setupAuthServiceTest(t *testing.T) (AuthService, repository.UserRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	svc := NewAuthService(userRepo, testJWTSecret, 15*time.Minute, 7*24*time.Hour)
	return svc, userRepo
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	user, tokens, err := svc.Register("yasmine@example.com", "password123", "Yasmine", "+213 550 12 34 56")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, "0550123456", user.Phone)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	claims, err := util.ValidateToken(tokens.AccessToken, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, string(model.RoleUser), claims.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	_, _, err := svc.Register("yasmine@example.com", "password123", "Yasmine", "")
	require.NoError(t, err)

	_, _, err = svc.Register("yasmine@example.com", "otherpassword", "Autre", "")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	_, _, err := svc.Register("yasmine@example.com", "password123", "Yasmine", "")
	require.NoError(t, err)

	user, tokens, err := svc.Login("yasmine@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "yasmine@example.com", user.Email)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	_, _, err := svc.Register("yasmine@example.com", "password123", "Yasmine", "")
	require.NoError(t, err)

	_, _, err = svc.Login("yasmine@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	_, _, err := svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GetUserByID_NotFound(t *testing.T) {
	svc, _ := setupAuthServiceTest(t)

	_, err := svc.GetUserByID(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	svc, userRepo := setupAuthServiceTest(t)

	require.NoError(t, svc.EnsureAdmin("admin@example.com", "adminpass"))

	admin, err := userRepo.FindByEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	// Second call leaves the existing account untouched
	require.NoError(t, svc.EnsureAdmin("admin@example.com", "differentpass"))
	again, err := userRepo.FindByEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, admin.PasswordHash, again.PasswordHash)
}
