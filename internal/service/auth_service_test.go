package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
	apperrors "github.com/yourusername/questionnaire-api/internal/pkg/errors"
	"github.com/yourusername/questionnaire-api/internal/session"
	"github.com/yourusername/questionnaire-api/pkg/auth"
)

func newTestJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	jwtService, err := auth.NewJWTService("test-secret-key", 1)
	require.NoError(t, err)
	return jwtService
}

// hashedUser возвращает пользователя с уже захешированным паролем,
// как он выглядел бы после сохранения через GORM
func hashedUser(t *testing.T, id uint, username, password string, isAdmin bool) *entity.User {
	t.Helper()
	u := &entity.User{ID: id, Username: username, Password: password, IsAdmin: isAdmin}
	require.NoError(t, u.BeforeSave((*gorm.DB)(nil)))
	return u
}

func TestAuthService_Login_Success(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepo)
	jwtService := newTestJWTService(t)
	authService := NewAuthService(userRepo, jwtService)

	user := hashedUser(t, 1, "demo", "demo123", false)
	userRepo.On("GetByUsername", mock.Anything, "demo").Return(user, nil)

	// Act
	token, loggedIn, err := authService.Login(context.Background(), "demo", "demo123")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, token, "Успешный вход должен выдавать токен")
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := jwtService.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "demo", claims.Username)
	assert.False(t, claims.IsAdmin)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepo)
	authService := NewAuthService(userRepo, newTestJWTService(t))

	user := hashedUser(t, 1, "demo", "demo123", false)
	userRepo.On("GetByUsername", mock.Anything, "demo").Return(user, nil)

	// Act
	token, _, err := authService.Login(context.Background(), "demo", "wrong")

	// Assert
	assert.ErrorIs(t, err, ErrInvalidCredentials, "Неверный пароль должен давать ErrInvalidCredentials")
	assert.Empty(t, token)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	// Arrange: несуществующий пользователь неотличим от неверного пароля
	userRepo := new(MockUserRepo)
	authService := NewAuthService(userRepo, newTestJWTService(t))

	userRepo.On("GetByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	// Act
	_, _, err := authService.Login(context.Background(), "ghost", "whatever")

	// Assert
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_CheckSession_ValidToken(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepo)
	jwtService := newTestJWTService(t)
	authService := NewAuthService(userRepo, jwtService)

	user := hashedUser(t, 7, "admin", "admin123", true)
	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	userRepo.On("GetByID", mock.Anything, uint(7)).Return(user, nil)

	// Act
	state := authService.CheckSession(context.Background(), token)

	// Assert
	assert.Equal(t, session.StatusAuthenticated, state.Status)
	assert.True(t, state.IsAuthenticated())
	assert.True(t, state.IsAdmin())
	assert.Equal(t, uint(7), state.User.ID)
}

func TestAuthService_CheckSession_InvalidToken(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepo)
	authService := NewAuthService(userRepo, newTestJWTService(t))

	// Act
	state := authService.CheckSession(context.Background(), "not-a-token")

	// Assert: провал проверки сбрасывает учетные данные
	assert.Equal(t, session.StatusAuthFailed, state.Status)
	assert.False(t, state.IsAuthenticated())
	assert.Nil(t, state.User)
	userRepo.AssertNotCalled(t, "GetByID")
}

func TestAuthService_CheckSession_DeletedUser(t *testing.T) {
	// Arrange: токен валиден, но пользователь уже удален
	userRepo := new(MockUserRepo)
	jwtService := newTestJWTService(t)
	authService := NewAuthService(userRepo, jwtService)

	user := hashedUser(t, 3, "gone", "gone123", false)
	token, err := jwtService.GenerateToken(user)
	require.NoError(t, err)

	userRepo.On("GetByID", mock.Anything, uint(3)).Return(nil, apperrors.ErrNotFound)

	// Act
	state := authService.CheckSession(context.Background(), token)

	// Assert
	assert.Equal(t, session.StatusAuthFailed, state.Status)
	assert.Equal(t, "user no longer exists", state.Reason)
}

func TestAuthService_Register_EmptyCredentials(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepo)
	authService := NewAuthService(userRepo, newTestJWTService(t))

	// Act
	_, err := authService.Register(context.Background(), "", "password")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	userRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	// Arrange
	userRepo := new(MockUserRepo)
	authService := NewAuthService(userRepo, newTestJWTService(t))

	userRepo.On("Create", mock.Anything, mock.Anything).Return(apperrors.ErrConflict)

	// Act
	_, err := authService.Register(context.Background(), "demo", "demo123")

	// Assert
	assert.ErrorIs(t, err, apperrors.ErrConflict, "Повторное имя должно давать ErrConflict")
}
