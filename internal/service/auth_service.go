package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
	"github.com/yourusername/questionnaire-api/internal/domain/repository"
	apperrors "github.com/yourusername/questionnaire-api/internal/pkg/errors"
	"github.com/yourusername/questionnaire-api/internal/session"
	"github.com/yourusername/questionnaire-api/pkg/auth"
)

// ErrInvalidCredentials возвращается при неверной паре логин/пароль
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService предоставляет методы для регистрации и входа
type AuthService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register создает нового пользователя. Пароль хешируется в BeforeSave хуке.
func (s *AuthService) Register(ctx context.Context, username, password string) (*entity.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.ErrValidation
	}

	user := &entity.User{
		Username: username,
		Password: password,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, fmt.Errorf("username %q is already taken: %w", username, apperrors.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[AuthService] Зарегистрирован пользователь %s (id=%d)", user.Username, user.ID)
	return user, nil
}

// Login проверяет учетные данные и выдает bearer-токен
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.CheckPassword(password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// CheckSession выполняет переходы шлюза сессии для предъявленного токена:
// Anonymous -> Authenticating -> Authenticated либо AuthFailed.
// Состояние каждый раз строится заново - никакого общего мутируемого состояния.
func (s *AuthService) CheckSession(ctx context.Context, token string) session.State {
	state := session.Anonymous().CheckSession()

	claims, err := s.jwtService.ParseToken(token)
	if err != nil {
		return state.Failure("invalid or expired token")
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return state.Failure("user no longer exists")
	}

	return state.Success(user)
}
