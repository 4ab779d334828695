package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user.go -destination=mocks/mock_user.go -package=mocks

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserService - граница аутентификации: вход, регистрация и поиск пользователя по токену
type UserService interface {
	// FindByJwtToken возвращает владельца access-токена.
	// models.ErrTokenInvalid - токен поврежден или просрочен,
	// models.ErrUser - токен валиден, но пользователя получить не удалось.
	FindByJwtToken(ctx context.Context, token string) (*models.User, error)
	Register(ctx context.Context, fullName, email, password string) (*models.TokenPair, error)
	Authenticate(ctx context.Context, email, password string) (*models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

type userService struct {
	repo       UserRepository
	tokens     *TokenManager
	logger     *logrus.Logger
	bcryptCost int
}

func NewUserService(repo UserRepository, tokens *TokenManager, logger *logrus.Logger) UserService {
	return &userService{
		repo:       repo,
		tokens:     tokens,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (s *userService) FindByJwtToken(ctx context.Context, token string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "FindByJwtToken",
	})

	claims, err := s.tokens.Parse(token, TokenTypeAccess)
	if err != nil {
		log.WithError(err).Debug("Rejected access token")
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		log.WithError(err).WithField("user_id", claims.UserID).Warn("Failed to resolve user from token")
		return nil, fmt.Errorf("service: %w: %w", models.ErrUser, err)
	}
	if !strings.EqualFold(user.Email, claims.Subject) {
		log.WithField("user_id", claims.UserID).Warn("Token subject does not match user")
		return nil, fmt.Errorf("service: %w: token subject mismatch", models.ErrUser)
	}
	return user, nil
}

// Register создает пользователя с ролью USER и сразу выдает токены
func (s *userService) Register(ctx context.Context, fullName, email, password string) (*models.TokenPair, error) {
	email = normalizeEmail(email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Register",
		"email":   email,
	})
	log.Info("Registering a new user")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Warn("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not register user: %w", err)
	}

	tokens, err := s.tokens.Issue(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		return nil, fmt.Errorf("service: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return tokens, nil
}

// Authenticate проверяет email и пароль. Неизвестный email и неверный пароль неразличимы.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.TokenPair, error) {
	email = normalizeEmail(email)
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Authenticate",
		"email":   email,
	})

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.Warn("Login attempt for unknown email")
			return nil, fmt.Errorf("service: %w", models.ErrInvalidCredentials)
		}
		log.WithError(err).Error("Failed to get user by email")
		return nil, fmt.Errorf("service: could not authenticate: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with wrong password")
		return nil, fmt.Errorf("service: %w", models.ErrInvalidCredentials)
	}

	tokens, err := s.tokens.Issue(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		return nil, fmt.Errorf("service: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User authenticated")
	return tokens, nil
}

// Refresh обменивает refresh-токен на новую пару токенов
func (s *userService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Refresh",
	})

	claims, err := s.tokens.Parse(refreshToken, TokenTypeRefresh)
	if err != nil {
		log.WithError(err).Debug("Rejected refresh token")
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		log.WithError(err).WithField("user_id", claims.UserID).Warn("Failed to resolve user from refresh token")
		return nil, fmt.Errorf("service: %w: %w", models.ErrUser, err)
	}

	tokens, err := s.tokens.Issue(user)
	if err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		return nil, fmt.Errorf("service: %w", err)
	}
	return tokens, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
