package auth

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/johnquangdev/ami-meeting-svc/errors"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
	"github.com/johnquangdev/ami-meeting-svc/internal/domain/repositories"
	"github.com/johnquangdev/ami-meeting-svc/pkg/jwt"
)

// Service defines the authentication use case
type Service interface {
	// Login verifies credentials and issues a session token
	Login(ctx context.Context, username, password string) (*entities.User, string, error)

	// ValidateSession resolves a session token to the acting user
	ValidateSession(ctx context.Context, token string) (*entities.User, error)
}

// AuthService implements Service on top of the user store and JWT manager
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// Ensure AuthService implements Service interface
var _ Service = (*AuthService)(nil)

// NewAuthService creates a new authentication service
func NewAuthService(userRepo repositories.UserRepository, jwtManager *jwt.Manager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Login verifies the username/password pair and returns the user with a
// freshly signed session token. Unknown users and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entities.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == entities.ErrUserNotFound {
			return nil, "", apperrors.ErrInvalidCredentials()
		}
		return nil, "", apperrors.ErrStorage(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials()
	}

	token, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		s.logger.Error("failed to sign access token", zap.Error(err))
		return nil, "", apperrors.ErrInternal(err)
	}

	return user, token, nil
}

// ValidateSession parses the token and loads the referenced user
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*entities.User, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken()
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if err == entities.ErrUserNotFound {
			return nil, apperrors.ErrInvalidToken()
		}
		return nil, apperrors.ErrStorage(err)
	}

	return user, nil
}

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
