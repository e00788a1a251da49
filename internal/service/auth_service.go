package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/daonlab/crm-calendar-backend/internal/common"
	"github.com/daonlab/crm-calendar-backend/internal/domain"
	"github.com/daonlab/crm-calendar-backend/internal/repository"
	"github.com/daonlab/crm-calendar-backend/pkg/jwt"
)

// ErrInvalidCredentials wrong email or password
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles authentication business logic
type AuthService struct {
	users      repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates an AuthService
func NewAuthService(users repository.UserRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{users: users, jwtManager: jwtManager}
}

// Login verifies the credentials and issues an access token
func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, storeFailure("find user", err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user.ID, user.Email, user.Name)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// CurrentUser resolves the authenticated user from a verified token's
// user id. A stale id (user deleted since the token was issued) is
// Unauthorized, not NotFound.
func (s *AuthService) CurrentUser(userID string) (*domain.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, storeFailure("find user", err)
	}
	if user == nil {
		return nil, common.ErrUnauthorized
	}
	return user, nil
}

// HashPassword returns the bcrypt hash for a plaintext password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
