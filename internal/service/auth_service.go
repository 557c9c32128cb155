package service

import (
	"errors"

	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/internal/repository"
	"github.com/promptdeck/promptdeck-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginResponse login response
type LoginResponse struct {
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// AuthService authentication business logic
type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	Refresh(refreshToken string) (*LoginResponse, error)
	GetCurrentUser(id int64) (*domain.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager) AuthService {
	return &authService{userRepo: userRepo, jwtManager: jwtManager}
}

// Login authenticates by email and password and returns a token pair.
// Deleted accounts are invisible here; deactivated accounts are
// rejected explicitly.
func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, common.ErrAccountInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrInvalidCredentials
	}

	return s.tokenPair(user)
}

// Refresh validates a refresh token and issues a new token pair.
func (s *authService) Refresh(refreshToken string) (*LoginResponse, error) {
	claims, err := s.jwtManager.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, common.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(claims.UserID, false)
	if err != nil {
		return nil, common.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, common.ErrAccountInactive
	}

	return s.tokenPair(user)
}

// GetCurrentUser returns the account for an authenticated id.
func (s *authService) GetCurrentUser(id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(id, false)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return user, nil
}

func (s *authService) tokenPair(user *domain.User) (*LoginResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
