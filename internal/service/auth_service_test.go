package service

import (
	"testing"
	"time"

	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret", 15*time.Minute, time.Hour)
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &domain.User{
		ID:           1,
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Name:         "User",
		Role:         domain.RoleUser,
		IsActive:     true,
	}
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, testJWTManager())

	repo.On("FindByEmail", "user@example.com").Return(activeUser(t, "correct horse"), nil)

	got, err := svc.Login("user@example.com", "correct horse")

	assert.NoError(t, err)
	assert.NotEmpty(t, got.AccessToken)
	assert.NotEmpty(t, got.RefreshToken)
	assert.Equal(t, int64(1), got.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, testJWTManager())

	repo.On("FindByEmail", "user@example.com").Return(activeUser(t, "correct horse"), nil)

	_, err := svc.Login("user@example.com", "battery staple")

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_UnknownOrDeletedEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, testJWTManager())

	// Deleted accounts are invisible to FindByEmail, so both cases end
	// up here
	repo.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login("ghost@example.com", "whatever")

	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_DeactivatedAccount(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, testJWTManager())

	u := activeUser(t, "correct horse")
	u.IsActive = false
	repo.On("FindByEmail", "user@example.com").Return(u, nil)

	_, err := svc.Login("user@example.com", "correct horse")

	assert.ErrorIs(t, err, common.ErrAccountInactive)
}

func TestRefresh_RoundTrip(t *testing.T) {
	repo := new(mockUserRepo)
	mgr := testJWTManager()
	svc := NewAuthService(repo, mgr)

	u := activeUser(t, "correct horse")
	repo.On("FindByID", int64(1), false).Return(u, nil)

	refreshToken, err := mgr.GenerateRefreshToken(1)
	assert.NoError(t, err)

	got, err := svc.Refresh(refreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, got.AccessToken)
}

func TestRefresh_GarbageToken(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, testJWTManager())

	_, err := svc.Refresh("not-a-token")

	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	repo := new(mockUserRepo)
	mgr := testJWTManager()
	svc := NewAuthService(repo, mgr)

	accessToken, err := mgr.GenerateAccessToken(1, "USER")
	assert.NoError(t, err)

	_, err = svc.Refresh(accessToken)

	assert.ErrorIs(t, err, common.ErrUnauthorized)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
