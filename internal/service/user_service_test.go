package service

import (
	"testing"

	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(id int64, includeDeleted bool) (*domain.User, error) {
	args := m.Called(id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Search(term string, page, limit int) ([]*domain.User, int64, error) {
	args := m.Called(term, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*domain.User), args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) Create(u *domain.User) error {
	return m.Called(u).Error(0)
}

func (m *mockUserRepo) Save(u *domain.User) error {
	return m.Called(u).Error(0)
}

func (m *mockUserRepo) SoftDelete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *mockUserRepo) HardDelete(id int64) error {
	return m.Called(id).Error(0)
}

func (m *mockUserRepo) Restore(id int64) error {
	return m.Called(id).Error(0)
}

// --- Tests ---

func TestCreateUser_Defaults(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	repo.On("ExistsByEmail", "new@example.com").Return(false, nil)
	repo.On("Create", mock.AnythingOfType("*domain.User")).Return(nil)

	got, err := svc.Create(&domain.CreateUserRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "hunter2hunter2",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleUser, got.Role)
	assert.True(t, got.RequiresApproval, "new authors go through moderation by default")
	assert.True(t, got.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("hunter2hunter2")))
}

func TestCreateUser_TrustedFlag(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	repo.On("ExistsByEmail", mock.Anything).Return(false, nil)
	repo.On("Create", mock.AnythingOfType("*domain.User")).Return(nil)

	trusted := false
	got, err := svc.Create(&domain.CreateUserRequest{
		Name:             "Editor",
		Email:            "editor@example.com",
		Password:         "hunter2hunter2",
		Role:             domain.RoleModerator,
		RequiresApproval: &trusted,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleModerator, got.Role)
	assert.False(t, got.RequiresApproval)
}

func TestCreateUser_DuplicateEmailConflicts(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	repo.On("ExistsByEmail", "taken@example.com").Return(true, nil)

	_, err := svc.Create(&domain.CreateUserRequest{
		Name:     "Dup",
		Email:    "taken@example.com",
		Password: "hunter2hunter2",
	})

	assert.ErrorIs(t, err, common.ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateUser_PatchAppliesFlags(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewUserService(repo)

	existing := &domain.User{ID: 1, Name: "U", Role: domain.RoleUser, RequiresApproval: true, IsActive: true}
	repo.On("FindByID", int64(1), false).Return(existing, nil)
	repo.On("Save", existing).Return(nil)

	role := domain.RoleModerator
	trusted := false
	inactive := false
	got, err := svc.Update(1, &domain.UserPatch{Role: &role, RequiresApproval: &trusted, IsActive: &inactive})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleModerator, got.Role)
	assert.False(t, got.RequiresApproval)
	assert.False(t, got.IsActive)
}
