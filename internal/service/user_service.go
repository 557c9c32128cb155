package service

import (
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserService business logic for user management. Every operation here
// is admin-only; the route layer enforces that before the service is
// reached.
type UserService interface {
	Create(req *domain.CreateUserRequest) (*domain.User, error)
	Get(id int64, includeDeleted bool) (*domain.User, error)
	Search(term string, page, limit int) ([]*domain.User, *common.Meta, error)
	Update(id int64, patch *domain.UserPatch) (*domain.User, error)
	Delete(id int64, soft bool) error
	Restore(id int64) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Create registers a new account with a bcrypt-hashed password.
// Duplicate emails fail with ErrEmailTaken.
func (s *userService) Create(req *domain.CreateUserRequest) (*domain.User, error) {
	exists, err := s.repo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	// New authors go through moderation unless the admin opts them out.
	requiresApproval := true
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}

	user := &domain.User{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     string(hash),
		Role:             role,
		RequiresApproval: requiresApproval,
		IsActive:         true,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(id int64, includeDeleted bool) (*domain.User, error) {
	user, err := s.repo.FindByID(id, includeDeleted)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return user, nil
}

func (s *userService) Search(term string, page, limit int) ([]*domain.User, *common.Meta, error) {
	page, limit = normalizePage(page, limit)
	items, total, err := s.repo.Search(term, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return items, common.NewMeta(page, limit, total), nil
}

// Update applies the allow-listed admin patch. Changing
// requires_approval only affects content created afterwards; existing
// content keeps its status.
func (s *userService) Update(id int64, patch *domain.UserPatch) (*domain.User, error) {
	user, err := s.repo.FindByID(id, false)
	if err != nil {
		return nil, mapNotFound(err)
	}

	patch.Apply(user)
	if err := s.repo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(id int64, soft bool) error {
	if soft {
		return mapNotFound(s.repo.SoftDelete(id))
	}
	return mapNotFound(s.repo.HardDelete(id))
}

func (s *userService) Restore(id int64) (*domain.User, error) {
	if err := s.repo.Restore(id); err != nil {
		return nil, mapNotFound(err)
	}
	return s.Get(id, false)
}
