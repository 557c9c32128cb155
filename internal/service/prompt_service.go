package service

import (
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/internal/policy"
	"github.com/promptdeck/promptdeck-backend/internal/repository"
)

// PromptService business logic for prompts
type PromptService interface {
	Create(req *domain.CreatePromptRequest, actor *domain.User) (*domain.Prompt, error)
	Get(id int64, includeDeleted bool) (*domain.Prompt, error)
	Search(term string, status domain.ContentStatus, page, limit int) ([]*domain.Prompt, *common.Meta, error)
	Update(id int64, patch *domain.PromptPatch, actor *domain.User) (*domain.Prompt, error)
	UpdateStatus(id int64, status domain.ContentStatus, actor *domain.User) (*domain.Prompt, error)
	Delete(id int64, soft bool) error
	Restore(id int64) (*domain.Prompt, error)
}

type promptService struct {
	repo repository.PromptRepository
}

// NewPromptService creates a new PromptService
func NewPromptService(repo repository.PromptRepository) PromptService {
	return &promptService{repo: repo}
}

// Create persists a new prompt. The author reference is stamped here
// and never reassigned; the initial status depends on whether the
// author requires approval.
func (s *promptService) Create(req *domain.CreatePromptRequest, actor *domain.User) (*domain.Prompt, error) {
	prompt := &domain.Prompt{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Tech:        req.Tech,
		Content:     req.Content,
		AuthorID:    &actor.ID,
		AuthorName:  actor.Name,
		Copies:      "0",
		Status:      domain.InitialContentStatus(actor),
	}
	if prompt.Tags == nil {
		prompt.Tags = domain.StringList{}
	}
	if err := s.repo.Create(prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

func (s *promptService) Get(id int64, includeDeleted bool) (*domain.Prompt, error) {
	prompt, err := s.repo.FindByID(id, includeDeleted)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return prompt, nil
}

func (s *promptService) Search(term string, status domain.ContentStatus, page, limit int) ([]*domain.Prompt, *common.Meta, error) {
	page, limit = normalizePage(page, limit)
	items, total, err := s.repo.Search(term, status, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return items, common.NewMeta(page, limit, total), nil
}

// Update edits content fields. Only the owner or an admin may edit; a
// status field in the patch is dropped for non-admin editors while the
// rest of the edit still applies.
func (s *promptService) Update(id int64, patch *domain.PromptPatch, actor *domain.User) (*domain.Prompt, error) {
	prompt, err := s.repo.FindByID(id, false)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !policy.CanEdit(prompt.AuthorID, actor) {
		return nil, common.ErrForbidden
	}

	patch.Apply(prompt, actor.Role.IsAdmin())
	if err := s.repo.Save(prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

// UpdateStatus performs a moderation transition. Privileged roles may
// force any direct transition; everyone else is rejected outright.
func (s *promptService) UpdateStatus(id int64, status domain.ContentStatus, actor *domain.User) (*domain.Prompt, error) {
	if !policy.CanModerate(actor) {
		return nil, common.ErrForbidden
	}
	prompt, err := s.repo.FindByID(id, false)
	if err != nil {
		return nil, mapNotFound(err)
	}

	prompt.Status = status
	if err := s.repo.Save(prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

// Delete removes a prompt. Soft delete sets the tombstone; hard delete
// is the explicit, irreversible path. Authorization is applied by the
// caller layer.
func (s *promptService) Delete(id int64, soft bool) error {
	if soft {
		return mapNotFound(s.repo.SoftDelete(id))
	}
	return mapNotFound(s.repo.HardDelete(id))
}

// Restore clears the tombstone and returns the record unchanged.
func (s *promptService) Restore(id int64) (*domain.Prompt, error) {
	if err := s.repo.Restore(id); err != nil {
		return nil, mapNotFound(err)
	}
	return s.Get(id, false)
}
