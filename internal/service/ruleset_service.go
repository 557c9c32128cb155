package service

import (
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/internal/policy"
	"github.com/promptdeck/promptdeck-backend/internal/repository"
)

// RulesetService business logic for rulesets
type RulesetService interface {
	Create(req *domain.CreateRulesetRequest, actor *domain.User) (*domain.Ruleset, error)
	Get(id int64, includeDeleted bool) (*domain.Ruleset, error)
	Search(term string, status domain.ContentStatus, page, limit int) ([]*domain.Ruleset, *common.Meta, error)
	Update(id int64, patch *domain.RulesetPatch, actor *domain.User) (*domain.Ruleset, error)
	UpdateStatus(id int64, status domain.ContentStatus, actor *domain.User) (*domain.Ruleset, error)
	Delete(id int64, soft bool) error
	Restore(id int64) (*domain.Ruleset, error)
}

type rulesetService struct {
	repo repository.RulesetRepository
}

// NewRulesetService creates a new RulesetService
func NewRulesetService(repo repository.RulesetRepository) RulesetService {
	return &rulesetService{repo: repo}
}

func (s *rulesetService) Create(req *domain.CreateRulesetRequest, actor *domain.User) (*domain.Ruleset, error) {
	ruleset := &domain.Ruleset{
		Title:         req.Title,
		Description:   req.Description,
		Language:      req.Language,
		Content:       req.Content,
		AuthorID:      &actor.ID,
		ContentStatus: domain.InitialContentStatus(actor),
	}
	if err := s.repo.Create(ruleset); err != nil {
		return nil, err
	}
	return ruleset, nil
}

func (s *rulesetService) Get(id int64, includeDeleted bool) (*domain.Ruleset, error) {
	ruleset, err := s.repo.FindByID(id, includeDeleted)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return ruleset, nil
}

func (s *rulesetService) Search(term string, status domain.ContentStatus, page, limit int) ([]*domain.Ruleset, *common.Meta, error) {
	page, limit = normalizePage(page, limit)
	items, total, err := s.repo.Search(term, status, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return items, common.NewMeta(page, limit, total), nil
}

func (s *rulesetService) Update(id int64, patch *domain.RulesetPatch, actor *domain.User) (*domain.Ruleset, error) {
	ruleset, err := s.repo.FindByID(id, false)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !policy.CanEdit(ruleset.AuthorID, actor) {
		return nil, common.ErrForbidden
	}

	patch.Apply(ruleset, actor.Role.IsAdmin())
	if err := s.repo.Save(ruleset); err != nil {
		return nil, err
	}
	return ruleset, nil
}

func (s *rulesetService) UpdateStatus(id int64, status domain.ContentStatus, actor *domain.User) (*domain.Ruleset, error) {
	if !policy.CanModerate(actor) {
		return nil, common.ErrForbidden
	}
	ruleset, err := s.repo.FindByID(id, false)
	if err != nil {
		return nil, mapNotFound(err)
	}

	ruleset.ContentStatus = status
	if err := s.repo.Save(ruleset); err != nil {
		return nil, err
	}
	return ruleset, nil
}

func (s *rulesetService) Delete(id int64, soft bool) error {
	if soft {
		return mapNotFound(s.repo.SoftDelete(id))
	}
	return mapNotFound(s.repo.HardDelete(id))
}

func (s *rulesetService) Restore(id int64) (*domain.Ruleset, error) {
	if err := s.repo.Restore(id); err != nil {
		return nil, mapNotFound(err)
	}
	return s.Get(id, false)
}
