package service

import (
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/internal/policy"
	"github.com/promptdeck/promptdeck-backend/internal/repository"
)

// AgentService business logic for agents
type AgentService interface {
	Create(req *domain.CreateAgentRequest, actor *domain.User) (*domain.Agent, error)
	Get(id int64, includeDeleted bool) (*domain.Agent, error)
	Search(filter repository.AgentFilter, page, limit int) ([]*domain.Agent, *common.Meta, error)
	Update(id int64, patch *domain.AgentPatch, actor *domain.User) (*domain.Agent, error)
	UpdateContentStatus(id int64, status domain.ContentStatus, actor *domain.User) (*domain.Agent, error)
	UpdateStatus(id int64, status domain.AgentStatus, actor *domain.User) (*domain.Agent, error)
	Delete(id int64, soft bool) error
	Restore(id int64) (*domain.Agent, error)
}

type agentService struct {
	repo repository.AgentRepository
}

// NewAgentService creates a new AgentService
func NewAgentService(repo repository.AgentRepository) AgentService {
	return &agentService{repo: repo}
}

// Create persists a new agent. Operational status defaults to active;
// the moderation axis starts per the author's approval flag, same as
// every other content type.
func (s *agentService) Create(req *domain.CreateAgentRequest, actor *domain.User) (*domain.Agent, error) {
	status := req.Status
	if status == "" {
		status = domain.AgentActive
	}
	agent := &domain.Agent{
		Title:         req.Title,
		Description:   req.Description,
		Number:        req.Number,
		AuthorID:      &actor.ID,
		Status:        status,
		ContentStatus: domain.InitialContentStatus(actor),
	}
	if err := s.repo.Create(agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *agentService) Get(id int64, includeDeleted bool) (*domain.Agent, error) {
	agent, err := s.repo.FindByID(id, includeDeleted)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return agent, nil
}

func (s *agentService) Search(filter repository.AgentFilter, page, limit int) ([]*domain.Agent, *common.Meta, error) {
	page, limit = normalizePage(page, limit)
	items, total, err := s.repo.Search(filter, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return items, common.NewMeta(page, limit, total), nil
}

func (s *agentService) Update(id int64, patch *domain.AgentPatch, actor *domain.User) (*domain.Agent, error) {
	agent, err := s.repo.FindByID(id, false)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !policy.CanEdit(agent.AuthorID, actor) {
		return nil, common.ErrForbidden
	}

	patch.Apply(agent, actor.Role.IsAdmin())
	if err := s.repo.Save(agent); err != nil {
		return nil, err
	}
	return agent, nil
}

// UpdateContentStatus transitions the moderation axis (privileged only).
func (s *agentService) UpdateContentStatus(id int64, status domain.ContentStatus, actor *domain.User) (*domain.Agent, error) {
	if !policy.CanModerate(actor) {
		return nil, common.ErrForbidden
	}
	agent, err := s.repo.FindByID(id, false)
	if err != nil {
		return nil, mapNotFound(err)
	}

	agent.ContentStatus = status
	if err := s.repo.Save(agent); err != nil {
		return nil, err
	}
	return agent, nil
}

// UpdateStatus transitions the operational axis (privileged only). The
// moderation axis is left untouched: a deprecated agent can stay
// published.
func (s *agentService) UpdateStatus(id int64, status domain.AgentStatus, actor *domain.User) (*domain.Agent, error) {
	if !policy.CanModerate(actor) {
		return nil, common.ErrForbidden
	}
	agent, err := s.repo.FindByID(id, false)
	if err != nil {
		return nil, mapNotFound(err)
	}

	agent.Status = status
	if err := s.repo.Save(agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *agentService) Delete(id int64, soft bool) error {
	if soft {
		return mapNotFound(s.repo.SoftDelete(id))
	}
	return mapNotFound(s.repo.HardDelete(id))
}

func (s *agentService) Restore(id int64) (*domain.Agent, error) {
	if err := s.repo.Restore(id); err != nil {
		return nil, mapNotFound(err)
	}
	return s.Get(id, false)
}
