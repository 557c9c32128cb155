package service

import (
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/internal/policy"
	"github.com/promptdeck/promptdeck-backend/internal/repository"
)

// ProposalService business logic for community proposals. Proposals
// are anonymous: anyone may submit, only privileged roles may list or
// review, and no edit operation exists.
type ProposalService interface {
	Create(req *domain.CreateProposalRequest) (*domain.Proposal, error)
	Get(id int64, includeDeleted bool) (*domain.Proposal, error)
	Search(term string, status domain.ProposalStatus, page, limit int) ([]*domain.Proposal, *common.Meta, error)
	UpdateStatus(id int64, status domain.ProposalStatus, actor *domain.User) (*domain.Proposal, error)
	Delete(id int64, soft bool) error
	Restore(id int64) (*domain.Proposal, error)
}

type proposalService struct {
	repo repository.ProposalRepository
}

// NewProposalService creates a new ProposalService
func NewProposalService(repo repository.ProposalRepository) ProposalService {
	return &proposalService{repo: repo}
}

// Create records an anonymous submission in pending status.
func (s *proposalService) Create(req *domain.CreateProposalRequest) (*domain.Proposal, error) {
	proposal := &domain.Proposal{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Email:       req.Email,
		Tags:        req.Tags,
		Status:      domain.ProposalPending,
	}
	if proposal.Tags == nil {
		proposal.Tags = domain.StringList{}
	}
	if err := s.repo.Create(proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

func (s *proposalService) Get(id int64, includeDeleted bool) (*domain.Proposal, error) {
	proposal, err := s.repo.FindByID(id, includeDeleted)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return proposal, nil
}

func (s *proposalService) Search(term string, status domain.ProposalStatus, page, limit int) ([]*domain.Proposal, *common.Meta, error) {
	page, limit = normalizePage(page, limit)
	items, total, err := s.repo.Search(term, status, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return items, common.NewMeta(page, limit, total), nil
}

// UpdateStatus reviews a proposal and records who reviewed it.
func (s *proposalService) UpdateStatus(id int64, status domain.ProposalStatus, actor *domain.User) (*domain.Proposal, error) {
	if !policy.CanModerate(actor) {
		return nil, common.ErrForbidden
	}
	proposal, err := s.repo.FindByID(id, false)
	if err != nil {
		return nil, mapNotFound(err)
	}

	proposal.Status = status
	proposal.ReviewerID = &actor.ID
	if err := s.repo.Save(proposal); err != nil {
		return nil, err
	}
	return proposal, nil
}

func (s *proposalService) Delete(id int64, soft bool) error {
	if soft {
		return mapNotFound(s.repo.SoftDelete(id))
	}
	return mapNotFound(s.repo.HardDelete(id))
}

func (s *proposalService) Restore(id int64) (*domain.Proposal, error) {
	if err := s.repo.Restore(id); err != nil {
		return nil, mapNotFound(err)
	}
	return s.Get(id, false)
}
