package service

import (
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/internal/policy"
	"github.com/promptdeck/promptdeck-backend/internal/repository"
)

// GuideService business logic for guides
type GuideService interface {
	Create(req *domain.CreateGuideRequest, actor *domain.User) (*domain.Guide, error)
	Get(id int64, includeDeleted bool) (*domain.Guide, error)
	Search(term string, status domain.ContentStatus, page, limit int) ([]*domain.Guide, *common.Meta, error)
	Update(id int64, patch *domain.GuidePatch, actor *domain.User) (*domain.Guide, error)
	UpdateStatus(id int64, status domain.ContentStatus, actor *domain.User) (*domain.Guide, error)
	Delete(id int64, soft bool) error
	Restore(id int64) (*domain.Guide, error)
}

type guideService struct {
	repo repository.GuideRepository
}

// NewGuideService creates a new GuideService
func NewGuideService(repo repository.GuideRepository) GuideService {
	return &guideService{repo: repo}
}

func (s *guideService) Create(req *domain.CreateGuideRequest, actor *domain.User) (*domain.Guide, error) {
	guide := &domain.Guide{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		TimeEstimate: req.TimeEstimate,
		Content:      req.Content,
		AuthorID:     &actor.ID,
		AuthorName:   actor.Name,
		Views:        "0",
		Status:       domain.InitialContentStatus(actor),
	}
	if err := s.repo.Create(guide); err != nil {
		return nil, err
	}
	return guide, nil
}

func (s *guideService) Get(id int64, includeDeleted bool) (*domain.Guide, error) {
	guide, err := s.repo.FindByID(id, includeDeleted)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return guide, nil
}

func (s *guideService) Search(term string, status domain.ContentStatus, page, limit int) ([]*domain.Guide, *common.Meta, error) {
	page, limit = normalizePage(page, limit)
	items, total, err := s.repo.Search(term, status, page, limit)
	if err != nil {
		return nil, nil, err
	}
	return items, common.NewMeta(page, limit, total), nil
}

func (s *guideService) Update(id int64, patch *domain.GuidePatch, actor *domain.User) (*domain.Guide, error) {
	guide, err := s.repo.FindByID(id, false)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if !policy.CanEdit(guide.AuthorID, actor) {
		return nil, common.ErrForbidden
	}

	patch.Apply(guide, actor.Role.IsAdmin())
	if err := s.repo.Save(guide); err != nil {
		return nil, err
	}
	return guide, nil
}

func (s *guideService) UpdateStatus(id int64, status domain.ContentStatus, actor *domain.User) (*domain.Guide, error) {
	if !policy.CanModerate(actor) {
		return nil, common.ErrForbidden
	}
	guide, err := s.repo.FindByID(id, false)
	if err != nil {
		return nil, mapNotFound(err)
	}

	guide.Status = status
	if err := s.repo.Save(guide); err != nil {
		return nil, err
	}
	return guide, nil
}

func (s *guideService) Delete(id int64, soft bool) error {
	if soft {
		return mapNotFound(s.repo.SoftDelete(id))
	}
	return mapNotFound(s.repo.HardDelete(id))
}

func (s *guideService) Restore(id int64) (*domain.Guide, error) {
	if err := s.repo.Restore(id); err != nil {
		return nil, mapNotFound(err)
	}
	return s.Get(id, false)
}
