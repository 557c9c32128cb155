package repository

import (
	"strings"

	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"gorm.io/gorm"
)

// ProposalRepository proposal data access
type ProposalRepository interface {
	FindByID(id int64, includeDeleted bool) (*domain.Proposal, error)
	Search(term string, status domain.ProposalStatus, page, limit int) ([]*domain.Proposal, int64, error)
	Create(p *domain.Proposal) error
	Save(p *domain.Proposal) error
	SoftDelete(id int64) error
	HardDelete(id int64) error
	Restore(id int64) error
}

type proposalRepository struct {
	crud[domain.Proposal]
}

// NewProposalRepository creates a new ProposalRepository
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{crud[domain.Proposal]{db: db}}
}

// Search matches a case-insensitive substring against title,
// description and submitter email.
func (r *proposalRepository) Search(term string, status domain.ProposalStatus, page, limit int) ([]*domain.Proposal, int64, error) {
	q := r.db.Model(&domain.Proposal{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []*domain.Proposal
	offset := (page - 1) * limit
	if err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
