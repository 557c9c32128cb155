package repository

import (
	"strings"

	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"gorm.io/gorm"
)

// AgentFilter narrows agent listings. The two status axes are filtered
// independently; either may be empty.
type AgentFilter struct {
	Term          string
	Status        domain.AgentStatus
	ContentStatus domain.ContentStatus
}

// AgentRepository agent data access
type AgentRepository interface {
	FindByID(id int64, includeDeleted bool) (*domain.Agent, error)
	List(includeDeleted bool, page, limit int) ([]*domain.Agent, int64, error)
	Search(filter AgentFilter, page, limit int) ([]*domain.Agent, int64, error)
	Create(a *domain.Agent) error
	Save(a *domain.Agent) error
	SoftDelete(id int64) error
	HardDelete(id int64) error
	Restore(id int64) error
}

type agentRepository struct {
	crud[domain.Agent]
}

// NewAgentRepository creates a new AgentRepository
func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &agentRepository{crud[domain.Agent]{db: db}}
}

func (r *agentRepository) List(includeDeleted bool, page, limit int) ([]*domain.Agent, int64, error) {
	q := r.db.Model(&domain.Agent{})
	if includeDeleted {
		q = q.Unscoped()
	}
	return paginateAgents(q, page, limit)
}

func (r *agentRepository) Search(filter AgentFilter, page, limit int) ([]*domain.Agent, int64, error) {
	q := r.db.Model(&domain.Agent{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.ContentStatus != "" {
		q = q.Where("content_status = ?", filter.ContentStatus)
	}
	if filter.Term != "" {
		like := "%" + strings.ToLower(filter.Term) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	return paginateAgents(q, page, limit)
}

func paginateAgents(q *gorm.DB, page, limit int) ([]*domain.Agent, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []*domain.Agent
	offset := (page - 1) * limit
	if err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
