package repository

import (
	"strings"

	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"gorm.io/gorm"
)

// PromptRepository prompt data access
type PromptRepository interface {
	FindByID(id int64, includeDeleted bool) (*domain.Prompt, error)
	List(includeDeleted bool, page, limit int) ([]*domain.Prompt, int64, error)
	Search(term string, status domain.ContentStatus, page, limit int) ([]*domain.Prompt, int64, error)
	Create(p *domain.Prompt) error
	Save(p *domain.Prompt) error
	SoftDelete(id int64) error
	HardDelete(id int64) error
	Restore(id int64) error
}

type promptRepository struct {
	crud[domain.Prompt]
}

// NewPromptRepository creates a new PromptRepository
func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{crud[domain.Prompt]{db: db}}
}

func (r *promptRepository) List(includeDeleted bool, page, limit int) ([]*domain.Prompt, int64, error) {
	q := r.db.Model(&domain.Prompt{})
	if includeDeleted {
		q = q.Unscoped()
	}
	return paginatePrompts(q, page, limit)
}

// Search matches a case-insensitive substring against title and
// description. Tombstoned rows are always excluded.
func (r *promptRepository) Search(term string, status domain.ContentStatus, page, limit int) ([]*domain.Prompt, int64, error) {
	q := r.db.Model(&domain.Prompt{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	return paginatePrompts(q, page, limit)
}

func paginatePrompts(q *gorm.DB, page, limit int) ([]*domain.Prompt, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []*domain.Prompt
	offset := (page - 1) * limit
	if err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
