package repository

import (
	"strings"

	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"gorm.io/gorm"
)

// RulesetRepository ruleset data access
type RulesetRepository interface {
	FindByID(id int64, includeDeleted bool) (*domain.Ruleset, error)
	List(includeDeleted bool, page, limit int) ([]*domain.Ruleset, int64, error)
	Search(term string, status domain.ContentStatus, page, limit int) ([]*domain.Ruleset, int64, error)
	Create(rs *domain.Ruleset) error
	Save(rs *domain.Ruleset) error
	SoftDelete(id int64) error
	HardDelete(id int64) error
	Restore(id int64) error
}

type rulesetRepository struct {
	crud[domain.Ruleset]
}

// NewRulesetRepository creates a new RulesetRepository
func NewRulesetRepository(db *gorm.DB) RulesetRepository {
	return &rulesetRepository{crud[domain.Ruleset]{db: db}}
}

func (r *rulesetRepository) List(includeDeleted bool, page, limit int) ([]*domain.Ruleset, int64, error) {
	q := r.db.Model(&domain.Ruleset{})
	if includeDeleted {
		q = q.Unscoped()
	}
	return paginateRulesets(q, page, limit)
}

func (r *rulesetRepository) Search(term string, status domain.ContentStatus, page, limit int) ([]*domain.Ruleset, int64, error) {
	q := r.db.Model(&domain.Ruleset{})
	if status != "" {
		q = q.Where("content_status = ?", status)
	}
	if term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	return paginateRulesets(q, page, limit)
}

func paginateRulesets(q *gorm.DB, page, limit int) ([]*domain.Ruleset, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []*domain.Ruleset
	offset := (page - 1) * limit
	if err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
