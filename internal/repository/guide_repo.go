package repository

import (
	"strings"

	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"gorm.io/gorm"
)

// GuideRepository guide data access
type GuideRepository interface {
	FindByID(id int64, includeDeleted bool) (*domain.Guide, error)
	List(includeDeleted bool, page, limit int) ([]*domain.Guide, int64, error)
	Search(term string, status domain.ContentStatus, page, limit int) ([]*domain.Guide, int64, error)
	Create(g *domain.Guide) error
	Save(g *domain.Guide) error
	SoftDelete(id int64) error
	HardDelete(id int64) error
	Restore(id int64) error
}

type guideRepository struct {
	crud[domain.Guide]
}

// NewGuideRepository creates a new GuideRepository
func NewGuideRepository(db *gorm.DB) GuideRepository {
	return &guideRepository{crud[domain.Guide]{db: db}}
}

func (r *guideRepository) List(includeDeleted bool, page, limit int) ([]*domain.Guide, int64, error) {
	q := r.db.Model(&domain.Guide{})
	if includeDeleted {
		q = q.Unscoped()
	}
	return paginateGuides(q, page, limit)
}

func (r *guideRepository) Search(term string, status domain.ContentStatus, page, limit int) ([]*domain.Guide, int64, error) {
	q := r.db.Model(&domain.Guide{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	return paginateGuides(q, page, limit)
}

func paginateGuides(q *gorm.DB, page, limit int) ([]*domain.Guide, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []*domain.Guide
	offset := (page - 1) * limit
	if err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
