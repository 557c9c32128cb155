package repository

import (
	"strings"

	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"gorm.io/gorm"
)

// UserRepository user data access
type UserRepository interface {
	FindByID(id int64, includeDeleted bool) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	ExistsByEmail(email string) (bool, error)
	Search(term string, page, limit int) ([]*domain.User, int64, error)
	Create(u *domain.User) error
	Save(u *domain.User) error
	SoftDelete(id int64) error
	HardDelete(id int64) error
	Restore(id int64) error
}

type userRepository struct {
	crud[domain.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{crud[domain.User]{db: db}}
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// ExistsByEmail checks uniqueness across deleted rows too: a tombstoned
// account still reserves its email.
func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Unscoped().Model(&domain.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Search matches a case-insensitive substring against name and email.
func (r *userRepository) Search(term string, page, limit int) ([]*domain.User, int64, error) {
	q := r.db.Model(&domain.User{})
	if term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []*domain.User
	offset := (page - 1) * limit
	if err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
