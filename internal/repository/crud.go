package repository

import (
	"gorm.io/gorm"
)

// crud is the soft-delete lifecycle shared by every repository.
// Default queries exclude tombstoned rows via gorm.DeletedAt; hard
// delete is a separate code path the caller must request explicitly.
type crud[T any] struct {
	db *gorm.DB
}

// FindByID returns the record or gorm.ErrRecordNotFound. Tombstoned
// rows are only visible with includeDeleted.
func (r crud[T]) FindByID(id int64, includeDeleted bool) (*T, error) {
	q := r.db
	if includeDeleted {
		q = q.Unscoped()
	}
	var m T
	if err := q.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserts a new record.
func (r crud[T]) Create(m *T) error {
	return r.db.Create(m).Error
}

// Save writes all fields of the record back. Last writer wins; the
// services do not implement version checks.
func (r crud[T]) Save(m *T) error {
	return r.db.Save(m).Error
}

// SoftDelete sets the tombstone. A record that is absent or already
// tombstoned yields gorm.ErrRecordNotFound: the lookup excludes deleted
// rows, so repeated soft deletes fail instead of re-applying.
func (r crud[T]) SoftDelete(id int64) error {
	tx := r.db.Where("id = ?", id).Delete(new(T))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HardDelete permanently removes a visible record. Tombstoned rows are
// not reachable here either; they must be restored first.
func (r crud[T]) HardDelete(id int64) error {
	tx := r.db.Unscoped().Where("id = ? AND deleted_at IS NULL", id).Delete(new(T))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Restore clears the tombstone. The lookup requires a set tombstone, so
// restoring a never-deleted or already-restored record fails safely
// with gorm.ErrRecordNotFound and never double-applies.
func (r crud[T]) Restore(id int64) error {
	tx := r.db.Unscoped().Model(new(T)).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
