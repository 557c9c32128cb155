package service

import (
	"errors"

	"github.com/promptdeck/promptdeck-backend/internal/common"
	"gorm.io/gorm"
)

// mapNotFound converts the storage-layer missing-record error into the
// service-level ErrNotFound; everything else passes through.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrNotFound
	}
	return err
}

// normalizePage clamps pagination input: page >= 1, limit defaults to
// 20 and is capped at 100.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}
	return page, limit
}
