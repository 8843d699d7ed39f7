package repository

import (
	"github.com/ComradeCold/pdf-finder-project/internal/models"

	"gorm.io/gorm"
)

type ClickRepository struct {
	db *gorm.DB
}

func NewClickRepository(db *gorm.DB) *ClickRepository {
	return &ClickRepository{db: db}
}

// Record appends a click row. No dedup: clicking the same link twice
// stores two rows.
func (r *ClickRepository) Record(linkURL string) error {
	return r.db.Create(&models.Click{LinkURL: linkURL}).Error
}

// ListRecent returns the newest clicks first.
func (r *ClickRepository) ListRecent(limit int) ([]models.Click, error) {
	if limit <= 0 {
		limit = 50
	}
	var list []models.Click
	err := r.db.Order("id DESC").Limit(limit).Find(&list).Error
	return list, err
}
