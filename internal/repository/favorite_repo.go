package repository

import (
	"github.com/ComradeCold/pdf-finder-project/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add inserts the (userKey, linkURL) pair. The conflict clause makes a
// re-add a successful no-op instead of a duplicate-key error.
func (r *FavoriteRepository) Add(userKey, linkURL string) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Favorite{UserKey: userKey, LinkURL: linkURL}).Error
}

// Remove deletes the favorite scoped to both key and URL. Deleting a row
// that does not exist is still success.
func (r *FavoriteRepository) Remove(userKey, linkURL string) error {
	return r.db.Where("user_key = ? AND link_url = ?", userKey, linkURL).
		Delete(&models.Favorite{}).Error
}

// ListByUserKey returns the user's favorites, most recent first.
func (r *FavoriteRepository) ListByUserKey(userKey string) ([]models.Favorite, error) {
	var list []models.Favorite
	err := r.db.Where("user_key = ?", userKey).
		Order("favorited_at DESC").
		Find(&list).Error
	return list, err
}
