package models

import (
	"time"
)

// Favorite is a (user key, link URL) pairing. The composite unique index
// makes re-favoriting the same link a no-op at the database level.
type Favorite struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserKey     string    `gorm:"size:191;not null;default:public;index:idx_fav_user_link,unique" json:"user_key"`
	LinkURL     string    `gorm:"size:512;not null;index:idx_fav_user_link,unique" json:"link_url"`
	FavoritedAt time.Time `gorm:"autoCreateTime" json:"favorited_at"`
}

func (Favorite) TableName() string {
	return "pdf_favorites"
}
