package models

import (
	"time"
)

// Click is one visit to a result link. Append-only: the same URL may
// appear any number of times, once per click.
type Click struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LinkURL   string    `gorm:"size:767;not null" json:"link_url"`
	ClickTime time.Time `gorm:"autoCreateTime" json:"click_time"`
}

func (Click) TableName() string {
	return "pdf_clicks"
}
