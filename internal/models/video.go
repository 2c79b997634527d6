package models

import "time"

// Video is a read-only catalog entry. Rows are seeded at startup and never
// modified by the voting flow.
type Video struct {
	ID              uint `gorm:"primarykey"`
	CreatedAt       time.Time
	Title           string  `gorm:"uniqueIndex;not null"`
	Description     string  `gorm:"type:text"`
	URL             string  `gorm:"not null"`
	ThumbnailURL    string
	RewardMin       float64 `gorm:"type:decimal(12,2);not null"`
	RewardMax       float64 `gorm:"type:decimal(12,2);not null"`
	DurationSeconds int     `gorm:"not null;default:0"`
}
