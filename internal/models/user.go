package models

import (
	"strings"
	"time"
)

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	Password  string `gorm:"not null"`
	Role      string `gorm:"not null;default:'user'"`

	// Monetary state. Balance is mutated only through the ledger helpers
	// so the transaction log and this column never diverge.
	Balance float64 `gorm:"type:decimal(12,2);not null;default:0"`

	// Engagement state driving withdrawal eligibility. The voting "day"
	// is a rolling 24h window anchored at LastVoteDateReset, not a
	// calendar date.
	VotingStreak      int `gorm:"not null;default:0"`
	VotingDaysCount   int `gorm:"not null;default:0"`
	LastVotedAt       *time.Time
	LastVoteDateReset *time.Time
	FirstEarnAt       *time.Time

	Version int `gorm:"default:1"`
}

// NormalizeEmail lowercases and trims an email so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
