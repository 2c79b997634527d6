package models

import "time"

type VoteType string

const (
	VoteTypeLike    VoteType = "like"
	VoteTypeDislike VoteType = "dislike"
)

// ValidVoteType reports whether t is one of the accepted vote types.
// Like and dislike are cosmetic; neither affects the reward amount.
func ValidVoteType(t VoteType) bool {
	return t == VoteTypeLike || t == VoteTypeDislike
}

// Vote records one reward-granting interaction. Rows are append-only.
type Vote struct {
	ID           uint      `gorm:"primarykey"`
	CreatedAt    time.Time `gorm:"precision:3"`
	UserID       uint      `gorm:"index;not null"`
	VideoID      uint      `gorm:"index;not null"`
	VoteType     VoteType  `gorm:"type:varchar(10);not null"`
	RewardAmount float64   `gorm:"type:decimal(12,2);not null"`
}
