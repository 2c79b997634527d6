package models

import "gorm.io/datatypes"

// DailyVoteCount caches the number of votes a user has cast on one UTC
// calendar date. The daily cap reads this row; the date key changing at
// midnight is the implicit reset. Distinct from the streak window, which
// rolls per-user every 24 hours.
type DailyVoteCount struct {
	ID       uint           `gorm:"primarykey"`
	UserID   uint           `gorm:"uniqueIndex:idx_user_vote_date;not null"`
	VoteDate datatypes.Date `gorm:"uniqueIndex:idx_user_vote_date;not null"` // UTC calendar date
	Count    int            `gorm:"not null;default:0"`
}
