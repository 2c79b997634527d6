package services

import (
	"time"

	"cliprewards-backend/internal/models"
)

const votingWindowHours = 24

// applyVotingWindow advances the rolling voting-day state for a vote cast
// at now. The window is anchored to the user's first vote of the current
// period, not to calendar midnight, so two users voting at different times
// of day accumulate streaks independently. Mutates user in place; the
// caller persists the row inside its transaction.
//
// The first vote ever, and the first vote after a withdrawal resets the
// counters, starts both the day count and the streak at 1 instead of
// only opening the window. A user voting at >24h intervals increments
// the streak on every vote. Both match the deployed behavior and are
// kept on purpose.
func applyVotingWindow(user *models.User, now time.Time) {
	if user.VotingDaysCount == 0 {
		start := now
		user.VotingDaysCount = 1
		user.LastVoteDateReset = &start
		if user.VotingStreak == 0 {
			user.VotingStreak = 1
		}
		return
	}

	if user.LastVoteDateReset == nil || now.Sub(*user.LastVoteDateReset) >= votingWindowHours*time.Hour {
		start := now
		user.LastVoteDateReset = &start
		user.VotingDaysCount++
		if user.VotingStreak == 0 {
			user.VotingStreak = 1
		} else {
			user.VotingStreak++
		}
	}
	// Within the current window: nothing changes.
}
