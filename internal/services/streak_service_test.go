package services

import (
	"testing"
	"time"

	"cliprewards-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyVotingWindow_FirstVote(t *testing.T) {
	now := time.Date(2025, 3, 1, 15, 30, 0, 0, time.UTC)
	user := &models.User{}

	applyVotingWindow(user, now)

	assert.Equal(t, 1, user.VotingDaysCount)
	assert.Equal(t, 1, user.VotingStreak)
	if assert.NotNil(t, user.LastVoteDateReset) {
		assert.Equal(t, now, *user.LastVoteDateReset)
	}
}

func TestApplyVotingWindow_WithinWindow(t *testing.T) {
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	user := &models.User{
		VotingDaysCount:   3,
		VotingStreak:      3,
		LastVoteDateReset: &start,
	}

	// 23h59m after the window anchor: still the same voting day.
	applyVotingWindow(user, start.Add(23*time.Hour+59*time.Minute))

	assert.Equal(t, 3, user.VotingDaysCount)
	assert.Equal(t, 3, user.VotingStreak)
	assert.Equal(t, start, *user.LastVoteDateReset)
}

func TestApplyVotingWindow_ExpiredWindow(t *testing.T) {
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	user := &models.User{
		VotingDaysCount:   3,
		VotingStreak:      3,
		LastVoteDateReset: &start,
	}

	next := start.Add(24 * time.Hour)
	applyVotingWindow(user, next)

	assert.Equal(t, 4, user.VotingDaysCount)
	assert.Equal(t, 4, user.VotingStreak)
	assert.Equal(t, next, *user.LastVoteDateReset)
}

func TestApplyVotingWindow_SlowVoterAdvancesEveryVote(t *testing.T) {
	// Voting once every 25 hours never breaks the streak: each vote opens
	// a fresh window and counts as the next voting day.
	user := &models.User{}
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		applyVotingWindow(user, now)
		now = now.Add(25 * time.Hour)
	}

	assert.Equal(t, 5, user.VotingDaysCount)
	assert.Equal(t, 5, user.VotingStreak)
}

func TestApplyVotingWindow_StreakRestartsAfterReset(t *testing.T) {
	// After a completed withdrawal zeroes the streak, the day counter keeps
	// its history but the streak restarts from 1 on the next voting day.
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	user := &models.User{
		VotingDaysCount:   30,
		VotingStreak:      0,
		LastVoteDateReset: &start,
	}

	applyVotingWindow(user, start.Add(26*time.Hour))

	assert.Equal(t, 31, user.VotingDaysCount)
	assert.Equal(t, 1, user.VotingStreak)
}

func TestApplyVotingWindow_MissingAnchorTreatedAsExpired(t *testing.T) {
	user := &models.User{
		VotingDaysCount: 2,
		VotingStreak:    2,
	}

	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	applyVotingWindow(user, now)

	assert.Equal(t, 3, user.VotingDaysCount)
	assert.Equal(t, 3, user.VotingStreak)
	assert.Equal(t, now, *user.LastVoteDateReset)
}
