package services

import (
	"cliprewards-backend/config"
	"cliprewards-backend/internal/database"
	"cliprewards-backend/internal/models"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrVideoNotFound   = errors.New("video not found")
	ErrInvalidVoteType = errors.New("invalid vote type")
	ErrDailyVoteLimit  = errors.New("daily vote limit reached")
)

// VoteResult is what a successful vote reports back to the caller.
type VoteResult struct {
	RewardAmount    float64
	NewBalance      float64
	VotesRemaining  int
	VotingStreak    int
	VotingDaysCount int
}

// GetDailyVoteCount returns how many votes the user has cast on the UTC
// calendar date of now. No row means zero; the date key changing at
// midnight is the implicit daily reset.
func GetDailyVoteCount(userID uint, now time.Time) (int, error) {
	var row models.DailyVoteCount
	err := database.DB.Where("user_id = ? AND vote_date = ?", userID, datatypes.Date(now.UTC())).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Count, nil
}

// CastVote processes one vote: enforces the daily cap, advances the
// voting-day window, computes the reward and credits it through the
// ledger, and records the vote — all inside a single transaction with the
// user row locked, so concurrent votes for the same user serialize. A
// rejected vote leaves zero side effects.
func CastVote(userID, videoID uint, voteType models.VoteType) (*VoteResult, error) {
	if !models.ValidVoteType(voteType) {
		return nil, ErrInvalidVoteType
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	var result VoteResult
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var video models.Video
		if err := tx.First(&video, videoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVideoNotFound
			}
			return err
		}

		// Lock the user row first; every per-user mutation below rides
		// this lock.
		var user models.User
		if err := forUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		now := time.Now().UTC()
		today := datatypes.Date(now)

		var daily models.DailyVoteCount
		dailyErr := forUpdate(tx).
			Where("user_id = ? AND vote_date = ?", userID, today).First(&daily).Error
		if dailyErr != nil && !errors.Is(dailyErr, gorm.ErrRecordNotFound) {
			return dailyErr
		}
		if dailyErr == nil && daily.Count >= cfg.DailyVoteCap {
			return ErrDailyVoteLimit
		}

		// Cap check passed; everything below commits or rolls back as
		// one unit.
		applyVotingWindow(&user, now)

		votedAt := now
		user.LastVotedAt = &votedAt
		if user.FirstEarnAt == nil {
			user.FirstEarnAt = &votedAt
		}

		reward := GenerateReward(video.RewardMin, video.RewardMax)
		if err := creditUser(tx, &user, reward, models.TransactionTypeCredit,
			fmt.Sprintf("Reward for voting on %q", video.Title)); err != nil {
			return err
		}

		vote := models.Vote{
			UserID:       userID,
			VideoID:      videoID,
			VoteType:     voteType,
			RewardAmount: reward,
			CreatedAt:    now,
		}
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}

		if daily.ID == 0 {
			daily = models.DailyVoteCount{UserID: userID, VoteDate: today, Count: 1}
			if err := tx.Create(&daily).Error; err != nil {
				return err
			}
		} else {
			daily.Count++
			if err := tx.Save(&daily).Error; err != nil {
				return err
			}
		}

		remaining := cfg.DailyVoteCap - daily.Count
		if remaining < 0 {
			remaining = 0
		}

		result = VoteResult{
			RewardAmount:    reward,
			NewBalance:      user.Balance,
			VotesRemaining:  remaining,
			VotingStreak:    user.VotingStreak,
			VotingDaysCount: user.VotingDaysCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateUserCache(userID)
	return &result, nil
}
