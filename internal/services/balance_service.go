package services

import (
	"cliprewards-backend/config"
	"cliprewards-backend/internal/database"
	"cliprewards-backend/internal/models"
	"errors"

	"gorm.io/gorm"
)

// BalanceSummary is the wallet overview: current balance, whether a
// withdrawal can be requested right now, and how far away eligibility is
// on each axis.
type BalanceSummary struct {
	Balance             float64
	Eligible            bool
	AmountUntilEligible float64
	DaysUntilEligible   int
	PendingWithdrawal   *models.Withdrawal
}

// GetBalanceSummary reads the user's current monetary and streak state.
// Eligibility means: balance at or above the withdrawal minimum, streak at
// or above the required consecutive voting days, and no pending
// withdrawal.
func GetBalanceSummary(userID uint) (*BalanceSummary, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	pending, err := PendingWithdrawal(userID)
	if err != nil {
		return nil, err
	}

	amountGap := round2(cfg.WithdrawMinAmount - user.Balance)
	if amountGap < 0 {
		amountGap = 0
	}
	daysGap := cfg.RequiredStreakDays - user.VotingStreak
	if daysGap < 0 {
		daysGap = 0
	}

	return &BalanceSummary{
		Balance:             user.Balance,
		Eligible:            amountGap == 0 && daysGap == 0 && pending == nil,
		AmountUntilEligible: amountGap,
		DaysUntilEligible:   daysGap,
		PendingWithdrawal:   pending,
	}, nil
}

// ReconstructBalance sums the user's completed ledger entries. It exists
// for audit: the result must always equal the stored balance.
func ReconstructBalance(userID uint) (float64, error) {
	var entries []models.Transaction
	if err := database.DB.Where("user_id = ? AND status = ?", userID, models.TransactionStatusCompleted).
		Order("created_at asc").Find(&entries).Error; err != nil {
		return 0, err
	}

	var balance float64
	for _, entry := range entries {
		if entry.Type.IsDebit() {
			balance = round2(balance - entry.Amount)
			if balance < 0 {
				balance = 0
			}
		} else {
			balance = round2(balance + entry.Amount)
		}
	}
	return balance, nil
}
