package services

import (
	"cliprewards-backend/config"
	"cliprewards-backend/internal/database"
	"cliprewards-backend/internal/models"
	"cliprewards-backend/pkg/logger"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrWithdrawalNotFound      = errors.New("withdrawal not found")
	ErrPendingWithdrawalExists = errors.New("a pending withdrawal already exists")
	ErrBelowMinimumAmount      = errors.New("amount is below the minimum withdrawal")
	ErrInsufficientBalance     = errors.New("amount exceeds current balance")
	ErrStreakTooShort          = errors.New("voting streak requirement not met")
	ErrInvalidWithdrawalStatus = errors.New("withdrawal is not pending")
	ErrMissingBankDetails      = errors.New("all bank detail fields are required")
)

// WithdrawalCompletedHook runs after a withdrawal transitions to
// completed, outside the database transaction. Email delivery registers
// here; failures are logged, never propagated to the caller.
type WithdrawalCompletedHook func(*models.Withdrawal)

var withdrawalHookMu sync.RWMutex
var withdrawalCompletedHooks []WithdrawalCompletedHook

func RegisterWithdrawalCompletedHook(h WithdrawalCompletedHook) {
	withdrawalHookMu.Lock()
	withdrawalCompletedHooks = append(withdrawalCompletedHooks, h)
	withdrawalHookMu.Unlock()
}

func runWithdrawalCompletedHooks(w *models.Withdrawal) {
	withdrawalHookMu.RLock()
	hooks := make([]WithdrawalCompletedHook, len(withdrawalCompletedHooks))
	copy(hooks, withdrawalCompletedHooks)
	withdrawalHookMu.RUnlock()
	for _, h := range hooks {
		h(w)
	}
}

// CreateWithdrawal opens a pending withdrawal for the user. The amount is
// frozen now but not debited; the debit happens at fee confirmation. All
// preconditions are checked under the user row lock so a double-submit
// cannot create two pending withdrawals.
func CreateWithdrawal(userID uint, amount float64) (*models.Withdrawal, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	amount = round2(amount)

	var withdrawal *models.Withdrawal
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := forUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if amount <= 0 || amount < cfg.WithdrawMinAmount {
			return ErrBelowMinimumAmount
		}
		if amount > user.Balance {
			return ErrInsufficientBalance
		}
		if user.VotingStreak < cfg.RequiredStreakDays {
			return ErrStreakTooShort
		}

		var pending int64
		if err := tx.Model(&models.Withdrawal{}).
			Where("user_id = ? AND status = ?", userID, models.WithdrawalStatusPending).
			Count(&pending).Error; err != nil {
			return err
		}
		if pending > 0 {
			return ErrPendingWithdrawalExists
		}

		withdrawal = &models.Withdrawal{
			UserID:      userID,
			Amount:      amount,
			Status:      models.WithdrawalStatusPending,
			RequestedAt: time.Now(),
		}
		return tx.Create(withdrawal).Error
	})
	if err != nil {
		return nil, err
	}
	return withdrawal, nil
}

// AttachBankDetails stores the payout destination on a pending
// withdrawal. Status does not change.
func AttachBankDetails(userID, withdrawalID uint, details models.BankDetails) error {
	if details.HolderName == "" || details.BankName == "" ||
		details.AccountNumber == "" || details.RoutingNumber == "" {
		return ErrMissingBankDetails
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		withdrawal, err := lockWithdrawal(tx, userID, withdrawalID)
		if err != nil {
			return err
		}
		if withdrawal.Status != models.WithdrawalStatusPending {
			return ErrInvalidWithdrawalStatus
		}

		withdrawal.BankDetails = &details
		return tx.Save(withdrawal).Error
	})
}

// CancelWithdrawal moves a pending withdrawal to cancelled. The amount was
// never debited, so the balance is untouched.
func CancelWithdrawal(userID, withdrawalID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		withdrawal, err := lockWithdrawal(tx, userID, withdrawalID)
		if err != nil {
			return err
		}
		if withdrawal.Status != models.WithdrawalStatusPending {
			return ErrInvalidWithdrawalStatus
		}

		now := time.Now()
		withdrawal.Status = models.WithdrawalStatusCancelled
		withdrawal.CompletedAt = &now
		return tx.Save(withdrawal).Error
	})
}

// ConfirmFeePayment completes a pending withdrawal: debits the frozen
// amount through the ledger, marks the withdrawal completed, and resets
// the voting streak — one transaction, so a crash cannot leave a debit
// without the completed status or vice versa. Calling it again on an
// already-completed withdrawal succeeds without debiting twice.
func ConfirmFeePayment(userID, withdrawalID uint) error {
	var completed *models.Withdrawal
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		withdrawal, err := lockWithdrawal(tx, userID, withdrawalID)
		if err != nil {
			return err
		}
		if withdrawal.Status == models.WithdrawalStatusCompleted {
			// Idempotent re-entry: the debit already happened.
			return nil
		}
		if withdrawal.Status != models.WithdrawalStatusPending {
			return ErrInvalidWithdrawalStatus
		}

		var user models.User
		if err := forUpdate(tx).First(&user, userID).Error; err != nil {
			return err
		}

		// The streak reset rides the same row save as the debit.
		user.VotingStreak = 0
		user.VotingDaysCount = 0
		if err := debitUser(tx, &user, withdrawal.Amount, models.TransactionTypeWithdrawalDebit,
			fmt.Sprintf("Withdrawal #%d completed", withdrawal.ID)); err != nil {
			return err
		}

		now := time.Now()
		withdrawal.Status = models.WithdrawalStatusCompleted
		withdrawal.CompletedAt = &now
		if err := tx.Save(withdrawal).Error; err != nil {
			return err
		}

		completed = withdrawal
		return nil
	})
	if err != nil {
		return err
	}

	invalidateUserCache(userID)
	if completed != nil {
		logger.Log.Info("withdrawal completed",
			zap.Uint("withdrawal_id", completed.ID),
			zap.Uint("user_id", userID),
			zap.Float64("amount", completed.Amount))
		runWithdrawalCompletedHooks(completed)
	}
	return nil
}

// RejectWithdrawal is the admin path out of pending. No balance impact.
func RejectWithdrawal(withdrawalID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var withdrawal models.Withdrawal
		err := forUpdate(tx).First(&withdrawal, withdrawalID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrWithdrawalNotFound
			}
			return err
		}
		if withdrawal.Status != models.WithdrawalStatusPending {
			return ErrInvalidWithdrawalStatus
		}

		now := time.Now()
		withdrawal.Status = models.WithdrawalStatusRejected
		withdrawal.CompletedAt = &now
		return tx.Save(&withdrawal).Error
	})
}

// FindWithdrawals lists a user's withdrawals newest-first.
func FindWithdrawals(userID uint) ([]models.Withdrawal, error) {
	var withdrawals []models.Withdrawal
	err := database.DB.Where("user_id = ?", userID).
		Order("requested_at desc").Find(&withdrawals).Error
	return withdrawals, err
}

// PendingWithdrawal returns the user's pending withdrawal, or nil.
func PendingWithdrawal(userID uint) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	err := database.DB.Where("user_id = ? AND status = ?", userID, models.WithdrawalStatusPending).
		First(&withdrawal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &withdrawal, nil
}

// WithdrawalFilter defines criteria for the admin withdrawal listing.
type WithdrawalFilter struct {
	UserID *uint
	Status *models.WithdrawalStatus
	Page   int
	Limit  int
}

// FindAllWithdrawals retrieves a paginated list of withdrawals with
// filtering, newest-first.
func FindAllWithdrawals(filter WithdrawalFilter) ([]models.Withdrawal, int64, error) {
	var withdrawals []models.Withdrawal
	var total int64

	query := database.DB.Model(&models.Withdrawal{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := query.Order("requested_at desc").Limit(filter.Limit).Offset(offset).Find(&withdrawals).Error; err != nil {
		return nil, 0, err
	}

	return withdrawals, total, nil
}

func lockWithdrawal(tx *gorm.DB, userID, withdrawalID uint) (*models.Withdrawal, error) {
	var withdrawal models.Withdrawal
	err := forUpdate(tx).
		Where("id = ? AND user_id = ?", withdrawalID, userID).
		First(&withdrawal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWithdrawalNotFound
		}
		return nil, err
	}
	return &withdrawal, nil
}
