package services

import (
	"cliprewards-backend/config"
	"cliprewards-backend/internal/database"
	"cliprewards-backend/internal/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ledgerSecret returns the HMAC key for transaction hashes.
func ledgerSecret() string {
	cfg, _ := config.LoadConfig()
	if cfg != nil && cfg.JWTSecret != "" {
		return cfg.JWTSecret
	}
	return "default-secret"
}

// creditUser appends a completed ledger entry and adds amount to the
// user's balance. The user row must already be locked by the caller's
// transaction; both writes commit or roll back together.
func creditUser(tx *gorm.DB, user *models.User, amount float64, txType models.TransactionType, description string) error {
	amount = round2(amount)
	balanceBefore := user.Balance
	user.Balance = round2(user.Balance + amount)
	user.Version++
	if err := tx.Save(user).Error; err != nil {
		return err
	}

	entry := models.Transaction{
		UserID:        user.ID,
		Type:          txType,
		Amount:        amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  user.Balance,
		Description:   description,
		Status:        models.TransactionStatusCompleted,
		CreatedAt:     time.Now(),
	}
	entry.Hash = entry.GenerateHash(ledgerSecret())

	return tx.Create(&entry).Error
}

// debitUser appends a completed ledger entry and subtracts amount from the
// user's balance, clamping at zero. Same locking contract as creditUser.
func debitUser(tx *gorm.DB, user *models.User, amount float64, txType models.TransactionType, description string) error {
	amount = round2(amount)
	balanceBefore := user.Balance
	newBalance := round2(user.Balance - amount)
	if newBalance < 0 {
		newBalance = 0
	}
	user.Balance = newBalance
	user.Version++
	if err := tx.Save(user).Error; err != nil {
		return err
	}

	entry := models.Transaction{
		UserID:        user.ID,
		Type:          txType,
		Amount:        amount,
		BalanceBefore: balanceBefore,
		BalanceAfter:  user.Balance,
		Description:   description,
		Status:        models.TransactionStatusCompleted,
		CreatedAt:     time.Now(),
	}
	entry.Hash = entry.GenerateHash(ledgerSecret())

	return tx.Create(&entry).Error
}

// ApplyCredit credits a user's balance in its own transaction and returns
// the new balance. Used for standalone adjustments; the vote flow calls
// creditUser inside its own transaction instead.
func ApplyCredit(userID uint, amount float64, description string) (float64, error) {
	var newBalance float64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := forUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := creditUser(tx, &user, amount, models.TransactionTypeCredit, description); err != nil {
			return err
		}
		newBalance = user.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}
	invalidateUserCache(userID)
	return newBalance, nil
}

// ApplyDebit debits a user's balance in its own transaction and returns
// the new balance. The balance never goes negative.
func ApplyDebit(userID uint, amount float64, description string) (float64, error) {
	var newBalance float64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := forUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if err := debitUser(tx, &user, amount, models.TransactionTypeDebit, description); err != nil {
			return err
		}
		newBalance = user.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}
	invalidateUserCache(userID)
	return newBalance, nil
}
