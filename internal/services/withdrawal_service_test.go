package services

import (
	"os"
	"testing"

	"cliprewards-backend/internal/database"
	"cliprewards-backend/internal/models"
	"cliprewards-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupWithdrawalTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Transaction{}, &models.Withdrawal{})
	db.AutoMigrate(&models.User{}, &models.Transaction{}, &models.Withdrawal{})

	database.DB = db
	database.RedisClient = nil
	logger.Log = zap.NewNop()
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("WITHDRAW_MIN_AMOUNT", "150")
	os.Setenv("REQUIRED_STREAK_DAYS", "20")
}

func seedWithdrawalUser(balance float64, streak int) models.User {
	user := models.User{
		Email:           "payout@example.com",
		Name:            "Payout",
		Password:        "x",
		Role:            "user",
		Balance:         balance,
		VotingStreak:    streak,
		VotingDaysCount: streak,
	}
	database.DB.Create(&user)
	return user
}

func TestCreateWithdrawal_Preconditions(t *testing.T) {
	tests := []struct {
		name        string
		balance     float64
		streak      int
		amount      float64
		expectedErr error
	}{
		{"Below minimum", 500.0, 25, 100.0, ErrBelowMinimumAmount},
		{"Zero amount", 500.0, 25, 0.0, ErrBelowMinimumAmount},
		{"Negative amount", 500.0, 25, -150.0, ErrBelowMinimumAmount},
		{"Exceeds balance", 200.0, 25, 350.0, ErrInsufficientBalance},
		{"Streak too short", 500.0, 19, 150.0, ErrStreakTooShort},
		{"Exactly at thresholds", 150.0, 20, 150.0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupWithdrawalTestDB()
			user := seedWithdrawalUser(tt.balance, tt.streak)

			withdrawal, err := CreateWithdrawal(user.ID, tt.amount)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, models.WithdrawalStatusPending, withdrawal.Status)
			assert.Equal(t, tt.amount, withdrawal.Amount)

			// Creation freezes the amount but does not debit.
			var updated models.User
			database.DB.First(&updated, user.ID)
			assert.Equal(t, tt.balance, updated.Balance)
		})
	}
}

func TestCreateWithdrawal_RejectsSecondPending(t *testing.T) {
	setupWithdrawalTestDB()
	user := seedWithdrawalUser(1000.0, 25)

	_, err := CreateWithdrawal(user.ID, 200.0)
	assert.NoError(t, err)

	_, err = CreateWithdrawal(user.ID, 150.0)
	assert.ErrorIs(t, err, ErrPendingWithdrawalExists)
}

func TestCreateWithdrawal_AllowedAfterTerminalState(t *testing.T) {
	setupWithdrawalTestDB()
	user := seedWithdrawalUser(1000.0, 25)

	first, err := CreateWithdrawal(user.ID, 200.0)
	assert.NoError(t, err)
	assert.NoError(t, CancelWithdrawal(user.ID, first.ID))

	_, err = CreateWithdrawal(user.ID, 150.0)
	assert.NoError(t, err)
}

func TestAttachBankDetails(t *testing.T) {
	setupWithdrawalTestDB()
	user := seedWithdrawalUser(1000.0, 25)
	w, _ := CreateWithdrawal(user.ID, 200.0)

	err := AttachBankDetails(user.ID, w.ID, models.BankDetails{
		HolderName: "Pat Doe", BankName: "First National",
	})
	assert.ErrorIs(t, err, ErrMissingBankDetails)

	details := models.BankDetails{
		HolderName:    "Pat Doe",
		BankName:      "First National",
		AccountNumber: "000123456789",
		RoutingNumber: "110000000",
	}
	assert.NoError(t, AttachBankDetails(user.ID, w.ID, details))

	var stored models.Withdrawal
	database.DB.First(&stored, w.ID)
	assert.Equal(t, models.WithdrawalStatusPending, stored.Status)
	if assert.NotNil(t, stored.BankDetails) {
		assert.Equal(t, details, *stored.BankDetails)
	}
}

func TestAttachBankDetails_RejectsWrongOwnerAndStatus(t *testing.T) {
	setupWithdrawalTestDB()
	user := seedWithdrawalUser(1000.0, 25)
	w, _ := CreateWithdrawal(user.ID, 200.0)

	details := models.BankDetails{
		HolderName: "Pat Doe", BankName: "First National",
		AccountNumber: "000123456789", RoutingNumber: "110000000",
	}

	// Another user's ID never sees this withdrawal.
	err := AttachBankDetails(user.ID+1, w.ID, details)
	assert.ErrorIs(t, err, ErrWithdrawalNotFound)

	assert.NoError(t, CancelWithdrawal(user.ID, w.ID))
	err = AttachBankDetails(user.ID, w.ID, details)
	assert.ErrorIs(t, err, ErrInvalidWithdrawalStatus)
}

func TestCancelWithdrawal(t *testing.T) {
	setupWithdrawalTestDB()
	user := seedWithdrawalUser(1000.0, 25)
	w, _ := CreateWithdrawal(user.ID, 200.0)

	assert.NoError(t, CancelWithdrawal(user.ID, w.ID))

	var stored models.Withdrawal
	database.DB.First(&stored, w.ID)
	assert.Equal(t, models.WithdrawalStatusCancelled, stored.Status)
	assert.NotNil(t, stored.CompletedAt)

	// Nothing was ever debited, so nothing comes back.
	var updated models.User
	database.DB.First(&updated, user.ID)
	assert.Equal(t, 1000.0, updated.Balance)
	assert.Equal(t, 25, updated.VotingStreak)

	assert.ErrorIs(t, CancelWithdrawal(user.ID, w.ID), ErrInvalidWithdrawalStatus)
}

func TestConfirmFeePayment(t *testing.T) {
	setupWithdrawalTestDB()
	user := seedWithdrawalUser(500.0, 21)
	w, _ := CreateWithdrawal(user.ID, 350.0)

	hookCalls := 0
	RegisterWithdrawalCompletedHook(func(completed *models.Withdrawal) {
		if completed.ID == w.ID {
			hookCalls++
		}
	})

	assert.NoError(t, ConfirmFeePayment(user.ID, w.ID))

	var stored models.Withdrawal
	database.DB.First(&stored, w.ID)
	assert.Equal(t, models.WithdrawalStatusCompleted, stored.Status)
	assert.NotNil(t, stored.CompletedAt)

	// Debit and streak reset land together.
	var updated models.User
	database.DB.First(&updated, user.ID)
	assert.Equal(t, 150.0, updated.Balance)
	assert.Equal(t, 0, updated.VotingStreak)
	assert.Equal(t, 0, updated.VotingDaysCount)

	var entry models.Transaction
	assert.NoError(t, database.DB.Where("user_id = ?", user.ID).First(&entry).Error)
	assert.Equal(t, models.TransactionTypeWithdrawalDebit, entry.Type)
	assert.Equal(t, 350.0, entry.Amount)
	assert.Equal(t, 500.0, entry.BalanceBefore)
	assert.Equal(t, 150.0, entry.BalanceAfter)

	assert.Equal(t, 1, hookCalls)
}

func TestConfirmFeePayment_Idempotent(t *testing.T) {
	setupWithdrawalTestDB()
	user := seedWithdrawalUser(500.0, 21)
	w, _ := CreateWithdrawal(user.ID, 350.0)

	assert.NoError(t, ConfirmFeePayment(user.ID, w.ID))
	assert.NoError(t, ConfirmFeePayment(user.ID, w.ID))

	// Confirming twice debits once.
	var updated models.User
	database.DB.First(&updated, user.ID)
	assert.Equal(t, 150.0, updated.Balance)

	var debits int64
	database.DB.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", user.ID, models.TransactionTypeWithdrawalDebit).
		Count(&debits)
	assert.Equal(t, int64(1), debits)
}

func TestConfirmFeePayment_RejectsCancelled(t *testing.T) {
	setupWithdrawalTestDB()
	user := seedWithdrawalUser(500.0, 21)
	w, _ := CreateWithdrawal(user.ID, 350.0)

	assert.NoError(t, CancelWithdrawal(user.ID, w.ID))
	assert.ErrorIs(t, ConfirmFeePayment(user.ID, w.ID), ErrInvalidWithdrawalStatus)
}

func TestRejectWithdrawal(t *testing.T) {
	setupWithdrawalTestDB()
	user := seedWithdrawalUser(500.0, 21)
	w, _ := CreateWithdrawal(user.ID, 350.0)

	assert.NoError(t, RejectWithdrawal(w.ID))

	var stored models.Withdrawal
	database.DB.First(&stored, w.ID)
	assert.Equal(t, models.WithdrawalStatusRejected, stored.Status)

	var updated models.User
	database.DB.First(&updated, user.ID)
	assert.Equal(t, 500.0, updated.Balance)

	assert.ErrorIs(t, RejectWithdrawal(w.ID), ErrInvalidWithdrawalStatus)
	assert.ErrorIs(t, RejectWithdrawal(9999), ErrWithdrawalNotFound)
}

func TestPendingWithdrawal(t *testing.T) {
	setupWithdrawalTestDB()
	user := seedWithdrawalUser(1000.0, 25)

	pending, err := PendingWithdrawal(user.ID)
	assert.NoError(t, err)
	assert.Nil(t, pending)

	w, _ := CreateWithdrawal(user.ID, 200.0)

	pending, err = PendingWithdrawal(user.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, pending) {
		assert.Equal(t, w.ID, pending.ID)
	}
}

func TestFindAllWithdrawals_Filters(t *testing.T) {
	setupWithdrawalTestDB()

	alice := models.User{Email: "alice@example.com", Name: "Alice", Password: "x", Role: "user", Balance: 1000, VotingStreak: 25}
	bob := models.User{Email: "bob@example.com", Name: "Bob", Password: "x", Role: "user", Balance: 1000, VotingStreak: 25}
	database.DB.Create(&alice)
	database.DB.Create(&bob)

	aw, _ := CreateWithdrawal(alice.ID, 200.0)
	bw, _ := CreateWithdrawal(bob.ID, 300.0)
	_ = CancelWithdrawal(bob.ID, bw.ID)

	all, total, err := FindAllWithdrawals(WithdrawalFilter{Page: 1, Limit: 20})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	pendingStatus := models.WithdrawalStatusPending
	pendingOnly, total, err := FindAllWithdrawals(WithdrawalFilter{Page: 1, Limit: 20, Status: &pendingStatus})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, aw.ID, pendingOnly[0].ID)

	byUser, total, err := FindAllWithdrawals(WithdrawalFilter{Page: 1, Limit: 20, UserID: &bob.ID})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, bw.ID, byUser[0].ID)
}
