package wallet_test

import (
	"cliprewards-backend/internal/api/v1/wallet"
	"cliprewards-backend/internal/database"
	"cliprewards-backend/internal/models"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Transaction{}, &models.Withdrawal{})
	err = db.AutoMigrate(&models.User{}, &models.Transaction{}, &models.Withdrawal{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
	os.Setenv("WITHDRAW_MIN_AMOUNT", "150")
	os.Setenv("REQUIRED_STREAK_DAYS", "20")
}

func setupRouter(authUser models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		// Simulate the auth middleware.
		c.Set("user", authUser)
		c.Next()
	})
	wallet.RegisterRoutes(&r.RouterGroup)
	return r
}

func TestGetBalance(t *testing.T) {
	setupTestDB()

	u := models.User{Email: "wallet@example.com", Name: "Wallet", Password: "x", Role: "user", Balance: 90.0, VotingStreak: 15}
	database.DB.Create(&u)

	r := setupRouter(u)

	req, _ := http.NewRequest(http.MethodGet, "/wallet/balance", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int                    `json:"status"`
		Data wallet.BalanceResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 90.0, resp.Data.Balance)
	assert.False(t, resp.Data.Eligible)
	assert.Equal(t, 60.0, resp.Data.AmountUntilEligible)
	assert.Equal(t, 5, resp.Data.DaysUntilEligible)
	assert.Nil(t, resp.Data.PendingWithdrawal)
}

func TestGetBalance_WithPendingWithdrawal(t *testing.T) {
	setupTestDB()

	u := models.User{Email: "pending@example.com", Name: "Pending", Password: "x", Role: "user", Balance: 400.0, VotingStreak: 25}
	database.DB.Create(&u)
	pw := models.Withdrawal{UserID: u.ID, Amount: 200.0, Status: models.WithdrawalStatusPending, RequestedAt: time.Now()}
	database.DB.Create(&pw)

	r := setupRouter(u)

	req, _ := http.NewRequest(http.MethodGet, "/wallet/balance", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Code int                    `json:"status"`
		Data wallet.BalanceResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.False(t, resp.Data.Eligible)
	if assert.NotNil(t, resp.Data.PendingWithdrawal) {
		assert.Equal(t, pw.ID, resp.Data.PendingWithdrawal.ID)
		assert.Equal(t, 200.0, resp.Data.PendingWithdrawal.Amount)
	}
}

func TestListTransactions_NewestFirst(t *testing.T) {
	setupTestDB()

	u := models.User{Email: "history@example.com", Name: "History", Password: "x", Role: "user"}
	database.DB.Create(&u)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	database.DB.Create(&models.Transaction{UserID: u.ID, Type: models.TransactionTypeCredit, Amount: 1.0, Description: "first", Status: models.TransactionStatusCompleted, CreatedAt: base})
	database.DB.Create(&models.Transaction{UserID: u.ID, Type: models.TransactionTypeCredit, Amount: 2.0, Description: "second", Status: models.TransactionStatusCompleted, CreatedAt: base.Add(time.Hour)})

	// Another user's entries stay out of the listing.
	database.DB.Create(&models.Transaction{UserID: u.ID + 1, Type: models.TransactionTypeCredit, Amount: 9.0, Status: models.TransactionStatusCompleted, CreatedAt: base})

	r := setupRouter(u)

	req, _ := http.NewRequest(http.MethodGet, "/wallet/transactions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int                            `json:"status"`
		Data wallet.TransactionListResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if assert.Len(t, resp.Data.Transactions, 2) {
		assert.Equal(t, "second", resp.Data.Transactions[0].Description)
		assert.Equal(t, "first", resp.Data.Transactions[1].Description)
	}
}
