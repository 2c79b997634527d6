package withdrawal_test

import (
	"bytes"
	"cliprewards-backend/internal/api/v1/withdrawal"
	"cliprewards-backend/internal/database"
	"cliprewards-backend/internal/models"
	"cliprewards-backend/pkg/logger"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
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
	logger.Log = zap.NewNop()
	os.Setenv("JWT_SECRET", "test-secret")
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
	withdrawal.RegisterRoutes(&r.RouterGroup)
	return r
}

func seedEligibleUser() models.User {
	u := models.User{
		Email:           "payout@example.com",
		Name:            "Payout",
		Password:        "x",
		Role:            "user",
		Balance:         500.0,
		VotingStreak:    21,
		VotingDaysCount: 21,
	}
	database.DB.Create(&u)
	return u
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWithdrawalLifecycle(t *testing.T) {
	setupTestDB()
	u := seedEligibleUser()
	r := setupRouter(u)

	// Request.
	w := postJSON(r, "/withdrawals", map[string]interface{}{"amount": 350.0})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Code int                                 `json:"status"`
		Data withdrawal.CreateWithdrawalResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)
	assert.Equal(t, http.StatusCreated, created.Code)
	assert.NotZero(t, created.Data.ID)

	// Attach the payout destination.
	w = postJSON(r, fmt.Sprintf("/withdrawals/%d/bank-details", created.Data.ID), map[string]interface{}{
		"holder_name":    "Pat Doe",
		"bank_name":      "First National",
		"account_number": "000123456789",
		"routing_number": "110000000",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Complete.
	w = postJSON(r, fmt.Sprintf("/withdrawals/%d/confirm-fee", created.Data.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	database.DB.First(&updated, u.ID)
	assert.Equal(t, 150.0, updated.Balance)
	assert.Equal(t, 0, updated.VotingStreak)

	// Listing shows the completed withdrawal with its details.
	req, _ := http.NewRequest(http.MethodGet, "/withdrawals", nil)
	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, req)
	assert.Equal(t, http.StatusOK, lw.Code)

	var list struct {
		Code int                               `json:"status"`
		Data withdrawal.WithdrawalListResponse `json:"data"`
	}
	json.Unmarshal(lw.Body.Bytes(), &list)
	if assert.Len(t, list.Data.Withdrawals, 1) {
		item := list.Data.Withdrawals[0]
		assert.Equal(t, models.WithdrawalStatusCompleted, item.Status)
		assert.Equal(t, 350.0, item.Amount)
		assert.NotNil(t, item.CompletedAt)
		if assert.NotNil(t, item.BankDetails) {
			assert.Equal(t, "Pat Doe", item.BankDetails.HolderName)
		}
	}
}

func TestCreateWithdrawal_Rejections(t *testing.T) {
	setupTestDB()

	poor := models.User{Email: "poor@example.com", Name: "Poor", Password: "x", Role: "user", Balance: 100.0, VotingStreak: 25}
	database.DB.Create(&poor)
	r := setupRouter(poor)

	tests := []struct {
		name   string
		amount interface{}
		want   int
	}{
		{"Below minimum", 100.0, http.StatusBadRequest},
		{"Exceeds balance", 150.0, http.StatusBadRequest},
		{"Missing amount", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]interface{}{}
			if tt.amount != nil {
				body["amount"] = tt.amount
			}
			w := postJSON(r, "/withdrawals", body)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestCancelWithdrawal(t *testing.T) {
	setupTestDB()
	u := seedEligibleUser()
	r := setupRouter(u)

	w := postJSON(r, "/withdrawals", map[string]interface{}{"amount": 200.0})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data withdrawal.CreateWithdrawalResponse `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &created)

	w = postJSON(r, fmt.Sprintf("/withdrawals/%d/cancel", created.Data.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Cancelling twice is a client error, not a crash.
	w = postJSON(r, fmt.Sprintf("/withdrawals/%d/cancel", created.Data.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var updated models.User
	database.DB.First(&updated, u.ID)
	assert.Equal(t, 500.0, updated.Balance)
}

func TestWithdrawalActions_UnknownID(t *testing.T) {
	setupTestDB()
	u := seedEligibleUser()
	r := setupRouter(u)

	w := postJSON(r, "/withdrawals/9999/cancel", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = postJSON(r, "/withdrawals/abc/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
