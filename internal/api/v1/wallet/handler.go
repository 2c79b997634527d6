package wallet

import (
	"cliprewards-backend/internal/models"
	"cliprewards-backend/internal/services"
	"cliprewards-backend/internal/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetBalance godoc
// @Summary Get wallet balance
// @Description Current balance, withdrawal eligibility, and the pending withdrawal if one exists
// @Tags wallet
// @Produce  json
// @Security Bearer
// @Success 200 {object} utils.Response{data=wallet.BalanceResponse}
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /wallet/balance [get]
func GetBalance(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	u := userVal.(models.User)

	summary, err := services.GetBalanceSummary(u.ID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch balance"))
		return
	}

	resp := BalanceResponse{
		Balance:             summary.Balance,
		Eligible:            summary.Eligible,
		AmountUntilEligible: summary.AmountUntilEligible,
		DaysUntilEligible:   summary.DaysUntilEligible,
	}
	if summary.PendingWithdrawal != nil {
		resp.PendingWithdrawal = &WithdrawalSummary{
			ID:          summary.PendingWithdrawal.ID,
			Amount:      summary.PendingWithdrawal.Amount,
			Status:      summary.PendingWithdrawal.Status,
			RequestedAt: summary.PendingWithdrawal.RequestedAt,
		}
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Balance retrieved successfully", resp))
}

// ListTransactions godoc
// @Summary List wallet transactions
// @Description The user's ledger entries, newest first
// @Tags wallet
// @Produce  json
// @Security Bearer
// @Success 200 {object} utils.Response{data=wallet.TransactionListResponse}
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /wallet/transactions [get]
func ListTransactions(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	u := userVal.(models.User)

	transactions, err := services.FindUserTransactions(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch transactions"))
		return
	}

	items := make([]TransactionItem, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, TransactionItem{
			ID:          t.ID,
			CreatedAt:   t.CreatedAt,
			Type:        t.Type,
			Amount:      t.Amount,
			Description: t.Description,
			Status:      t.Status,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Transactions retrieved successfully", TransactionListResponse{Transactions: items}))
}
