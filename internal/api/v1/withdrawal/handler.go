package withdrawal

import (
	"cliprewards-backend/internal/models"
	"cliprewards-backend/internal/services"
	"cliprewards-backend/internal/utils"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CreateWithdrawal godoc
// @Summary Request a withdrawal
// @Description Open a pending withdrawal. Requires the eligibility streak and a sufficient balance; the amount is frozen but not yet debited.
// @Tags withdrawal
// @Accept  json
// @Produce  json
// @Security Bearer
// @Param   input  body  CreateWithdrawalInput  true  "Withdrawal Input"
// @Success 201 {object} utils.Response{data=withdrawal.CreateWithdrawalResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /withdrawals [post]
func CreateWithdrawal(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}

	var input CreateWithdrawalInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	w, err := services.CreateWithdrawal(u.ID, input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBelowMinimumAmount),
			errors.Is(err, services.ErrInsufficientBalance),
			errors.Is(err, services.ErrStreakTooShort),
			errors.Is(err, services.ErrPendingWithdrawalExists):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to create withdrawal"))
		}
		return
	}

	c.JSON(http.StatusCreated, utils.NewResponse(http.StatusCreated, "Withdrawal requested", CreateWithdrawalResponse{ID: w.ID}))
}

// AttachBankDetails godoc
// @Summary Attach bank details
// @Description Store the payout destination on a pending withdrawal
// @Tags withdrawal
// @Accept  json
// @Produce  json
// @Security Bearer
// @Param   id     path  int               true  "Withdrawal ID"
// @Param   input  body  BankDetailsInput  true  "Bank Details"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /withdrawals/{id}/bank-details [post]
func AttachBankDetails(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := withdrawalID(c)
	if !ok {
		return
	}

	var input BankDetailsInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	err := services.AttachBankDetails(u.ID, id, models.BankDetails{
		HolderName:    input.HolderName,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		RoutingNumber: input.RoutingNumber,
	})
	if err != nil {
		respondWithdrawalError(c, err, "Failed to attach bank details")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Bank details saved", nil))
}

// CancelWithdrawal godoc
// @Summary Cancel a withdrawal
// @Description Cancel a pending withdrawal. The balance is unaffected.
// @Tags withdrawal
// @Produce  json
// @Security Bearer
// @Param   id  path  int  true  "Withdrawal ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /withdrawals/{id}/cancel [post]
func CancelWithdrawal(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := withdrawalID(c)
	if !ok {
		return
	}

	if err := services.CancelWithdrawal(u.ID, id); err != nil {
		respondWithdrawalError(c, err, "Failed to cancel withdrawal")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawal cancelled", nil))
}

// ConfirmFeePayment godoc
// @Summary Confirm fee payment
// @Description Complete a pending withdrawal: debits the amount and resets the voting streak. Safe to call again on a completed withdrawal.
// @Tags withdrawal
// @Produce  json
// @Security Bearer
// @Param   id  path  int  true  "Withdrawal ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /withdrawals/{id}/confirm-fee [post]
func ConfirmFeePayment(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := withdrawalID(c)
	if !ok {
		return
	}

	if err := services.ConfirmFeePayment(u.ID, id); err != nil {
		respondWithdrawalError(c, err, "Failed to confirm fee payment")
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawal completed", nil))
}

// ListWithdrawals godoc
// @Summary List withdrawals
// @Description The user's withdrawals, newest first
// @Tags withdrawal
// @Produce  json
// @Security Bearer
// @Success 200 {object} utils.Response{data=withdrawal.WithdrawalListResponse}
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /withdrawals [get]
func ListWithdrawals(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		return
	}

	withdrawals, err := services.FindWithdrawals(u.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch withdrawals"))
		return
	}

	items := make([]WithdrawalItem, 0, len(withdrawals))
	for _, w := range withdrawals {
		items = append(items, WithdrawalItem{
			ID:          w.ID,
			Amount:      w.Amount,
			Status:      w.Status,
			RequestedAt: w.RequestedAt,
			CompletedAt: w.CompletedAt,
			BankDetails: w.BankDetails,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawals retrieved successfully", WithdrawalListResponse{Withdrawals: items}))
}

func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return models.User{}, false
	}
	return userVal.(models.User), true
}

func withdrawalID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid withdrawal ID"))
		return 0, false
	}
	return uint(id), true
}

func respondWithdrawalError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrWithdrawalNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
	case errors.Is(err, services.ErrInvalidWithdrawalStatus), errors.Is(err, services.ErrMissingBankDetails):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, fallback))
	}
}
