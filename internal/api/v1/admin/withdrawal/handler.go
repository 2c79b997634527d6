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

// ListWithdrawals godoc
// @Summary List all withdrawals
// @Description Get a paginated list of withdrawals across users. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param user_id query int false "Filter by user ID"
// @Param status query string false "Filter by status"
// @Success 200 {object} utils.Response{data=WithdrawalListResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/withdrawals [get]
func ListWithdrawals(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid page number"))
		return
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid limit number"))
		return
	}

	filter := services.WithdrawalFilter{
		Page:  page,
		Limit: limit,
	}

	if userIDStr, exists := c.GetQuery("user_id"); exists {
		userID, err := strconv.Atoi(userIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid user_id"))
			return
		}
		uid := uint(userID)
		filter.UserID = &uid
	}

	if statusStr, exists := c.GetQuery("status"); exists {
		s := models.WithdrawalStatus(statusStr)
		filter.Status = &s
	}

	withdrawals, total, err := services.FindAllWithdrawals(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch withdrawals"))
		return
	}

	var items []WithdrawalListItem
	for _, w := range withdrawals {
		items = append(items, WithdrawalListItem{
			ID:          w.ID,
			UserID:      w.UserID,
			Amount:      w.Amount,
			Status:      w.Status,
			RequestedAt: w.RequestedAt,
			CompletedAt: w.CompletedAt,
			BankDetails: w.BankDetails,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawals retrieved successfully", WithdrawalListResponse{
		Withdrawals: items,
		Total:       total,
		Page:        page,
		Limit:       limit,
	}))
}

// RejectWithdrawal godoc
// @Summary Reject a withdrawal
// @Description Move a pending withdrawal to rejected. No balance impact. Admin only.
// @Tags admin
// @Produce json
// @Security Bearer
// @Param id path int true "Withdrawal ID"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /admin/withdrawals/{id}/reject [post]
func RejectWithdrawal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Invalid withdrawal ID"))
		return
	}

	if err := services.RejectWithdrawal(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrWithdrawalNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrInvalidWithdrawalStatus):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to reject withdrawal"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Withdrawal rejected", nil))
}
