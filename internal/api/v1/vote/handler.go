package vote

import (
	"cliprewards-backend/internal/models"
	"cliprewards-backend/internal/services"
	"cliprewards-backend/internal/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CastVote godoc
// @Summary Cast a vote
// @Description Vote on a video and earn a reward. Limited per day; a
// @Description rejected vote changes nothing.
// @Tags vote
// @Accept  json
// @Produce  json
// @Security Bearer
// @Param   input  body  CastVoteInput  true  "Vote Input"
// @Success 200 {object} utils.Response{data=vote.CastVoteResponse}
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /votes [post]
func CastVote(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, "Unauthorized"))
		return
	}
	u := userVal.(models.User)

	var input CastVoteInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	result, err := services.CastVote(u.ID, input.VideoID, models.VoteType(input.VoteType))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVideoNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		case errors.Is(err, services.ErrInvalidVoteType), errors.Is(err, services.ErrDailyVoteLimit):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to process vote"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Vote recorded", CastVoteResponse{
		RewardAmount:    result.RewardAmount,
		NewBalance:      result.NewBalance,
		VotesRemaining:  result.VotesRemaining,
		VotingStreak:    result.VotingStreak,
		VotingDaysCount: result.VotingDaysCount,
	}))
}
