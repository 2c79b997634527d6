package video

import (
	"cliprewards-backend/internal/services"
	"cliprewards-backend/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListVideos godoc
// @Summary List videos
// @Description Get the video catalog with per-video reward bounds
// @Tags video
// @Produce  json
// @Success 200 {object} utils.Response{data=video.VideoListResponse}
// @Failure 500 {object} utils.Response
// @Router /videos [get]
func ListVideos(c *gin.Context) {
	videos, err := services.ListVideos()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to fetch videos"))
		return
	}

	items := make([]VideoItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, VideoItem{
			ID:              v.ID,
			Title:           v.Title,
			Description:     v.Description,
			URL:             v.URL,
			ThumbnailURL:    v.ThumbnailURL,
			RewardMin:       v.RewardMin,
			RewardMax:       v.RewardMax,
			DurationSeconds: v.DurationSeconds,
		})
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Videos retrieved successfully", VideoListResponse{Videos: items}))
}
