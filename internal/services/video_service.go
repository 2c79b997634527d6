package services

import (
	"cliprewards-backend/config"
	"cliprewards-backend/internal/database"
	"cliprewards-backend/internal/models"
	"cliprewards-backend/pkg/logger"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

const videoCatalogCacheKey = "videos:catalog"

// ListVideos returns the full video catalog, serving from the redis cache
// when warm. The catalog is read-only after seeding, so the only
// staleness window is the configured TTL.
func ListVideos() ([]models.Video, error) {
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, videoCatalogCacheKey).Result()
		if err == nil {
			var videos []models.Video
			if err := json.Unmarshal([]byte(val), &videos); err == nil {
				return videos, nil
			}
		}
	}

	var videos []models.Video
	if err := database.DB.Order("id asc").Find(&videos).Error; err != nil {
		return nil, err
	}

	if database.RedisClient != nil {
		cfg, err := config.LoadConfig()
		if err == nil {
			if data, err := json.Marshal(videos); err == nil {
				database.RedisClient.Set(database.Ctx, videoCatalogCacheKey, data, cfg.VideoCacheTTL)
			}
		}
	}

	return videos, nil
}

// FindVideoByID returns a single catalog entry.
func FindVideoByID(videoID uint) (*models.Video, error) {
	var video models.Video
	if err := database.DB.First(&video, videoID).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// InvalidateVideoCache drops the cached catalog. Called after seeding.
func InvalidateVideoCache() {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, videoCatalogCacheKey)
	}
}

// SeedVideos upserts the catalog, keyed by title so repeated startups are
// idempotent. Entries with inverted reward bounds are refused: a video
// whose min exceeds its max is a seed-data defect, not something to
// silently swap.
func SeedVideos(videos []models.Video) error {
	for _, v := range videos {
		if v.RewardMin < 0 || v.RewardMax < v.RewardMin {
			return fmt.Errorf("invalid reward bounds for video %q: min=%.2f max=%.2f", v.Title, v.RewardMin, v.RewardMax)
		}
	}

	for _, v := range videos {
		video := v
		if err := database.DB.Where("title = ?", video.Title).FirstOrCreate(&video).Error; err != nil {
			return err
		}
	}

	InvalidateVideoCache()
	logger.Log.Info("video catalog seeded", zap.Int("count", len(videos)))
	return nil
}
