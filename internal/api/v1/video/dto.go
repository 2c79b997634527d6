package video

// VideoItem is one catalog entry with its reward bounds.
type VideoItem struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	URL             string  `json:"url"`
	ThumbnailURL    string  `json:"thumbnail_url"`
	RewardMin       float64 `json:"reward_min"`
	RewardMax       float64 `json:"reward_max"`
	DurationSeconds int     `json:"duration_seconds"`
}

type VideoListResponse struct {
	Videos []VideoItem `json:"videos"`
}
