package models

import "time"

// Video publication states.
const (
	VideoStatusDraft     = "draft"
	VideoStatusPublished = "published"
)

// Video is a catalog entry. Only published videos are served to viewers.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	VideoURL     string    `json:"videoUrl"`
	Duration     int       `json:"duration"`
	Views        int64     `json:"views"`
	Status       string    `json:"status"`
	Trending     bool      `json:"trending"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"createdAt"`
}
