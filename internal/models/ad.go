package models

import "time"

// Ad is a promotional banner shown alongside videos.
type Ad struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"imageUrl"`
	ClickURL    string    `json:"clickUrl"`
	Position    string    `json:"position"`
	Active      bool      `json:"active"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"createdAt"`
}
