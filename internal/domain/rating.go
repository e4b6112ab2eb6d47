package domain

import "time"

// RateableType shares the favorite target set: artists, events, venues and
// organisers can all receive ratings.
type RateableType = FavoriteType

type Rating struct {
	ID           uint         `json:"id"`
	UserID       uint         `json:"user_id"`
	RateableID   uint         `json:"rateable_id"`
	RateableType RateableType `json:"rateable_type"`
	Rating       float64      `json:"rating"`
	Review       string       `json:"review,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type RatingAggregate struct {
	Average float64 `json:"avg_rating"`
	Count   int64   `json:"total_ratings"`
}
