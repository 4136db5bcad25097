package domain

import "time"

// MaxStars is the highest rating a user can submit. Ratings run 0-5.
const MaxStars = 5

// Rating is a single piece of user feedback about the app.
type Rating struct {
	ID        string    `json:"id"`
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingStats summarises the ratings received inside a time window.
type RatingStats struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
