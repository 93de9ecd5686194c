// internal/models/review.go
package models

import "time"

// Review is immutable once created; there is no edit or delete path.
type Review struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Rating   int       `json:"rating"`
	Text     string    `json:"text"`
	Date     time.Time `json:"date"`
}
