package models

import "time"

// ForumDoubt is a delegate question directed at a committee.
// A doubt starts unapproved with no response and only shows up in the
// committee feed once a moderator flips IsApproved.
type ForumDoubt struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	CommitteeName string    `json:"committeeName"`
	Question      string    `json:"question"`
	Response      *string   `json:"response"`
	IsApproved    bool      `json:"isApproved"`
	CreatedAt     time.Time `json:"createdAt"`
}
