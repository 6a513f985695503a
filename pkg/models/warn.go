package models

// Warn represents a single warning issued against a user
type Warn struct {
	ID        string `json:"id"`
	Reason    string `json:"reason"`
	Moderator string `json:"moderator"`
	Timestamp int64  `json:"timestamp"`
}
