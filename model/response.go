package model

import "time"

// SessionStatusResponse reports a live session and its current expiry. It is
// returned by the credential exchange, check and refresh endpoints.
type SessionStatusResponse struct {
	Success bool      `json:"success"`
	Expiry  time.Time `json:"expiry"`
}

// ChannelListResponse wraps the projected channel catalog.
type ChannelListResponse struct {
	Success  bool             `json:"success"`
	Channels []ChannelSummary `json:"channels"`
}
