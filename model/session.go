package model

import "time"

// Session pairs an opaque session identifier with its expiry instant. The ID
// travels only in the session cookie, never in a response body.
type Session struct {
	ID     string    `json:"-"`
	Expiry time.Time `json:"expiry"`
}
