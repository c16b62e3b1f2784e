package model

import "time"

// TokenGrant is the response for a newly issued one-time access token. The
// token grants nothing by itself; it has to be redeemed for a session before
// it expires.
type TokenGrant struct {
	Token  string    `json:"token"`
	Expiry time.Time `json:"expiry"`
}
