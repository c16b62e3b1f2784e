package model

// ValidateTokenRequest defines the JSON payload for the credential exchange.
// Which field matters depends on the configured auth mode; both are optional
// at the decoding layer so a missing credential fails the generic way inside
// the auth service rather than leaking a validation message.
type ValidateTokenRequest struct {
	Token      string `json:"token" validate:"omitempty,hexadecimal,max=64"`
	AccessCode string `json:"accessCode" validate:"omitempty,max=128"`
}
