package dto

import "time"

// AccessRequest carries the shared access code exchanged for a session token.
type AccessRequest struct {
	Code string `json:"code" validate:"required"`
}

// SessionResponse returns the issued session token.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
