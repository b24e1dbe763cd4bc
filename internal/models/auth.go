package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT payload for session tokens issued against a valid
// access code. The application has one shared role, so the claims carry no
// user identity beyond the token ID.
type SessionClaims struct {
	jwt.RegisteredClaims
}
