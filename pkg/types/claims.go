package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the payload of a session token.
type Claims struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
