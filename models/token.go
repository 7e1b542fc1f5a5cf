package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token is a signed session token handed to an authenticated client.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token" validate:"required,jwt"`

	// ExpiresAt mirrors the "exp" claim.
	ExpiresAt time.Time `json:"expires_at" validate:"required"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// TokenClaims is the claim set of a session token. The "sub" claim holds the
// account ID.
type TokenClaims struct {
	// Login is the login of the account at issue time.
	Login string `json:"login"`

	jwt.RegisteredClaims
}

// AccountID parses the "sub" claim.
func (c TokenClaims) AccountID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error parsing account ID from token subject: %w", err)
	}
	return id, nil
}

// Session is the result of a successful authentication.
type Session struct {
	Account Account `json:"account" cascade:""`
	Token   Token   `json:"token" cascade:""`
}
