package model

import "github.com/golang-jwt/jwt/v5"

// RefreshTokenRecord is the stored side of a refresh token, keyed by
// user. Only a hash of the token ever reaches the store.
type RefreshTokenRecord struct {
	UserID    string `firestore:"user_id" json:"userId"`
	TokenHash string `firestore:"token_hash" json:"-"`
	CreatedAt int64  `firestore:"created_at" json:"createdAt"` // unix seconds
	Revoked   bool   `firestore:"revoked" json:"revoked"`
	ExpiresIn int64  `firestore:"expires_in" json:"expiresIn"` // lifetime in seconds
}

type AccessClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
