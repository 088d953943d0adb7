package services

import (
	"crypto/sha256"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"lifetrack/model"
)

const (
	accessTokenTTL  = 60 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

func CreateAccessToken(userID, email string) (string, error) {
	secret := []byte(os.Getenv("JWT_SECRET_KEY"))
	claims := &model.AccessClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "lifetrack",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func CreateRefreshToken(userID string) (string, error) {
	secret := []byte(os.Getenv("JWT_REFRESH_SECRET_KEY"))
	claims := &model.RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			// Unique per token so a rotated pair never replays.
			ID:        uuid.New().String(),
			Issuer:    "lifetrack",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(refreshTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// RefreshTokenLifetime is the stored expiry window in seconds.
func RefreshTokenLifetime() int64 {
	return int64(refreshTokenTTL / time.Second)
}

// HashRefreshToken shortens the token with SHA-256 before bcrypt, since
// bcrypt only reads the first 72 bytes of its input.
func HashRefreshToken(token string) (string, error) {
	sum := sha256.Sum256([]byte(token))
	hashed, err := bcrypt.GenerateFromPassword(sum[:], bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CompareRefreshToken reports whether token matches the stored hash.
func CompareRefreshToken(hash, token string) bool {
	sum := sha256.Sum256([]byte(token))
	return bcrypt.CompareHashAndPassword([]byte(hash), sum[:]) == nil
}
