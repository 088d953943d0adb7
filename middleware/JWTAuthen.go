package middleware

import (
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenMiddleware validates the bearer access token and puts the
// owner identifier into the context as "userId". Handlers downstream
// read only that identifier from the session.
func AccessTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header is missing"})
			return
		}

		tokenString := strings.Replace(header, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET_KEY")), nil
		})
		if err != nil {
			c.AbortWithStatusJSON(403, gin.H{"error": "Token is expired or invalid: " + err.Error()})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}

		userID, ok := claims["userId"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid userId in token claims"})
			return
		}

		c.Set("claims", claims)
		c.Set("userId", userID)
		c.Next()
	}
}

// RefreshTokenMiddleware validates the bearer refresh token and exposes
// both the owner identifier and the raw token for hash comparison.
func RefreshTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Refresh token is missing"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token format"})
			return
		}
		refreshToken := bearerToken[1]

		token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_REFRESH_SECRET_KEY")), nil
		})
		if err != nil {
			c.AbortWithStatusJSON(403, gin.H{"error": "Invalid refresh token: " + err.Error()})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid refresh token claims"})
			return
		}

		userID, ok := claims["userId"].(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid userId in token claims"})
			return
		}

		c.Set("userId", userID)
		c.Set("refreshToken", refreshToken)
		c.Next()
	}
}
