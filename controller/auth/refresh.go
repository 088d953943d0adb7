package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lifetrack/middleware"
	"lifetrack/model"
	"lifetrack/services"
	"lifetrack/store"
)

func RefreshController(router *gin.Engine, st store.Store) {
	router.POST("/auth/refresh", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		Refresh(c, st)
	})
	router.POST("/auth/signout", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Signout(c, st)
	})
}

func Refresh(c *gin.Context, st store.Store) {
	userId := c.MustGet("userId").(string)
	refreshToken := c.MustGet("refreshToken").(string)

	ctx := context.Background()
	record, err := st.GetRefreshToken(ctx, userId)
	if err != nil {
		if errors.Is(err, store.ErrNoRow) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No refresh token on record"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up refresh token"})
		return
	}

	if record.Revoked {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token has been revoked"})
		return
	}
	if time.Now().Unix() > record.CreatedAt+record.ExpiresIn {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token has expired"})
		return
	}
	if !services.CompareRefreshToken(record.TokenHash, refreshToken) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token does not match"})
		return
	}

	user, err := st.GetUserByID(ctx, userId)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
		return
	}

	accessToken, err := services.CreateAccessToken(user.UserID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}
	newRefreshToken, err := services.CreateRefreshToken(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}
	hashedRefreshToken, err := services.HashRefreshToken(newRefreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash refresh token"})
		return
	}

	newRecord := model.RefreshTokenRecord{
		UserID:    user.UserID,
		TokenHash: hashedRefreshToken,
		CreatedAt: time.Now().Unix(),
		Revoked:   false,
		ExpiresIn: services.RefreshTokenLifetime(),
	}
	if err := st.SaveRefreshToken(ctx, &newRecord); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": newRefreshToken,
		},
	})
}

func Signout(c *gin.Context, st store.Store) {
	userId := c.MustGet("userId").(string)

	err := st.RevokeRefreshToken(context.Background(), userId)
	if err != nil && !errors.Is(err, store.ErrNoRow) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}
