package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"lifetrack/dto"
	"lifetrack/model"
	"lifetrack/services"
	"lifetrack/store"
)

func SignInController(router *gin.Engine, st store.Store) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, st)
	})
}

func Signin(c *gin.Context, st store.Store) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	user, err := st.GetUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoRow) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	accessToken, err := services.CreateAccessToken(user.UserID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}
	refreshToken, err := services.CreateRefreshToken(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}

	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash refresh token"})
		return
	}

	record := model.RefreshTokenRecord{
		UserID:    user.UserID,
		TokenHash: hashedRefreshToken,
		CreatedAt: time.Now().Unix(),
		Revoked:   false,
		ExpiresIn: services.RefreshTokenLifetime(),
	}
	if err := st.SaveRefreshToken(ctx, &record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}
