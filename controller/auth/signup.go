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
	"lifetrack/store"
)

func SignUpController(router *gin.Engine, st store.Store) {
	router.POST("/auth/signup", func(c *gin.Context) {
		Signup(c, st)
	})
}

func Signup(c *gin.Context, st store.Store) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := context.Background()
	_, err := st.GetUserByEmail(ctx, request.Email)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
		return
	}
	if !errors.Is(err, store.ErrNoRow) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing email"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	newUser := model.User{
		Email:    request.Email,
		Password: string(hashedPassword),
	}
	if err := st.CreateUser(ctx, &newUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	// The profile row shares its id with the user.
	now := time.Now()
	profile := model.Profile{
		UserID:    newUser.UserID,
		FullName:  &request.FullName,
		UpdatedAt: &now,
	}
	if err := st.UpsertProfile(ctx, &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"userId":  newUser.UserID,
	})
}
