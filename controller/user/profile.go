package user

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lifetrack/dto"
	"lifetrack/middleware"
	"lifetrack/services"
)

func ProfileController(router *gin.Engine, profiles *services.ProfileService) {
	routes := router.Group("/profile", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			LoadProfile(c, profiles)
		})
		routes.PUT("", func(c *gin.Context) {
			UpdateProfile(c, profiles)
		})
	}
}

func LoadProfile(c *gin.Context, profiles *services.ProfileService) {
	userId := c.MustGet("userId").(string)

	p, err := profiles.Load(context.Background(), userId)
	if err != nil {
		log.Printf("load profile for %s: %v", userId, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": p})
}

func UpdateProfile(c *gin.Context, profiles *services.ProfileService) {
	userId := c.MustGet("userId").(string)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.FullName == "" && req.AvatarURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data to update"})
		return
	}

	p, err := profiles.Save(context.Background(), userId, req.FullName, req.AvatarURL)
	if err != nil {
		log.Printf("update profile for %s: %v", userId, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"profile": p,
	})
}
