package goal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lifetrack/dto"
	"lifetrack/middleware"
	"lifetrack/model"
	"lifetrack/services"
)

func GoalController(router *gin.Engine, goals *services.GoalService) {
	routes := router.Group("/goals", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			LoadGoals(c, goals)
		})
		routes.PUT("", func(c *gin.Context) {
			SaveGoals(c, goals)
		})
	}
}

func LoadGoals(c *gin.Context, goals *services.GoalService) {
	userId := c.MustGet("userId").(string)

	g, err := goals.Load(context.Background(), userId)
	if err != nil {
		log.Printf("load goals for %s: %v", userId, err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load goals",
			"goals": goals.Snapshot(userId),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": g})
}

func SaveGoals(c *gin.Context, goals *services.GoalService) {
	userId := c.MustGet("userId").(string)

	var req dto.GoalSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	g := model.Goal{GoalID: req.ID, UserID: userId}
	for key, text := range req.Areas {
		area, ok := model.ParseLifeArea(key)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown life area: %s", key)})
			return
		}
		g.SetArea(area, text)
	}

	saved, err := goals.Save(context.Background(), userId, g)
	if err != nil {
		if errors.Is(err, services.ErrGoalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
			return
		}
		log.Printf("save goals for %s: %v", userId, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save goals"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Goals saved successfully",
		"goals":   saved,
	})
}
