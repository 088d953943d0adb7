package task

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lifetrack/dto"
	"lifetrack/middleware"
	"lifetrack/model"
	"lifetrack/services"
)

func TaskController(router *gin.Engine, tasks *services.TaskService) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListTasks(c, tasks)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, tasks)
		})
		routes.PUT("/:id", func(c *gin.Context) {
			UpdateTask(c, tasks)
		})
		routes.DELETE("/:id", func(c *gin.Context) {
			DeleteTask(c, tasks)
		})
		routes.PATCH("/:id/toggle", func(c *gin.Context) {
			ToggleSubtask(c, tasks)
		})
	}
}

func ListTasks(c *gin.Context, tasks *services.TaskService) {
	userId := c.MustGet("userId").(string)

	list, err := tasks.List(context.Background(), userId)
	if err != nil {
		log.Printf("load tasks for %s: %v", userId, err)
		// The last known-good list is still served so the caller keeps
		// a stale-but-consistent view.
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load tasks",
			"tasks": taskList(tasks.Snapshot(userId)),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": taskList(list)})
}

func CreateTask(c *gin.Context, tasks *services.TaskService) {
	userId := c.MustGet("userId").(string)

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	form, err := taskForm(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := tasks.Create(context.Background(), userId, form)
	if err != nil {
		log.Printf("create task for %s: %v", userId, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create task"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"tasks":   taskList(list),
	})
}

func UpdateTask(c *gin.Context, tasks *services.TaskService) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("id")

	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	form, err := taskForm(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := tasks.Update(context.Background(), userId, taskId, form)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("update task %s for %s: %v", taskId, userId, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"tasks":   taskList(list),
	})
}

func DeleteTask(c *gin.Context, tasks *services.TaskService) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("id")

	list, err := tasks.Delete(context.Background(), userId, taskId)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("delete task %s for %s: %v", taskId, userId, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"tasks":   taskList(list),
	})
}

func ToggleSubtask(c *gin.Context, tasks *services.TaskService) {
	userId := c.MustGet("userId").(string)
	taskId := c.Param("id")

	var req dto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	which, ok := model.ParseSubtask(req.Field)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field must be responsibilities or results"})
		return
	}

	list, err := tasks.ToggleSubtask(context.Background(), userId, taskId, which)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		log.Printf("toggle %s on task %s for %s: %v", which, taskId, userId, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": taskList(list)})
}

func taskForm(req dto.TaskRequest) (services.TaskForm, error) {
	tags := make([]model.LifeArea, 0, len(req.Tags))
	for _, raw := range req.Tags {
		area, ok := model.ParseLifeArea(raw)
		if !ok {
			return services.TaskForm{}, errors.New("Unknown life area: " + raw)
		}
		tags = append(tags, area)
	}
	return services.TaskForm{
		Title:            req.Title,
		Description:      req.Description,
		Responsibilities: req.Responsibilities,
		Results:          req.Results,
		Tags:             tags,
	}, nil
}

// taskList keeps an empty list rendered as [] instead of null.
func taskList(tasks []model.Task) []model.Task {
	if tasks == nil {
		return []model.Task{}
	}
	return tasks
}
