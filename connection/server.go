package connection

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lifetrack/controller/auth"
	"lifetrack/controller/goal"
	"lifetrack/controller/task"
	"lifetrack/controller/user"
	"lifetrack/services"
)

func StartServer() {
	router := gin.Default()
	router.Use(cors.Default())

	st, err := NewStore()
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	tasks := services.NewTaskService(st)
	goals := services.NewGoalService(st)
	profiles := services.NewProfileService(st)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	auth.SignUpController(router, st)
	auth.SignInController(router, st)
	auth.RefreshController(router, st)
	task.TaskController(router, tasks)
	goal.GoalController(router, goals)
	user.ProfileController(router, profiles)

	router.Run()
}
