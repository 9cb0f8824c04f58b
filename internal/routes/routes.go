package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"constructax/internal/handlers"
)

func RegisterRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	projectHandler *handlers.ProjectHandler,
	phaseHandler *handlers.PhaseHandler,
	dailyLogHandler *handlers.DailyLogHandler,
	materialHandler *handlers.MaterialLogHandler,
	uploadHandler *handlers.UploadHandler,
) {
	api := router.Group("/api/v1")

	authRoutes := NewAuthRoutes(authHandler)
	authRoutes.RegisterRoutes(api)

	userRoutes := NewUserRoutes(userHandler)
	userRoutes.RegisterRoutes(api)

	projectRoutes := NewProjectRoutes(projectHandler)
	projectRoutes.RegisterRoutes(api)

	phaseRoutes := NewPhaseRoutes(phaseHandler, dailyLogHandler)
	phaseRoutes.RegisterRoutes(api)

	materialRoutes := NewMaterialRoutes(materialHandler)
	materialRoutes.RegisterRoutes(api)

	uploadRoutes := NewUploadRoutes(uploadHandler)
	uploadRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
