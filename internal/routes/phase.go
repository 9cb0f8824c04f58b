package routes

import (
	"github.com/gin-gonic/gin"

	"constructax/internal/handlers"
	"constructax/internal/middlewares"
)

type PhaseRoutes struct {
	phases    *handlers.PhaseHandler
	dailyLogs *handlers.DailyLogHandler
}

func NewPhaseRoutes(phases *handlers.PhaseHandler, dailyLogs *handlers.DailyLogHandler) *PhaseRoutes {
	return &PhaseRoutes{phases: phases, dailyLogs: dailyLogs}
}

func (r *PhaseRoutes) RegisterRoutes(router *gin.RouterGroup) {
	phases := router.Group("/projects/:id/phases")
	phases.Use(middlewares.Authenticate)
	{
		phases.POST("", r.phases.CreatePhase)
		phases.GET("", r.phases.ListPhases)
		phases.GET("/:phaseId", r.phases.GetPhase)
		phases.PATCH("/:phaseId", r.phases.UpdatePhase)
		phases.DELETE("/:phaseId", r.phases.DeletePhase)
		phases.POST("/:phaseId/images", r.phases.AddImages)
		phases.DELETE("/:phaseId/images", r.phases.RemoveImage)

		// Daily logs live under their phase, mirroring the ownership chain.
		logs := phases.Group("/:phaseId/daily-logs")
		{
			logs.POST("", r.dailyLogs.CreateLog)
			logs.GET("", r.dailyLogs.ListLogs)
			logs.GET("/:logId", r.dailyLogs.GetLog)
			logs.PATCH("/:logId", r.dailyLogs.UpdateLog)
			logs.DELETE("/:logId", r.dailyLogs.DeleteLog)
			logs.POST("/:logId/images", r.dailyLogs.AddImages)
			logs.DELETE("/:logId/images", r.dailyLogs.RemoveImage)
		}
	}
}
