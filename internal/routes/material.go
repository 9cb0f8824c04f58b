package routes

import (
	"github.com/gin-gonic/gin"

	"constructax/internal/handlers"
	"constructax/internal/middlewares"
)

type MaterialRoutes struct {
	handler *handlers.MaterialLogHandler
}

func NewMaterialRoutes(handler *handlers.MaterialLogHandler) *MaterialRoutes {
	return &MaterialRoutes{handler: handler}
}

func (r *MaterialRoutes) RegisterRoutes(router *gin.RouterGroup) {
	logs := router.Group("/projects/:id/material-logs")
	logs.Use(middlewares.Authenticate)
	{
		logs.POST("", r.handler.CreateLog)
		logs.GET("", r.handler.ListLogs)
		logs.PATCH("/:logId", r.handler.UpdateLog)
		logs.DELETE("/:logId", r.handler.DeleteLog)
		logs.GET("/totals", r.handler.GetTotals)
		logs.GET("/by-date", r.handler.GetLogsByDate)
		logs.GET("/stream", r.handler.StreamLogs)
		logs.GET("/report", r.handler.DownloadReport)
	}
}
