package routes

import (
	"github.com/gin-gonic/gin"

	"constructax/internal/handlers"
	"constructax/internal/middlewares"
)

type UploadRoutes struct {
	handler *handlers.UploadHandler
}

func NewUploadRoutes(handler *handlers.UploadHandler) *UploadRoutes {
	return &UploadRoutes{handler: handler}
}

func (r *UploadRoutes) RegisterRoutes(router *gin.RouterGroup) {
	uploads := router.Group("/uploads")
	uploads.Use(middlewares.Authenticate)
	{
		uploads.POST("/images", r.handler.UploadImages)
	}
}
