package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"constructax/internal/config"
	"constructax/internal/handlers"
	"constructax/internal/realtime"
	"constructax/internal/repositories"
	"constructax/internal/routes"
	"constructax/internal/services"
	"constructax/internal/utils"
	"constructax/pkg/clients/cloudinary"
)

// New wires the whole application together and returns a configured HTTP server.
func New(cfg *config.Config, pool *pgxpool.Pool, log *zap.Logger) *http.Server {
	// Token secrets come from configuration rather than ambient env reads so
	// that a loaded .env file is honoured.
	utils.AccessTokenSecret = []byte(cfg.Auth.AccessTokenSecret)
	utils.RefreshTokenSecret = []byte(cfg.Auth.RefreshTokenSecret)

	// Dependency injection
	userRepo := repositories.NewUserRepository(pool)
	sessionRepo := repositories.NewSessionRepository(pool)
	projectRepo := repositories.NewProjectRepository(pool)
	phaseRepo := repositories.NewPhaseRepository(pool)
	dailyLogRepo := repositories.NewDailyLogRepository(pool)
	materialLogRepo := repositories.NewMaterialLogRepository(pool)

	feed := realtime.NewFeed()

	// Hourly sweep of expired refresh sessions.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := sessionRepo.DeleteExpired(); err != nil {
				log.Warn("failed to sweep expired sessions", zap.Error(err))
			}
		}
	}()

	authService := services.NewAuthService(userRepo, sessionRepo)
	projectService := services.NewProjectService(projectRepo)
	phaseService := services.NewPhaseService(projectRepo, phaseRepo)
	dailyLogService := services.NewDailyLogService(projectRepo, phaseRepo, dailyLogRepo)
	materialService := services.NewMaterialService(projectRepo, materialLogRepo, feed, log.Named("materials"))
	reportService := services.NewReportService()

	uploader := cloudinary.New(cfg.Cloudinary)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	phaseHandler := handlers.NewPhaseHandler(phaseService)
	dailyLogHandler := handlers.NewDailyLogHandler(dailyLogService)
	materialHandler := handlers.NewMaterialLogHandler(materialService, projectService, reportService)
	uploadHandler := handlers.NewUploadHandler(uploader, log.Named("uploads"))

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(
		router,
		authHandler,
		userHandler,
		projectHandler,
		phaseHandler,
		dailyLogHandler,
		materialHandler,
		uploadHandler,
	)

	// WriteTimeout stays unset so long-lived material-log streams are not
	// cut off mid-connection.
	return &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:     router,
		IdleTimeout: time.Minute,
		ReadTimeout: 10 * time.Second,
	}
}
