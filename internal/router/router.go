package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"threadly/config"
	"threadly/internal/handler"
	"threadly/internal/middleware"
	"threadly/internal/repository"
	"threadly/internal/service"
	"threadly/pkg/cloudinary"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client, stockSvc *service.StockService) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	sizeRepo := repository.NewSizeRepository(db)
	resetRepo := repository.NewResetRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	settingsHandler := handler.NewSettingsHandler(settingRepo, cloud)
	adminHandler := handler.NewAdminHandler(resetRepo, settingRepo, sizeRepo, cloud)
	stockHandler := handler.NewStockHandler(stockSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)
	adminMw := middleware.AdminRequired(userRepo)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		api.GET("/settings", authMw, settingsHandler.Get)
		api.PUT("/settings", authMw, adminMw, settingsHandler.Update)
		api.GET("/stock/low", authMw, stockHandler.LowStock)
		api.POST("/admin/reset", authMw, adminMw, adminHandler.ResetAllData)
	}

	return r
}
