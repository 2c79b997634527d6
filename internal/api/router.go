package api

import (
	"cliprewards-backend/config"
	_ "cliprewards-backend/docs"
	adminTransaction "cliprewards-backend/internal/api/v1/admin/transaction"
	adminUser "cliprewards-backend/internal/api/v1/admin/user"
	adminWithdrawal "cliprewards-backend/internal/api/v1/admin/withdrawal"
	"cliprewards-backend/internal/api/v1/auth"
	userRoutes "cliprewards-backend/internal/api/v1/user"
	"cliprewards-backend/internal/api/v1/video"
	"cliprewards-backend/internal/api/v1/vote"
	"cliprewards-backend/internal/api/v1/wallet"
	"cliprewards-backend/internal/api/v1/withdrawal"
	"cliprewards-backend/internal/database"
	"cliprewards-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	err = database.ConnectRedis(cfg)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"}, // Allow frontend origin
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Maintenance(cfg))
	{
		auth.RegisterRoutes(v1)
		video.RegisterRoutes(v1)

		authorized := v1.Group("/")
		authorized.Use(middleware.AuthMiddleware())
		{
			userRoutes.RegisterRoutes(authorized)
			vote.RegisterRoutes(authorized)
			wallet.RegisterRoutes(authorized)
			withdrawal.RegisterRoutes(authorized)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			adminUser.RegisterRoutes(admin)
			adminTransaction.RegisterRoutes(admin)
			adminWithdrawal.RegisterRoutes(admin)
		}
	}

	return router, nil
}
