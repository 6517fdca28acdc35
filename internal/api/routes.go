package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Rejzi-dich/RytonStore/internal/auth"
)

// SetupRoutes sets up the API routes
func SetupRoutes(handler *Handler, sessions *auth.SessionCodec) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(Recovery())
	router.Use(CORS())
	router.Use(gin.Logger())
	router.Use(Session(sessions))

	// Health check
	router.GET("/health", handler.HealthCheck)

	// OAuth login flow
	router.GET("/auth/github/login", handler.Login)
	router.GET("/auth/github/callback", handler.Callback)
	router.GET("/auth/logout", handler.Logout)

	// API v1
	v1 := router.Group("/api/v1")
	{
		packages := v1.Group("/packages")
		{
			packages.GET("", handler.ListPackages)
			packages.GET("/:id", handler.GetPackage)
			packages.POST("", RequireAuth(), handler.AddPackage)
			packages.POST("/:id/refresh", RequireAuth(), handler.RefreshPackage)
		}

		v1.GET("/categories", handler.GetCategories)

		my := v1.Group("/my", RequireAuth())
		{
			my.GET("/packages", handler.MyPackages)
		}

		user := v1.Group("/user", RequireAuth())
		{
			user.GET("/repos", handler.UserRepos)
		}

		admin := v1.Group("/admin")
		{
			admin.POST("/packages/refresh", handler.RefreshAllPackages)
		}
	}

	return router
}
