package api

import (
	"Instalytics/internal/api/middleware"
	"Instalytics/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})
		apiGroup.GET("/health", group.HealthHandler.Health)

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
			}
		}

		accountGroup := apiGroup.Group("/accounts")
		accountGroup.Use(middleware.AuthMiddleware())
		{
			accountGroup.POST("", group.AccountHandler.CreateAccount)
			accountGroup.GET("", group.AccountHandler.GetAccounts)
			accountGroup.GET("/:ig_user_id", group.AccountHandler.GetAccount)
			accountGroup.DELETE("/:ig_user_id", group.AccountHandler.DeleteAccount)
		}

		analyticsGroup := apiGroup.Group("/analytics")
		analyticsGroup.Use(middleware.AuthMiddleware())
		{
			analyticsGroup.GET("/:ig_user_id/monthly", group.AnalyticsHandler.GetMonthlyAnalytics)
			analyticsGroup.GET("/:ig_user_id/yearly", group.AnalyticsHandler.GetYearlyAnalytics)
			analyticsGroup.GET("/:ig_user_id/posts", group.AnalyticsHandler.GetPosts)
		}

		setupGroup := apiGroup.Group("/setup")
		setupGroup.Use(middleware.AuthMiddleware())
		{
			setupGroup.POST("/refresh-tokens", group.SetupHandler.RefreshTokens)
			setupGroup.POST("/collect", group.SetupHandler.Collect)
		}
	}

	return r
}
