package api

import (
	"net/http"

	"lifegoals/internal/auth/delivery"
	authUsecase "lifegoals/internal/auth/usecase"
	goalDelivery "lifegoals/internal/goal/delivery"
	goalUsecase "lifegoals/internal/goal/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, goalUc goalUsecase.GoalUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	goalHandler := goalDelivery.NewGoalHandler(goalUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(delivery.AuthMiddleware(authUc))
		{
			users.GET("/me", authHandler.Me)
			users.PUT("/me", authHandler.UpdateMe)
		}

		// Goal routes (protected)
		goals := api.Group("/goals")
		goals.Use(delivery.AuthMiddleware(authUc))
		{
			goals.GET("", goalHandler.GetGoals)
			goals.POST("", goalHandler.CreateGoal)
			goals.PUT("/:id", goalHandler.UpdateGoal)
			goals.DELETE("/:id", goalHandler.DeleteGoal)
		}
	}
}
