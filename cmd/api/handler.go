package api

import (
	authUsecase "lifegoals/internal/auth/usecase"
	goalUsecase "lifegoals/internal/goal/usecase"
	"lifegoals/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase authUsecase.AuthUsecase
	goalUsecase goalUsecase.GoalUsecase
	config      *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, goalUc goalUsecase.GoalUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase: authUc,
		goalUsecase: goalUc,
		config:      cfg,
	}
}

// Engine builds the Gin engine with all middleware and routes mounted
func (h *Handler) Engine() *gin.Engine {
	r := gin.Default()

	// CORS middleware, for browser clients hitting the API directly
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.goalUsecase)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
