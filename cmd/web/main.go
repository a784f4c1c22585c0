package main

import (
	"log"

	"lifegoals/internal/session"
	"lifegoals/internal/web"
	"lifegoals/pkg/apiclient"
	"lifegoals/pkg/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	api := apiclient.New(cfg.APIBaseURL)
	sessions := session.NewStore(cfg.SessionSecret)
	handler := web.NewHandler(api, sessions)

	r := gin.Default()
	handler.Register(r)

	log.Printf("Web server starting on port %s (API at %s)", cfg.WebPort, cfg.APIBaseURL)
	if err := r.Run(":" + cfg.WebPort); err != nil {
		log.Fatal("Failed to start web server:", err)
	}
}
