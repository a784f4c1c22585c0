package main

import (
	"log"

	api "lifegoals/cmd/api"
	authdomain "lifegoals/internal/auth/domain"
	authRepo "lifegoals/internal/auth/repository"
	authUsecase "lifegoals/internal/auth/usecase"
	goaldomain "lifegoals/internal/goal/domain"
	goalRepo "lifegoals/internal/goal/repository"
	goalUsecase "lifegoals/internal/goal/usecase"
	"lifegoals/pkg/config"
	"lifegoals/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &goaldomain.Goal{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	goalRepository := goalRepo.NewGormGoalRepository(db)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepo, cfg)
	goalUc := goalUsecase.NewGoalUsecase(goalRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, goalUc, cfg)

	log.Printf("API server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
