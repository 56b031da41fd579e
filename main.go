package main

import (
	"log"

	api "parkhub-backend/cmd/api"
	authdomain "parkhub-backend/internal/auth/domain"
	authRepo "parkhub-backend/internal/auth/repository"
	authToken "parkhub-backend/internal/auth/token"
	authUsecase "parkhub-backend/internal/auth/usecase"
	"parkhub-backend/internal/notification"
	parkdomain "parkhub-backend/internal/park/domain"
	parkRepo "parkhub-backend/internal/park/repository"
	"parkhub-backend/internal/park/seed"
	parkUsecase "parkhub-backend/internal/park/usecase"
	"parkhub-backend/pkg/config"
	"parkhub-backend/pkg/database"
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
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &parkdomain.Park{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	refreshTokenRepository := authRepo.NewRefreshTokenRepository(db)
	parkRepository := parkRepo.NewGormParkRepository(db)

	// Seed the parks catalog on first boot
	seed.Run(parkRepository, cfg.ParkDataFile)

	// Initialize the authentication core
	tokenService := authToken.NewService(cfg)
	refreshTokenService := authUsecase.NewRefreshTokenService(refreshTokenRepository, cfg)
	credentialVerifier := authRepo.NewCredentialVerifier(userRepository)
	notifier := notification.NewService()

	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, credentialVerifier, tokenService, refreshTokenService, notifier)
	parkUsecaseInstance := parkUsecase.NewParkUsecase(parkRepository, authUsecaseInstance)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, parkUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
