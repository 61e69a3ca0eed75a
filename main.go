package main

import (
	"log"

	api "blogapp-backend/cmd/api"
	authdomain "blogapp-backend/internal/auth/domain"
	authRepo "blogapp-backend/internal/auth/repository"
	authUsecase "blogapp-backend/internal/auth/usecase"
	blogdomain "blogapp-backend/internal/blog/domain"
	blogRepo "blogapp-backend/internal/blog/repository"
	blogUsecase "blogapp-backend/internal/blog/usecase"
	"blogapp-backend/pkg/config"
	"blogapp-backend/pkg/database"
	"blogapp-backend/pkg/seed"
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
	if err := db.AutoMigrate(&authdomain.User{}, &blogdomain.Blog{}, &blogdomain.Post{}, &blogdomain.Comment{}, &blogdomain.Label{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	blogRepository := blogRepo.NewBlogRepository(db)
	postRepository := blogRepo.NewPostRepository(db)
	commentRepository := blogRepo.NewCommentRepository(db)
	labelRepository := blogRepo.NewLabelRepository(db)

	// Load the demo dataset on a fresh database
	if cfg.SeedDemo {
		if err := seed.Run(db, userRepo, blogRepository, postRepository, labelRepository); err != nil {
			log.Printf("[WARN] Failed to seed demo data: %v", err)
		}
	}

	// Initialize use cases (dependency injection)
	tokenService := authUsecase.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, tokenService)
	adminUsecaseInstance := blogUsecase.NewAdminUsecase(userRepo, blogRepository, postRepository, labelRepository)
	feedUsecaseInstance := blogUsecase.NewFeedUsecase(userRepo, postRepository, commentRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, adminUsecaseInstance, feedUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
