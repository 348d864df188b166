package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nuna-backend/internal/config"
	"nuna-backend/internal/database"
	"nuna-backend/internal/handlers"
	"nuna-backend/internal/middleware"
	"nuna-backend/internal/repository"
	"nuna-backend/internal/router"
	"nuna-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Nuna Backend...")

	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClient.Close()
	log.Println("✓ Redis connected")

	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	userRepo := repository.NewUserRepo(pool)
	journalRepo := repository.NewJournalRepo(pool)
	moodRepo := repository.NewMoodRepo(pool)
	postRepo := repository.NewPostRepo(pool)
	commentRepo := repository.NewCommentRepo(pool)
	meditationRepo := repository.NewMeditationRepo(pool)

	aiService, err := services.NewAIService(cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer aiService.Close()
	log.Println("✓ Gemini client initialized")

	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, redisClient, jwtAuth)
	livekitService := services.NewLiveKitService(cfg.LiveKitAPIKey, cfg.LiveKitAPISecret)

	authHandler := handlers.NewAuthHandler(authService)
	journalHandler := handlers.NewJournalHandler(journalRepo)
	moodHandler := handlers.NewMoodHandler(moodRepo)
	chatHandler := handlers.NewChatHandler(journalRepo, moodRepo, aiService)
	postHandler := handlers.NewPostHandler(postRepo)
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	meditationHandler := handlers.NewMeditationHandler(meditationRepo)
	livekitHandler := handlers.NewLiveKitHandler(livekitService)

	r := router.New(
		jwtAuth,
		authHandler,
		journalHandler,
		moodHandler,
		chatHandler,
		postHandler,
		commentHandler,
		meditationHandler,
		livekitHandler,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("✓ Nuna Backend listening on :%s", cfg.Port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("✗ Server error: %v", err)
	}
}
