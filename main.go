package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/avelez/quizbank-be/internal/api"
	"github.com/avelez/quizbank-be/internal/auth"
	"github.com/avelez/quizbank-be/internal/config"
	"github.com/avelez/quizbank-be/internal/database"
	"github.com/avelez/quizbank-be/internal/logger"
	"github.com/avelez/quizbank-be/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Environment)

	// The session signing key comes from config so a .env-provided
	// JWT_SECRET is honored; refuse to start without one.
	if err := auth.Init(cfg.JWTSecret); err != nil {
		log.Fatal().Err(err).Msg("JWT_SECRET is not set")
	}

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Set up services
	userService := services.NewUserService(db)
	questionService := services.NewQuestionService(db)
	attemptService := services.NewAttemptService(db)

	// Set up router
	router := api.NewRouter(cfg.FrontendOrigin, userService, questionService, attemptService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
