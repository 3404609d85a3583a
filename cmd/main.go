package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"portfolio_ai_server/config"
	"portfolio_ai_server/internal/ai"
	"portfolio_ai_server/internal/api"
)

func main() {
	// Load .env before viper reads the environment. Missing .env is normal
	// in production, so only a hard read error is worth a warning.
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			log.Fatal("OpenAI API key not found. Set OPENAI_API_KEY in the environment or .env file.")
		}
		log.Fatalf("Cannot load config: %v", err)
	}

	// --- Dependency Initialization ---
	chat := ai.NewOpenAIChat(cfg.OpenAIKey, cfg.Model, cfg.Temperature)
	generator := ai.NewGenerator(chat)
	apiHandler := api.NewAPIHandler(generator)

	// --- Start API Server ---
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	api.RegisterRoutes(router, apiHandler)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// The model call dominates request time, so the write timeout is
		// generous compared to the read timeout.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}
