package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/seebach/spieltracker/internal/common/clock"
	"github.com/seebach/spieltracker/internal/common/uuid"
	"github.com/seebach/spieltracker/internal/handlers/httpapi"
	gameRepo "github.com/seebach/spieltracker/internal/repositories/game"
	trackerRepo "github.com/seebach/spieltracker/internal/repositories/tracker"
	"github.com/seebach/spieltracker/internal/services/leaderboard"
	"github.com/seebach/spieltracker/internal/services/session"
	"github.com/seebach/spieltracker/internal/services/tracker"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	games, err := gameRepo.NewRedis(&gameRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}

	trackers, err := trackerRepo.NewRedis(&trackerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create tracker repository: %v", err)
	}

	// Initialize services
	trackerSvc, err := tracker.New(&tracker.Config{
		TrackerRepo:   trackers,
		GameRepo:      games,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create tracker service: %v", err)
	}

	sessionSvc, err := session.New(&session.Config{
		GameRepo: games,
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	leaderboardSvc, err := leaderboard.New(&leaderboard.Config{
		GameRepo: games,
	})
	if err != nil {
		log.Fatalf("Failed to create leaderboard service: %v", err)
	}

	// Initialize HTTP server
	server, err := httpapi.New(&httpapi.Config{
		TrackerService:     trackerSvc,
		SessionService:     sessionSvc,
		LeaderboardService: leaderboardSvc,
		Port:               getEnv("HTTP_PORT", "8080"),
	})
	if err != nil {
		log.Fatalf("Failed to create HTTP server: %v", err)
	}

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing redis client: %v", err)
	}

	log.Println("Server has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
