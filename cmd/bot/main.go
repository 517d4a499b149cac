package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/crewcord/crewcord/internal/admin"
	"github.com/crewcord/crewcord/internal/handlers/discord"
	sessionRepo "github.com/crewcord/crewcord/internal/repositories/session"
	"github.com/crewcord/crewcord/internal/runner"
	sessionService "github.com/crewcord/crewcord/internal/services/session"
	"github.com/crewcord/crewcord/internal/voiceindex"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

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
	repo, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	dg, err := discord.NewSession(discordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	platformClient, err := discord.NewPlatform(dg)
	if err != nil {
		log.Fatalf("Failed to create platform client: %v", err)
	}

	// Comma separated member IDs treated as game admins
	var adminIDs []string
	if raw := getEnv("ADMIN_IDS", ""); raw != "" {
		adminIDs = strings.Split(raw, ",")
	}

	// Initialize session service
	svc, err := sessionService.New(&sessionService.Config{
		Repo:     repo,
		Platform: platformClient,
		Index:    voiceindex.New(),
		Admins:   admin.NewStatic(adminIDs),
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	// Initialize the game feed runner
	gameRunner, err := runner.New(&runner.Config{
		Service: svc,
		Client:  runner.NewSocketClient(getEnv("CAPTURE_URL", "ws://localhost:8080/feed")),
	})
	if err != nil {
		log.Fatalf("Failed to create runner: %v", err)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:        dg,
		CommandPrefix:  getEnv("COMMAND_PREFIX", ""),
		SessionService: svc,
		Runner:         gameRunner,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Sessions persisted by a previous run can no longer be trusted. This
	// runs before the gateway opens so it can never tear down a session
	// created by a fresh command.
	cleanupOutput, err := svc.CleanupStaleSessions(context.Background(), &sessionService.CleanupStaleSessionsInput{})
	if err != nil {
		log.Printf("Failed to clean up stale sessions: %v", err)
	} else if cleanupOutput.Cleaned > 0 {
		log.Printf("Cleaned up %d stale sessions", cleanupOutput.Cleaned)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
