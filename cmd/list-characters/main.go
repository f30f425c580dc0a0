package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/fableforge/gamemaster/internal/config"
	"github.com/fableforge/gamemaster/internal/repositories/characters"
)

func main() {
	ctx := context.Background()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var repo characters.Repository

	switch cfg.Storage.Driver {
	case config.DriverRedis:
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			redisURL = fmt.Sprintf("redis://%s/%d", cfg.Redis.Addr, cfg.Redis.DB)
		}

		opts, parseErr := redis.ParseURL(redisURL)
		if parseErr != nil {
			log.Fatalf("Failed to parse Redis URL: %v", parseErr)
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}

		client := redis.NewClient(opts)
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				log.Printf("Failed to close Redis client: %v", closeErr)
			}
		}()

		if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
			log.Fatalf("Failed to connect to Redis: %v", pingErr)
		}

		repo = characters.NewRedisRepository(&characters.RedisRepoConfig{
			Client: client,
		})

	case config.DriverSQLite:
		sqliteRepo, openErr := characters.OpenSQLiteRepository(cfg.SQLite.Path)
		if openErr != nil {
			log.Fatalf("Failed to open SQLite database: %v", openErr)
		}
		defer func() {
			if closeErr := sqliteRepo.Close(); closeErr != nil {
				log.Printf("Failed to close SQLite database: %v", closeErr)
			}
		}()
		repo = sqliteRepo

	default:
		log.Fatalf("Nothing to list: STORAGE_DRIVER=%s has no persistent store", cfg.Storage.Driver)
	}

	chars, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list characters: %v", err)
	}

	fmt.Printf("Found %d characters:\n", len(chars))
	for _, char := range chars {
		fmt.Printf("  %s: %s the %s %s (level %d, %d XP, %d HP)\n",
			char.PlayerID, char.Name, char.Race, char.Class, char.Level, char.XP, char.HP)
	}
}
