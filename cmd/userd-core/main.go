package main

// @title           Userd Core API
// @version         1.0
// @description     Minimal user-account API: user CRUD with auto-incrementing numeric IDs and password-based login issuing signed session tokens.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Format: "Bearer {token}"

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	authadapter "github.com/custodia-labs/userd-core/internal/adapters/driven/auth"
	"github.com/custodia-labs/userd-core/internal/adapters/driven/postgres"
	redisadapter "github.com/custodia-labs/userd-core/internal/adapters/driven/redis"
	"github.com/custodia-labs/userd-core/internal/adapters/driving/http"
	"github.com/custodia-labs/userd-core/internal/config"
	"github.com/custodia-labs/userd-core/internal/core/ports/driven"
	"github.com/custodia-labs/userd-core/internal/core/services"
)

var version = "dev"

func main() {
	// Load .env if present; real environments set vars directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	log.Printf("userd-core %s starting", version)

	ctx := context.Background()

	// ===== Initialize PostgreSQL =====
	log.Println("Connecting to PostgreSQL...")
	dbConfig := postgres.Config{
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	}
	db, err := postgres.Connect(ctx, dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize schema (idempotent)
	if err := db.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	log.Println("PostgreSQL connected and schema initialized")

	// ===== Counter backend (Redis if available, otherwise PostgreSQL) =====
	var counterStore driven.CounterStore
	if cfg.RedisURL != "" {
		log.Println("Connecting to Redis...")
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()

		counterStore = redisadapter.NewCounterStore(redisClient)
		log.Println("Using Redis counter store")
	} else {
		counterStore = postgres.NewCounterStore(db)
		log.Println("Using PostgreSQL counter store")
	}

	// ===== Driven adapters =====
	authAdapter := authadapter.NewAdapter(cfg.JWTSecret)
	userStore := postgres.NewUserStore(db)

	// ===== Services (core business logic) =====
	userService := services.NewUserService(userStore, counterStore, authAdapter)
	authService := services.NewAuthService(userStore, authAdapter, cfg.TokenTTL)

	// ===== HTTP server =====
	server := http.NewServer(
		http.Config{
			Host:    "0.0.0.0",
			Port:    cfg.Port,
			Version: version,
		},
		authService,
		userService,
		db,
	)

	log.Printf("API server starting on :%d", cfg.Port)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
