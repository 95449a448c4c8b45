package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"github.com/ubudab109/number-discussion/internal/api"        // Custom package for API handlers
	"github.com/ubudab109/number-discussion/internal/cache"      // Custom package for Redis caching
	"github.com/ubudab109/number-discussion/internal/config"     // Custom package for configuration
	"github.com/ubudab109/number-discussion/internal/db"         // Custom package for database access
	"github.com/ubudab109/number-discussion/internal/middleware" // Custom package for middleware
	"github.com/ubudab109/number-discussion/internal/repository" // Custom package for persistence
	"github.com/ubudab109/number-discussion/internal/service"    // Custom package for business logic
	"github.com/ubudab109/number-discussion/internal/token"      // Custom package for session tokens

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	gormDB, err := db.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis-backed forest cache; an empty REDIS_ADDR disables caching
	var cacheStore *cache.Store
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		cacheStore = cache.New(redisClient)
	}

	// Wire repositories, token manager and services
	users := repository.NewGormUserRepository(gormDB)
	calcs := repository.NewGormCalculationRepository(gormDB)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(users, tokens, cfg.BcryptCost)
	calcService := service.NewCalculationService(calcs, cacheStore)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	r.Use(middleware.CORS()) // Allow the browser frontend to call the API

	// Health check
	r.GET("/health", api.HealthHandler())

	// Auth routes
	authGroup := r.Group("/api/auth")
	authGroup.POST("/register", api.RegisterHandler(authService)) // Registration endpoint
	authGroup.POST("/login", api.LoginHandler(authService))       // Login endpoint

	// Calculation routes: reads are public, writes require a session token
	r.GET("/api/calculations", api.ListCalculationsHandler(calcService))
	r.POST("/api/calculations", middleware.Auth(tokens), api.CreateCalculationHandler(calcService))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
