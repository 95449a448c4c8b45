package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For token TTL

	"github.com/joho/godotenv" // For loading .env files
	"golang.org/x/crypto/bcrypt"
)

// Config holds the application configuration
type Config struct {
	AppPort    string        // Application port
	DBUser     string        // Database user
	DBPassword string        // Database password
	DBHost     string        // Database host
	DBPort     string        // Database port
	DBName     string        // Database name
	JWTSecret  string        // JWT secret key
	TokenTTL   time.Duration // Session token lifetime
	BcryptCost int           // bcrypt cost factor for password hashing
	RedisAddr  string        // Redis server address, empty disables caching
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	IsProd     bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	// Session tokens live 7 days unless overridden
	tokenTTL := 168 * time.Hour
	if h, err := strconv.Atoi(os.Getenv("TOKEN_TTL_HOURS")); err == nil && h > 0 {
		tokenTTL = time.Duration(h) * time.Hour
	}

	// bcrypt cost tuned so hashing takes tens of milliseconds
	bcryptCost := bcrypt.DefaultCost
	if c, err := strconv.Atoi(os.Getenv("BCRYPT_COST")); err == nil && c >= bcrypt.MinCost && c <= bcrypt.MaxCost {
		bcryptCost = c
	}

	return &Config{
		AppPort:    os.Getenv("APP_PORT"),          // Application port
		DBUser:     os.Getenv("DB_USER"),           // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),       // Database password
		DBHost:     os.Getenv("DB_HOST"),           // Database host
		DBPort:     os.Getenv("DB_PORT"),           // Database port
		DBName:     os.Getenv("DB_NAME"),           // Database name
		JWTSecret:  os.Getenv("JWT_SECRET"),        // JWT secret key
		TokenTTL:   tokenTTL,                       // Session token lifetime
		BcryptCost: bcryptCost,                     // Password hashing cost
		RedisAddr:  os.Getenv("REDIS_ADDR"),        // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),        // Redis password
		RedisDB:    redisDB,                        // Redis database number
		IsProd:     os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// DSN builds the MySQL Data Source Name from the loaded configuration
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
