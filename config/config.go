package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Search defaults
	DefaultOriginCity       string
	DefaultDestinationCity  string
	DefaultReturnDelayHours int
	SearchTimeout           time.Duration

	// Station cache
	RedisAddr       string
	RedisPassword   string
	StationCacheTTL time.Duration

	// Rate limiting
	RateLimitPerMinute int
	RateLimitBurst     int

	// Server
	ServerPort string
	LogLevel   string
	GinMode    string
}

// Load loads configuration from environment variables
func Load() *Config {
	// Try to load .env file (optional for local development)
	_ = godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "bikes_on_trains"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		DefaultOriginCity:       getEnv("DEFAULT_ORIGIN_CITY", "Erfurt"),
		DefaultDestinationCity:  getEnv("DEFAULT_DESTINATION_CITY", "Leipzig"),
		DefaultReturnDelayHours: getEnvInt("DEFAULT_RETURN_DELAY_HOURS", 4),
		SearchTimeout:           getEnvDuration("SEARCH_TIMEOUT", 10*time.Second),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		StationCacheTTL: getEnvDuration("STATION_CACHE_TTL", 5*time.Minute),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),

		ServerPort: getEnv("SERVER_PORT", "2022"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		GinMode:    getEnv("GIN_MODE", "release"),
	}

	if config.DefaultReturnDelayHours < 1 {
		log.Printf("WARNING: DEFAULT_RETURN_DELAY_HOURS must be positive, got %d (using 4)", config.DefaultReturnDelayHours)
		config.DefaultReturnDelayHours = 4
	}

	if config.RateLimitPerMinute < 1 {
		log.Printf("WARNING: RATE_LIMIT_PER_MINUTE must be positive, got %d (using 120)", config.RateLimitPerMinute)
		config.RateLimitPerMinute = 120
	}

	return config
}

// DSN returns the lib/pq connection string
func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" port=" + c.DBPort +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" sslmode=" + c.DBSSLMode
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("WARNING: invalid %s=%q (using %d)", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("WARNING: invalid %s=%q (using %s)", key, value, defaultValue)
		return defaultValue
	}
	return d
}
