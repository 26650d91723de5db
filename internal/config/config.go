package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the flight board
type Config struct {
	// App
	AppEnv string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Schiphol flight API
	APIBaseURL         string
	AppID              string
	AppKey             string
	ResourceVersion    string
	HTTPTimeout        time.Duration
	RateLimitPerSecond float64
	RateLimitBurst     int

	// Fetch cycle
	Lookback        time.Duration
	WindowLength    time.Duration
	MaxPages        int
	RefreshInterval time.Duration
	BoardTimezone   string

	// Manual refresh endpoint, per client
	RefreshRatePerSecond float64
	RefreshRateBurst     int

	// Redis (destination cache, optional)
	RedisHost     string
	RedisPort     string
	RedisPassword string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		AppEnv:       getEnv("APP_ENV", "development"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		APIBaseURL:         getEnv("SCHIPHOL_API_BASE_URL", "https://api.schiphol.nl/public-flights"),
		AppID:              getEnv("SCHIPHOL_APP_ID", ""),
		AppKey:             getEnv("SCHIPHOL_APP_KEY", ""),
		ResourceVersion:    getEnv("SCHIPHOL_RESOURCE_VERSION", "v4"),
		HTTPTimeout:        time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		RateLimitPerSecond: getEnvAsFloat("API_RATE_LIMIT_PER_SECOND", 2),
		RateLimitBurst:     getEnvAsInt("API_RATE_LIMIT_BURST", 1),

		Lookback:        time.Duration(getEnvAsInt("FETCH_LOOKBACK_MINUTES", 30)) * time.Minute,
		WindowLength:    time.Duration(getEnvAsInt("FETCH_WINDOW_MINUTES", 240)) * time.Minute,
		MaxPages:        getEnvAsInt("FETCH_MAX_PAGES", 10),
		RefreshInterval: time.Duration(getEnvAsInt("REFRESH_INTERVAL_SECONDS", 300)) * time.Second,
		BoardTimezone:   getEnv("BOARD_TIMEZONE", "Europe/Amsterdam"),

		RefreshRatePerSecond: getEnvAsFloat("REFRESH_RATE_LIMIT_PER_SECOND", 0.2),
		RefreshRateBurst:     getEnvAsInt("REFRESH_RATE_LIMIT_BURST", 3),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the fetch cycle settings
func (c *Config) Validate() error {
	if c.WindowLength <= 0 {
		return fmt.Errorf("FETCH_WINDOW_MINUTES must be positive")
	}
	if c.Lookback < 0 {
		return fmt.Errorf("FETCH_LOOKBACK_MINUTES must not be negative")
	}
	if c.MaxPages <= 0 {
		return fmt.Errorf("FETCH_MAX_PAGES must be positive")
	}
	if c.RateLimitPerSecond <= 0 {
		return fmt.Errorf("API_RATE_LIMIT_PER_SECOND must be positive")
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("API_RATE_LIMIT_BURST must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves BoardTimezone. Schedule dates and times from the API are
// local to the airport.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.BoardTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOARD_TIMEZONE %q: %w", c.BoardTimezone, err)
	}
	return loc, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
