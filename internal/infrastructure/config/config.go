package config

import (
	"os"
	"strconv"
	"strings"

	usecasecontract "github.com/acmchapter/portal-api/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	Port                      string
	MongoURI                  string
	MongoDBName               string
	RedisURL                  string
	UpvoteRateLimit           float64
	CORSAllowOrigins          []string
	RecentUpvoteWindowSeconds int64
	RecentUpvoteFlagThreshold int64
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		Port:                      getEnv("PORT", "8080"),
		MongoURI:                  getEnv("MONGODB_URI", ""),
		MongoDBName:               getEnv("MONGODB_DB_NAME", "acmData"),
		RedisURL:                  getEnv("REDIS_URL", ""),
		UpvoteRateLimit:           getEnvAsFloat("UPVOTE_RATE_LIMIT", 5),
		CORSAllowOrigins:          getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"*"}),
		RecentUpvoteWindowSeconds: int64(getEnvAsInt("RECENT_UPVOTE_WINDOW_SECONDS", 3600)),
		RecentUpvoteFlagThreshold: int64(getEnvAsInt("RECENT_UPVOTE_FLAG_THRESHOLD", 10)),
	}
}

// GetPort returns the HTTP listen port.
func (c *Config) GetPort() string {
	return c.Port
}

// GetMongoURI returns the MongoDB connection string.
func (c *Config) GetMongoURI() string {
	return c.MongoURI
}

// GetMongoDBName returns the MongoDB database name.
func (c *Config) GetMongoDBName() string {
	return c.MongoDBName
}

// GetRedisURL returns the optional Redis connection string.
func (c *Config) GetRedisURL() string {
	return c.RedisURL
}

// GetUpvoteRateLimit returns the per-IP request rate for the upvote route.
func (c *Config) GetUpvoteRateLimit() float64 {
	return c.UpvoteRateLimit
}

// GetCORSAllowOrigins returns the allowed browser origins.
func (c *Config) GetCORSAllowOrigins() []string {
	return c.CORSAllowOrigins
}

// GetRecentUpvoteWindowSeconds returns the TTL of the per-IP recent-upvote set.
func (c *Config) GetRecentUpvoteWindowSeconds() int64 {
	return c.RecentUpvoteWindowSeconds
}

// GetRecentUpvoteFlagThreshold returns the per-IP upvote count above which
// recorded upvotes are flagged.
func (c *Config) GetRecentUpvoteFlagThreshold() int64 {
	return c.RecentUpvoteFlagThreshold
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a float or return a default value.
func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

// Helper function to get a comma-separated environment variable as a slice.
func getEnvAsSlice(name string, fallback []string) []string {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return fallback
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
