package usecasecontract

// IConfigProvider exposes the configuration values the HTTP layer and
// usecases need without binding them to the env-backed implementation.
type IConfigProvider interface {
	GetPort() string
	GetMongoURI() string
	GetMongoDBName() string
	GetRedisURL() string
	GetUpvoteRateLimit() float64
	GetCORSAllowOrigins() []string
	GetRecentUpvoteWindowSeconds() int64
	GetRecentUpvoteFlagThreshold() int64
}
