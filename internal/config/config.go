package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	openaianswer "github.com/davidbz/markl/internal/answerer/openai"
	openaiembed "github.com/davidbz/markl/internal/embedder/openai"
)

// Cache backends selectable via CACHE_BACKEND.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config represents the service configuration.
type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Embedder openaiembed.Config
	Answerer AnswererConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"120"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// CacheConfig contains semantic cache settings.
type CacheConfig struct {
	// SimilarityThreshold is the minimum cosine similarity for a hit.
	// A similarity exactly equal to it counts as a hit.
	SimilarityThreshold float64 `env:"CACHE_SIMILARITY_THRESHOLD" envDefault:"0.92"`
	Backend             string  `env:"CACHE_BACKEND"              envDefault:"memory"`
	IndexName           string  `env:"CACHE_INDEX_NAME"           envDefault:"markl-qa"`
}

// RedisConfig contains Redis connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB"       envDefault:"0"`
}

// AnswererConfig selects and configures the answering collaborator.
type AnswererConfig struct {
	// Provider is "openai" or "echo". Echo needs no credentials and is
	// meant for local development.
	Provider string `env:"ANSWERER_PROVIDER" envDefault:"openai"`
	OpenAI   openaianswer.Config
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*ServerConfig
	*CORSConfig
	*CacheConfig
	*RedisConfig
	*openaiembed.Config
	*AnswererConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Server,
		&cfg.CORS,
		&cfg.Cache,
		&cfg.Redis,
		&cfg.Embedder,
		&cfg.Answerer,
	}
}
