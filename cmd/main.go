package main

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"github.com/davidbz/markl/internal/answerer/echo"
	openaianswer "github.com/davidbz/markl/internal/answerer/openai"
	"github.com/davidbz/markl/internal/config"
	"github.com/davidbz/markl/internal/domain"
	openaiembed "github.com/davidbz/markl/internal/embedder/openai"
	"github.com/davidbz/markl/internal/httpserver"
	"github.com/davidbz/markl/internal/httpserver/middleware"
	memoryindex "github.com/davidbz/markl/internal/index/memory"
	"github.com/davidbz/markl/internal/index/redisearch"
	"github.com/davidbz/markl/internal/observability"
	memorystore "github.com/davidbz/markl/internal/store/memory"
	redisstore "github.com/davidbz/markl/internal/store/redis"
)

func main() {
	container := buildContainer()

	// Warm the vector index from the store before serving traffic.
	if err := container.Invoke(func(cache *domain.SemanticCacheService) error {
		return cache.Warm(context.Background())
	}); err != nil {
		log.Fatalf("Failed to warm vector index: %v", err)
	}

	err := container.Invoke(func(server *httpserver.Server) {
		if startErr := server.Start(); startErr != nil {
			log.Fatalf("Server failed to start: %v", startErr)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Embedder
	if err := container.Provide(func(cfg *openaiembed.Config) (domain.Embedder, error) {
		return openaiembed.New(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide embedder: %v", err)
	}

	// Answerer
	if err := container.Provide(newAnswerer); err != nil {
		log.Fatalf("Failed to provide answerer: %v", err)
	}

	// Storage backends
	if err := container.Provide(newBackends); err != nil {
		log.Fatalf("Failed to provide storage backends: %v", err)
	}

	// Decision core
	if err := container.Provide(func(
		embedder domain.Embedder,
		answerer domain.Answerer,
		index domain.VectorIndex,
		store domain.CacheStore,
		cacheCfg *config.CacheConfig,
	) (*domain.SemanticCacheService, error) {
		return domain.NewSemanticCacheService(embedder, answerer, index, store, cacheCfg.SimilarityThreshold)
	}); err != nil {
		log.Fatalf("Failed to provide semantic cache: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(func(corsCfg *config.CORSConfig) middleware.Middleware {
		return middleware.BuildMiddlewareChain(corsCfg)
	}); err != nil {
		log.Fatalf("Failed to provide middleware: %v", err)
	}
	if err := container.Provide(httpserver.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(httpserver.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}

// newAnswerer selects the answering collaborator. Echo needs no credentials
// and exists so the service can run locally without an API key.
func newAnswerer(cfg *config.AnswererConfig) (domain.Answerer, error) {
	switch cfg.Provider {
	case "echo":
		return echo.New(), nil
	case "openai":
		return openaianswer.New(cfg.OpenAI)
	default:
		return nil, fmt.Errorf("unknown answerer provider: %s", cfg.Provider)
	}
}

// backends bundles the two storage ports so one constructor can guarantee
// they come from the same backend.
type backends struct {
	dig.Out

	Index domain.VectorIndex
	Store domain.CacheStore
}

func newBackends(
	cacheCfg *config.CacheConfig,
	redisCfg *config.RedisConfig,
	embedder domain.Embedder,
) (backends, error) {
	switch cacheCfg.Backend {
	case config.BackendMemory:
		return backends{
			Index: memoryindex.New(embedder.Dimension()),
			Store: memorystore.New(),
		}, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})

		index, err := redisearch.New(client, cacheCfg.IndexName, embedder.Dimension())
		if err != nil {
			return backends{}, fmt.Errorf("failed to create redisearch index: %w", err)
		}

		return backends{
			Index: index,
			Store: redisstore.New(client),
		}, nil

	default:
		return backends{}, fmt.Errorf("unknown cache backend: %s", cacheCfg.Backend)
	}
}
