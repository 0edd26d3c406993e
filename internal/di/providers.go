package di

import (
	"fmt"
	"math/rand"

	"PricePull/internal/domain/repository"
	"PricePull/internal/handler/api"
	internalrepo "PricePull/internal/repository"
	icache "PricePull/internal/service/cache"
	"PricePull/internal/service/crm"
	"PricePull/internal/service/performance"
	"PricePull/internal/usecase"
	"PricePull/pkg/config"
	xhttp "PricePull/pkg/http"
	applogger "PricePull/pkg/logger"
	"PricePull/pkg/metrics"
	"PricePull/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideFixtureStore builds the CRM snapshot, either from the static seed
// dataset or generated from a seeded RNG.
func ProvideFixtureStore(cfg *config.Config) (repository.FixtureStore, error) {
	switch cfg.Fixtures.Mode {
	case "static":
		return internalrepo.NewMemoryFixtureStore(
			internalrepo.SeedCustomers(),
			internalrepo.SeedProducts(),
			internalrepo.SeedCompetitors(),
			internalrepo.SeedMarketCondition(),
		), nil
	case "generated":
		rng := rand.New(rand.NewSource(cfg.Fixtures.Seed))
		return internalrepo.NewMemoryFixtureStore(
			crm.GenerateCustomers(rng, cfg.Fixtures.Customers),
			crm.GenerateProducts(rng, cfg.Fixtures.Products),
			crm.GenerateCompetitors(rng, cfg.Fixtures.Competitors),
			crm.GenerateMarketCondition(rng),
		), nil
	default:
		return nil, fmt.Errorf("unknown fixtures mode: %q", cfg.Fixtures.Mode)
	}
}

// ProvidePerformanceCalculator creates the performance index calculator.
func ProvidePerformanceCalculator() (*performance.Calculator, error) {
	return performance.NewCalculator(performance.DefaultWeights())
}

// ProvideEstimator creates the pricing use case.
func ProvideEstimator(store repository.FixtureStore, calc *performance.Calculator) *usecase.Estimator {
	return usecase.NewEstimator(store, calc)
}

// ProvideEstimateCache selects the estimate cache backend.
func ProvideEstimateCache(cfg *config.Config) icache.BytesCache {
	if cfg.Cache.Backend == "redis" {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvideHandler creates the HTTP handler with cache and rate limiting wired.
func ProvideHandler(
	l *applogger.Logger,
	estimator *usecase.Estimator,
	store repository.FixtureStore,
	m repository.Metrics,
	cache icache.BytesCache,
	cfg *config.Config,
) xhttp.Handler {
	h := api.NewPricingEchoHandler(l, estimator, store, m)
	if cfg.Cache.TTL > 0 {
		h.SetCache(cache, cfg.Cache.TTL)
	}
	if cfg.RateLimit.Capacity > 0 && cfg.RateLimit.RefillPerSec > 0 {
		h.SetRateLimit(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}
