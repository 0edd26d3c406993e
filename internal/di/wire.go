//go:build wireinject
// +build wireinject

package di

import (
	"PricePull/pkg/config"
	"PricePull/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Fixture snapshot
		ProvideFixtureStore,

		// Pricing pipeline
		ProvidePerformanceCalculator,
		ProvideEstimator,

		// HTTP surface
		ProvideEstimateCache,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
