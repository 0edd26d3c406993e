package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PricePull/internal/domain/models"
	"PricePull/internal/repository"
	"PricePull/internal/service/performance"
)

func newSeedEstimator(t *testing.T) *Estimator {
	t.Helper()
	calc, err := performance.NewCalculator(performance.DefaultWeights())
	require.NoError(t, err)
	store := repository.NewMemoryFixtureStore(
		repository.SeedCustomers(),
		repository.SeedProducts(),
		repository.SeedCompetitors(),
		repository.SeedMarketCondition(),
	)
	return NewEstimator(store, calc)
}

func TestEstimateSeedScenario(t *testing.T) {
	e := newSeedEstimator(t)

	// ElectroRetail Chain buying 1000 STM32 units with every factor enabled.
	res, err := e.Estimate(EstimateParams{
		CustomerID: "1",
		ProductID:  "1",
		Quantity:   1000,
		Options:    models.DefaultFactorOptions(),
	})
	require.NoError(t, err)

	assert.InDelta(t, 8500.0, res.BasePrice, 1e-9)
	assert.InDelta(t, 9613.5, res.FairPrice, 1e-6)

	// Performance index: fit 100, quality 95, delivery 90, support 70,
	// innovation 90, cost efficiency 90 -> 90.5 weighted.
	index := res.Factors.ValueBasedPricingStrategy.PerformanceIndex
	assert.InDelta(t, 90.5, index.OverallScore, 1e-9)
	assert.InDelta(t, 1.131, index.ValueMultiplier, 1e-9)
	assert.Len(t, index.Metrics, 6)

	// Ordered pipeline: 9613.5 * 1.042 * 1.071, then -5% discount, then
	// *1.03 liquidity, then +30% fair margin.
	assert.InDelta(t, 1113.5, res.Factors.ValueBasedPricingStrategy.Impact, 1e-6)
	assert.InDelta(t, 403.767, res.Factors.RelationshipStrength.Impact, 1e-6)
	assert.InDelta(t, 711.225957, res.Factors.MarketConditions.Impact, 1e-6)
	require.NotNil(t, res.Factors.DiscountAgreement)
	assert.InDelta(t, -536.42464785, res.Factors.DiscountAgreement.Impact, 1e-6)
	require.NotNil(t, res.Factors.LiquidityStatus)
	assert.InDelta(t, 305.7620492745, res.Factors.LiquidityStatus.Impact, 1e-6)

	// Competitor pricing never moves the price.
	assert.Zero(t, res.Factors.CompetitorPricing.Impact)
	assert.NotEmpty(t, res.Factors.CompetitorPricing.Explanation)

	// Fair margin: 20 +5 relationship +3 trend up +2 high liquidity = 30.
	require.NotNil(t, res.Factors.DesiredMargin)
	assert.InDelta(t, 30.0, res.Factors.DesiredMargin.FairMarginPercent, 1e-9)
	assert.InDelta(t, 30.0, res.Factors.DesiredMargin.DesiredMarginPercent, 1e-9)
	assert.Nil(t, res.Factors.DesiredMargin.Warning)

	assert.InDelta(t, 13647.17946595185, res.EstimatedPrice, 1e-6)

	// Full confidence: past deals, strong relationship, competitor data.
	assert.InDelta(t, 0.95, res.ConfidenceScore, 1e-9)
	assert.InDelta(t, res.EstimatedPrice*0.95, res.ConfidenceIntervalLower, 1e-6)
	assert.InDelta(t, res.EstimatedPrice*1.05, res.ConfidenceIntervalUpper, 1e-6)

	assert.Equal(t, "Microcontrollers", res.ProductCategory)
	assert.InDelta(t, 8.50, res.ProductBaseCost, 1e-9)
	assert.Equal(t, 1000, res.OrderQuantity)
	assert.NotEmpty(t, res.Explanation)
}

func TestEstimateNotFound(t *testing.T) {
	e := newSeedEstimator(t)

	res, err := e.Estimate(EstimateParams{
		CustomerID: "nope",
		ProductID:  "1",
		Quantity:   10,
		Options:    models.DefaultFactorOptions(),
	})
	require.Error(t, err)
	assert.Nil(t, res)

	var nf *models.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "customer or product not found: customerId=nope, productId=1", nf.Error())
}

func TestEstimateAllFactorsDisabled(t *testing.T) {
	e := newSeedEstimator(t)

	res, err := e.Estimate(EstimateParams{
		CustomerID: "1",
		ProductID:  "1",
		Quantity:   1000,
		Options:    models.FactorOptions{},
	})
	require.NoError(t, err)

	// Nothing moved the price and no explicit margin was requested, so the
	// estimate stays at the fair price and the margin step never runs.
	assert.InDelta(t, res.FairPrice, res.EstimatedPrice, 1e-9)
	assert.Nil(t, res.Factors.DesiredMargin)

	assert.Zero(t, res.Factors.RelationshipStrength.Impact)
	assert.Zero(t, res.Factors.MarketConditions.Impact)
	require.NotNil(t, res.Factors.DiscountAgreement)
	assert.Zero(t, res.Factors.DiscountAgreement.Impact)
	require.NotNil(t, res.Factors.LiquidityStatus)
	assert.Zero(t, res.Factors.LiquidityStatus.Impact)

	// Disabled factors still explain themselves.
	assert.Contains(t, res.Factors.RelationshipStrength.Explanation, "Not applied")
	assert.Contains(t, res.Factors.MarketConditions.Explanation, "Not applied")
	assert.Contains(t, res.Factors.DiscountAgreement.Explanation, "Not applied")
	assert.Contains(t, res.Factors.LiquidityStatus.Explanation, "Not applied")
}

func TestEstimateDesiredMarginRunsWithoutAppliedFactors(t *testing.T) {
	e := newSeedEstimator(t)
	desired := 25.0

	res, err := e.Estimate(EstimateParams{
		CustomerID:           "1",
		ProductID:            "1",
		Quantity:             100,
		DesiredMarginPercent: &desired,
		Options:              models.FactorOptions{},
	})
	require.NoError(t, err)

	require.NotNil(t, res.Factors.DesiredMargin)
	assert.InDelta(t, desired, res.Factors.DesiredMargin.DesiredMarginPercent, 1e-9)
	assert.InDelta(t, res.FairPrice*1.25, res.EstimatedPrice, 1e-6)
}

func TestEstimateMarginWarnings(t *testing.T) {
	// Customer 1 / product 1 resolves to a fair margin of 30%.
	cases := []struct {
		name    string
		desired float64
		level   models.WarningLevel
		warned  bool
	}{
		{"far above fair", 45, models.WarningHigh, true},
		{"above fair", 37, models.WarningMedium, true},
		{"below fair", 20, models.WarningLow, true},
		{"near fair", 32, "", false},
	}

	e := newSeedEstimator(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := e.Estimate(EstimateParams{
				CustomerID:           "1",
				ProductID:            "1",
				Quantity:             500,
				DesiredMarginPercent: &tc.desired,
				Options:              models.DefaultFactorOptions(),
			})
			require.NoError(t, err)
			require.NotNil(t, res.Factors.DesiredMargin)
			assert.InDelta(t, 30.0, res.Factors.DesiredMargin.FairMarginPercent, 1e-9)

			if !tc.warned {
				assert.Nil(t, res.Factors.DesiredMargin.Warning)
				return
			}
			require.NotNil(t, res.Factors.DesiredMargin.Warning)
			assert.Equal(t, tc.level, res.Factors.DesiredMargin.Warning.Level)
			assert.NotEmpty(t, res.Factors.DesiredMargin.Warning.Message)
		})
	}
}

func TestEstimatePriceFloorAndBaseConfidence(t *testing.T) {
	calc, err := performance.NewCalculator(performance.DefaultWeights())
	require.NoError(t, err)

	// A weak relationship and a collapsed market drag the price below 70%
	// of base; the floor catches it. No past deals and no competitor data
	// leave confidence at its base value.
	store := repository.NewMemoryFixtureStore(
		[]models.Customer{{ID: "c", Name: "New Prospect", RelationshipStrength: 0}},
		[]models.Product{{ID: "p", Name: "Commodity Part", Category: "Misc", BaseCost: 10}},
		nil,
		models.MarketCondition{TrendDirection: models.TrendStable, EconomicIndicator: 0.5, SeasonalFactor: 1.0},
	)
	e := NewEstimator(store, calc)

	res, err := e.Estimate(EstimateParams{
		CustomerID: "c",
		ProductID:  "p",
		Quantity:   100,
		Options:    models.DefaultFactorOptions(),
	})
	require.NoError(t, err)

	assert.InDelta(t, res.BasePrice*0.7, res.EstimatedPrice, 1e-9)
	assert.InDelta(t, 0.70, res.ConfidenceScore, 1e-9)

	// Optional factors are absent when the fixture has no matching data.
	assert.Nil(t, res.Factors.DiscountAgreement)
	assert.Nil(t, res.Factors.LiquidityStatus)
}

func TestFairMarginPercent(t *testing.T) {
	cases := []struct {
		name     string
		customer models.Customer
		market   models.MarketCondition
		want     float64
	}{
		{
			"strong relationship, up trend, high liquidity",
			models.Customer{RelationshipStrength: 0.92, LiquidityStatus: models.LiquidityHigh},
			models.MarketCondition{TrendDirection: models.TrendUp},
			30,
		},
		{
			"weak relationship, down trend, low liquidity",
			models.Customer{RelationshipStrength: 0.45, LiquidityStatus: models.LiquidityLow},
			models.MarketCondition{TrendDirection: models.TrendDown},
			12,
		},
		{
			"neutral everything",
			models.Customer{RelationshipStrength: 0.6},
			models.MarketCondition{TrendDirection: models.TrendStable},
			20,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fairMarginPercent(&tc.customer, tc.market)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestMarginWarningBoundaries(t *testing.T) {
	// Boundaries are strict: exactly +10 is medium, exactly +5 and -5 are
	// no warning at all.
	w := marginWarning(40, 30)
	require.NotNil(t, w)
	assert.Equal(t, models.WarningMedium, w.Level)

	assert.Nil(t, marginWarning(35, 30))
	assert.Nil(t, marginWarning(25, 30))

	w = marginWarning(41, 30)
	require.NotNil(t, w)
	assert.Equal(t, models.WarningHigh, w.Level)

	w = marginWarning(24, 30)
	require.NotNil(t, w)
	assert.Equal(t, models.WarningLow, w.Level)
}

func TestLiquidityMultiplierFor(t *testing.T) {
	assert.InDelta(t, 1.03, liquidityMultiplierFor(models.LiquidityHigh), 1e-9)
	assert.InDelta(t, 1.0, liquidityMultiplierFor(models.LiquidityNormal), 1e-9)
	assert.InDelta(t, 0.97, liquidityMultiplierFor(models.LiquidityLow), 1e-9)
}
