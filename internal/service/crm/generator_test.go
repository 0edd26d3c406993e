package crm

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCustomersInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	customers := GenerateCustomers(rng, 200)
	require.Len(t, customers, 200)

	seen := make(map[string]bool)
	for _, c := range customers {
		assert.True(t, strings.HasPrefix(c.ID, "CUST_"), "id %q", c.ID)
		assert.False(t, seen[c.ID], "duplicate id %q", c.ID)
		seen[c.ID] = true

		assert.NotEmpty(t, c.Name)
		assert.GreaterOrEqual(t, c.RelationshipStrength, 0.2)
		assert.LessOrEqual(t, c.RelationshipStrength, 1.0)
		assert.GreaterOrEqual(t, len(c.ValuePreferences), 2)

		if c.DiscountAgreement != nil {
			assert.GreaterOrEqual(t, c.DiscountAgreement.Percentage, 1.0)
			assert.LessOrEqual(t, c.DiscountAgreement.Percentage, 7.0)
		}
		for _, d := range c.PastDeals {
			assert.Greater(t, d.Quantity, 0)
			assert.Greater(t, d.Price, 0.0)
		}
	}
}

func TestGenerateProductsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	products := GenerateProducts(rng, 100)
	require.Len(t, products, 100)

	for _, p := range products {
		assert.True(t, strings.HasPrefix(p.ID, "PROD_"))
		assert.Greater(t, p.BaseCost, 1.0)
		assert.LessOrEqual(t, p.BaseCost, 100.0)
		assert.NotEmpty(t, p.Category)
		assert.GreaterOrEqual(t, len(p.Features), 3)
		assert.LessOrEqual(t, len(p.Features), 6)
	}
}

func TestGenerateCompetitorsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	competitors := GenerateCompetitors(rng, 50)
	require.Len(t, competitors, 50)

	for _, c := range competitors {
		assert.True(t, strings.HasPrefix(c.ID, "COMP_"))
		assert.Less(t, c.PriceRangeMin, c.BasePrice)
		assert.Greater(t, c.PriceRangeMax, c.BasePrice)
		assert.GreaterOrEqual(t, c.MarketShare, 5.0)
	}
}

func TestGenerateMarketConditionRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		mc := GenerateMarketCondition(rng)
		assert.GreaterOrEqual(t, mc.EconomicIndicator, 0.95)
		assert.LessOrEqual(t, mc.EconomicIndicator, 1.10)
		assert.GreaterOrEqual(t, mc.SeasonalFactor, 0.90)
		assert.LessOrEqual(t, mc.SeasonalFactor, 1.10)
		assert.GreaterOrEqual(t, len(mc.News), 2)
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a := GenerateProducts(rand.New(rand.NewSource(42)), 20)
	b := GenerateProducts(rand.New(rand.NewSource(42)), 20)
	assert.Equal(t, a, b)

	ca := GenerateCompetitors(rand.New(rand.NewSource(42)), 20)
	cb := GenerateCompetitors(rand.New(rand.NewSource(42)), 20)
	assert.Equal(t, ca, cb)

	// Customers embed deal dates relative to the current day, so compare
	// the stable fields only.
	x := GenerateCustomers(rand.New(rand.NewSource(42)), 20)
	y := GenerateCustomers(rand.New(rand.NewSource(42)), 20)
	require.Len(t, y, len(x))
	for i := range x {
		assert.Equal(t, x[i].ID, y[i].ID)
		assert.Equal(t, x[i].Name, y[i].Name)
		assert.Equal(t, x[i].ValuePreferences, y[i].ValuePreferences)
	}
}
