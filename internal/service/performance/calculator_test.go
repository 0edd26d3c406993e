package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PricePull/internal/domain/models"
)

func TestNewCalculatorRejectsBadWeights(t *testing.T) {
	_, err := NewCalculator(Weights{Fit: 0.5, Quality: 0.5, Delivery: 0.5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")

	_, err = NewCalculator(DefaultWeights())
	assert.NoError(t, err)
}

func TestValueMultiplierRange(t *testing.T) {
	assert.InDelta(t, 0.95, ValueMultiplier(0), 1e-9)
	assert.InDelta(t, 1.05, ValueMultiplier(50), 1e-9)
	assert.InDelta(t, 1.15, ValueMultiplier(100), 1e-9)
}

func TestIndexWeightedComposite(t *testing.T) {
	calc, err := NewCalculator(DefaultWeights())
	require.NoError(t, err)

	customer := &models.Customer{
		RelationshipStrength: 0.92,
		ValuePreferences:     []string{"Fast Lead Times", "Quality Certifications", "Bulk Availability"},
	}
	product := &models.Product{
		Category: "Microcontrollers",
		BaseCost: 8.50,
		Tier:     models.TierEnterprise,
		Features: []string{"ARM Cortex-M4", "512KB Flash", "Industrial Grade", "Extended Temperature Range", "RoHS Compliant"},
	}
	competitors := []models.Competitor{
		{ProductCategory: "Microcontrollers", BasePrice: 9.50},
		{ProductCategory: "Displays", BasePrice: 9.50},
	}

	index := calc.Index(customer, product, competitors)

	// fit 100, quality 95, delivery 90, support 70, innovation 90, cost 90
	require.Len(t, index.Metrics, 6)
	assert.InDelta(t, 100, index.Metrics[0].Score, 1e-9)
	assert.InDelta(t, 95, index.Metrics[1].Score, 1e-9)
	assert.InDelta(t, 90, index.Metrics[2].Score, 1e-9)
	assert.InDelta(t, 70, index.Metrics[3].Score, 1e-9)
	assert.InDelta(t, 90, index.Metrics[4].Score, 1e-9)
	assert.InDelta(t, 90, index.Metrics[5].Score, 1e-9)

	assert.InDelta(t, 90.5, index.OverallScore, 1e-9)
	assert.InDelta(t, 1.131, index.ValueMultiplier, 1e-9)
}

func TestScoreProductFit(t *testing.T) {
	noPrefs := &models.Customer{}
	assert.InDelta(t, 50, scoreProductFit(noPrefs, &models.Product{Tier: models.TierEnterprise}), 1e-9)

	onePref := &models.Customer{ValuePreferences: []string{"Cost Efficiency"}}
	assert.InDelta(t, 90, scoreProductFit(onePref, &models.Product{Tier: models.TierEnterprise}), 1e-9)
	assert.InDelta(t, 85, scoreProductFit(onePref, &models.Product{Tier: models.TierPremium}), 1e-9)
	assert.InDelta(t, 80, scoreProductFit(onePref, &models.Product{Tier: models.TierStandard}), 1e-9)
	assert.InDelta(t, 75, scoreProductFit(onePref, &models.Product{Tier: models.TierBasic}), 1e-9)

	// Capped at 100 regardless of preference count.
	manyPrefs := &models.Customer{ValuePreferences: make([]string, 6)}
	assert.InDelta(t, 100, scoreProductFit(manyPrefs, &models.Product{Tier: models.TierBasic}), 1e-9)
}

func TestScoreDeliveryBands(t *testing.T) {
	assert.InDelta(t, 90, scoreDelivery(0.81), 1e-9)
	assert.InDelta(t, 80, scoreDelivery(0.8), 1e-9)
	assert.InDelta(t, 80, scoreDelivery(0.61), 1e-9)
	assert.InDelta(t, 70, scoreDelivery(0.6), 1e-9)
	assert.InDelta(t, 70, scoreDelivery(0.41), 1e-9)
	assert.InDelta(t, 60, scoreDelivery(0.4), 1e-9)
}

func TestScoreSupport(t *testing.T) {
	assert.InDelta(t, 85, scoreSupport([]string{"Priority Support"}), 1e-9)
	assert.InDelta(t, 85, scoreSupport([]string{"3-Year Warranty"}), 1e-9)
	assert.InDelta(t, 85, scoreSupport([]string{"TECHNICAL SUPPORT"}), 1e-9)
	assert.InDelta(t, 70, scoreSupport([]string{"Bulk Packaging"}), 1e-9)
	assert.InDelta(t, 70, scoreSupport(nil), 1e-9)
}

func TestScoreCostEfficiencyBands(t *testing.T) {
	avg := 10.0
	assert.InDelta(t, 90, scoreCostEfficiency(8.9, avg), 1e-9)
	assert.InDelta(t, 85, scoreCostEfficiency(9.2, avg), 1e-9)
	assert.InDelta(t, 75, scoreCostEfficiency(10.0, avg), 1e-9)
	assert.InDelta(t, 65, scoreCostEfficiency(10.8, avg), 1e-9)
	assert.InDelta(t, 55, scoreCostEfficiency(11.5, avg), 1e-9)
}

func TestCompetitorsInCategory(t *testing.T) {
	competitors := []models.Competitor{
		{Name: "A", ProductCategory: "Displays"},
		{Name: "B", ProductCategory: "Microcontrollers"},
		{Name: "C", ProductCategory: "Displays"},
	}

	got := CompetitorsInCategory(competitors, "Displays")
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, "C", got[1].Name)

	assert.Empty(t, CompetitorsInCategory(competitors, "Sensors"))
}

func TestAverageBasePrice(t *testing.T) {
	competitors := []models.Competitor{{BasePrice: 8}, {BasePrice: 12}}
	assert.InDelta(t, 10, AverageBasePrice(competitors, 99), 1e-9)

	// Fallback to the product's own cost when the category has no data.
	assert.InDelta(t, 99, AverageBasePrice(nil, 99), 1e-9)
}
