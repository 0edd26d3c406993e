package performance

import (
	"fmt"
	"math"
	"strings"

	"PricePull/internal/domain/models"
)

// Metric names as shown to the caller.
const (
	MetricFit        = "Product-Customer Fit"
	MetricQuality    = "Quality & Reliability"
	MetricDelivery   = "Delivery Performance"
	MetricSupport    = "Technical Support"
	MetricInnovation = "Innovation & Features"
	MetricCostEff    = "Cost Efficiency"
)

// Weights are the relative weights of the six performance metrics.
// They must sum to 1.0; Validate enforces this at construction time rather
// than trusting inline literals.
type Weights struct {
	Fit            float64
	Quality        float64
	Delivery       float64
	Support        float64
	Innovation     float64
	CostEfficiency float64
}

// DefaultWeights returns the standard metric weighting.
func DefaultWeights() Weights {
	return Weights{
		Fit:            0.25,
		Quality:        0.20,
		Delivery:       0.15,
		Support:        0.15,
		Innovation:     0.15,
		CostEfficiency: 0.10,
	}
}

// Validate checks that the weights sum to 1.0.
func (w Weights) Validate() error {
	sum := w.Fit + w.Quality + w.Delivery + w.Support + w.Innovation + w.CostEfficiency
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("metric weights must sum to 1.0, got %.6f", sum)
	}
	return nil
}

// Calculator derives the overall performance index for a (customer, product)
// pair. The index expresses delivered value across six dimensions and maps
// linearly onto the value multiplier in [0.95,1.15].
type Calculator struct {
	weights Weights
}

// NewCalculator builds a calculator after validating the weights.
func NewCalculator(w Weights) (*Calculator, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{weights: w}, nil
}

// Index computes the six sub-scores and their weighted composite.
func (c *Calculator) Index(
	customer *models.Customer,
	product *models.Product,
	competitors []models.Competitor,
) models.OverallPerformanceIndex {
	relevant := CompetitorsInCategory(competitors, product.Category)
	avgPrice := AverageBasePrice(relevant, product.BaseCost)

	metrics := []models.PerformanceMetric{
		{Name: MetricFit, Score: scoreProductFit(customer, product), Weight: c.weights.Fit},
		{Name: MetricQuality, Score: scoreQuality(product.Tier), Weight: c.weights.Quality},
		{Name: MetricDelivery, Score: scoreDelivery(customer.RelationshipStrength), Weight: c.weights.Delivery},
		{Name: MetricSupport, Score: scoreSupport(product.Features), Weight: c.weights.Support},
		{Name: MetricInnovation, Score: scoreInnovation(product.Features), Weight: c.weights.Innovation},
		{Name: MetricCostEff, Score: scoreCostEfficiency(product.BaseCost, avgPrice), Weight: c.weights.CostEfficiency},
	}

	var overall float64
	for _, m := range metrics {
		overall += m.Score * m.Weight
	}

	return models.OverallPerformanceIndex{
		OverallScore:    overall,
		Metrics:         metrics,
		ValueMultiplier: ValueMultiplier(overall),
	}
}

// ValueMultiplier maps a [0,100] score linearly onto [0.95,1.15].
func ValueMultiplier(overallScore float64) float64 {
	return 0.95 + (overallScore/100)*0.20
}

// scoreProductFit rates how well the product matches the customer's stated
// value preferences. A customer with no recorded preferences scores a flat 50.
func scoreProductFit(customer *models.Customer, product *models.Product) float64 {
	if len(customer.ValuePreferences) == 0 {
		return 50
	}
	score := 60 + float64(len(customer.ValuePreferences))*10
	switch product.Tier {
	case models.TierEnterprise:
		score += 20
	case models.TierPremium:
		score += 15
	case models.TierStandard:
		score += 10
	default:
		score += 5
	}
	return math.Min(100, score)
}

// scoreQuality is a fixed lookup by product tier.
func scoreQuality(tier models.ProductTier) float64 {
	switch tier {
	case models.TierEnterprise:
		return 95
	case models.TierPremium:
		return 85
	case models.TierStandard:
		return 75
	default:
		return 65
	}
}

// scoreDelivery bands the relationship strength.
func scoreDelivery(relationship float64) float64 {
	switch {
	case relationship > 0.8:
		return 90
	case relationship > 0.6:
		return 80
	case relationship > 0.4:
		return 70
	default:
		return 60
	}
}

// scoreSupport checks for support or warranty coverage among the product
// features (case-insensitive substring match).
func scoreSupport(features []string) float64 {
	for _, f := range features {
		lf := strings.ToLower(f)
		if strings.Contains(lf, "support") || strings.Contains(lf, "warranty") {
			return 85
		}
	}
	return 70
}

// scoreInnovation bands the feature count.
func scoreInnovation(features []string) float64 {
	switch n := len(features); {
	case n > 4:
		return 90
	case n > 3:
		return 80
	case n > 2:
		return 70
	default:
		return 60
	}
}

// scoreCostEfficiency compares the product base cost against the average
// competitor price, banded at 90/95/105/110 percent of the mean.
func scoreCostEfficiency(baseCost, avgCompetitorPrice float64) float64 {
	switch {
	case baseCost < avgCompetitorPrice*0.90:
		return 90
	case baseCost < avgCompetitorPrice*0.95:
		return 85
	case baseCost <= avgCompetitorPrice*1.05:
		return 75
	case baseCost <= avgCompetitorPrice*1.10:
		return 65
	default:
		return 55
	}
}

// CompetitorsInCategory filters competitors to the product's category.
func CompetitorsInCategory(competitors []models.Competitor, category string) []models.Competitor {
	var out []models.Competitor
	for _, c := range competitors {
		if c.ProductCategory == category {
			out = append(out, c)
		}
	}
	return out
}

// AverageBasePrice returns the mean competitor base price, or fallback when
// no competitor exists in the category.
func AverageBasePrice(competitors []models.Competitor, fallback float64) float64 {
	if len(competitors) == 0 {
		return fallback
	}
	var sum float64
	for _, c := range competitors {
		sum += c.BasePrice
	}
	return sum / float64(len(competitors))
}
