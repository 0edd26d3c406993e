package usecase

import (
	"fmt"
	"math"
	"strings"

	"PricePull/internal/domain/models"
	domrepo "PricePull/internal/domain/repository"
	"PricePull/internal/service/performance"
	"PricePull/pkg/util"
)

// Pricing pipeline constants.
const (
	// appliedImpactThreshold is the minimum absolute impact for a factor to
	// count as "applied" when deciding whether the margin step runs.
	appliedImpactThreshold = 0.01

	// priceFloorRatio is the lowest the final estimate may fall relative to
	// the base price.
	priceFloorRatio = 0.70

	baseFairMarginPercent = 20.0
	minFairMarginPercent  = 10.0
	maxFairMarginPercent  = 35.0

	baseConfidence = 0.70
	maxConfidence  = 0.95

	confidenceIntervalRatio = 0.05
)

// EstimateParams are the resolved inputs of one pricing request.
type EstimateParams struct {
	CustomerID           string
	ProductID            string
	Quantity             int
	DesiredMarginPercent *float64
	Options              models.FactorOptions
}

// Estimator runs the pricing pipeline: value-based fair price, then the
// ordered relationship/market/discount/liquidity adjustments, the
// informational competitor factor, margin, floor and confidence. Each call is
// a pure computation over the fixture snapshot.
type Estimator struct {
	store domrepo.FixtureStore
	perf  *performance.Calculator
}

// NewEstimator creates the pricing pipeline over a fixture store.
func NewEstimator(store domrepo.FixtureStore, perf *performance.Calculator) *Estimator {
	return &Estimator{store: store, perf: perf}
}

// Estimate produces a PriceEstimate or a models.NotFoundError when either id
// does not resolve. No partial result is ever returned.
func (e *Estimator) Estimate(p EstimateParams) (*models.PriceEstimate, error) {
	customer, okC := e.store.FindCustomer(p.CustomerID)
	product, okP := e.store.FindProduct(p.ProductID)
	if !okC || !okP {
		return nil, &models.NotFoundError{CustomerID: p.CustomerID, ProductID: p.ProductID}
	}

	competitors := e.store.ListCompetitors()
	market := e.store.CurrentMarketCondition()
	opts := p.Options

	basePrice := product.BaseCost * float64(p.Quantity)

	// Step 1: value-based fair price from the performance index.
	index := e.perf.Index(customer, product, competitors)
	fairPrice := basePrice * index.ValueMultiplier

	factors := models.PriceFactors{
		ValueBasedPricingStrategy: models.ValueFactor{
			Impact:           fairPrice - basePrice,
			Explanation:      valueBasedExplanation(index, fairPrice),
			PerformanceIndex: index,
		},
		ProductCost: models.PricingFactor{
			Impact:      0,
			Explanation: productCostExplanation(product, p.Quantity, basePrice),
		},
	}

	// Step 2: relationship strength on top of the fair price.
	currentPrice := fairPrice
	relationshipMultiplier := 1 + (customer.RelationshipStrength-0.5)*0.1
	relationshipImpact := (relationshipMultiplier - 1) * fairPrice
	if opts.IncludeRelationshipStrength {
		currentPrice = fairPrice * relationshipMultiplier
	}
	factors.RelationshipStrength = models.PricingFactor{
		Impact:      appliedImpact(opts.IncludeRelationshipStrength, relationshipImpact),
		Explanation: relationshipExplanation(customer, opts.IncludeRelationshipStrength),
	}

	// Step 3: market conditions on the running price.
	marketMultiplier := market.EconomicIndicator * market.SeasonalFactor
	marketImpact := (marketMultiplier - 1) * currentPrice
	if opts.IncludeMarketConditions {
		currentPrice *= marketMultiplier
	}
	factors.MarketConditions = models.PricingFactor{
		Impact:      appliedImpact(opts.IncludeMarketConditions, marketImpact),
		Explanation: marketExplanation(market, opts.IncludeMarketConditions),
	}

	// Step 4: discount agreement, present only when the customer has one.
	var discountImpact float64
	if customer.DiscountAgreement != nil {
		discountAmount := customer.DiscountAgreement.Percentage / 100 * currentPrice
		if opts.IncludeDiscountAgreement {
			currentPrice -= discountAmount
			discountImpact = -discountAmount
		}
		factors.DiscountAgreement = &models.PricingFactor{
			Impact:      discountImpact,
			Explanation: discountExplanation(customer.DiscountAgreement, opts.IncludeDiscountAgreement),
		}
	}

	// Step 5: liquidity status, present only when the customer has one.
	var liquidityImpact float64
	if customer.LiquidityStatus != "" {
		liquidityMultiplier := liquidityMultiplierFor(customer.LiquidityStatus)
		impact := (liquidityMultiplier - 1) * currentPrice
		if opts.IncludeLiquidityStatus {
			currentPrice *= liquidityMultiplier
			liquidityImpact = impact
		}
		factors.LiquidityStatus = &models.PricingFactor{
			Impact:      liquidityImpact,
			Explanation: liquidityExplanation(customer, opts.IncludeLiquidityStatus),
		}
	}

	// Step 6: competitor pricing is informational only and never moves the
	// price; its impact stays 0 by business policy.
	relevant := performance.CompetitorsInCategory(competitors, product.Category)
	avgCompetitorPrice := performance.AverageBasePrice(relevant, product.BaseCost)
	factors.CompetitorPricing = models.PricingFactor{
		Impact:      0,
		Explanation: competitorExplanation(avgCompetitorPrice, relevant),
	}

	estimatedPrice := currentPrice

	hasAppliedFactors := math.Abs(factors.RelationshipStrength.Impact) > appliedImpactThreshold ||
		math.Abs(factors.MarketConditions.Impact) > appliedImpactThreshold ||
		(factors.DiscountAgreement != nil && math.Abs(factors.DiscountAgreement.Impact) > appliedImpactThreshold) ||
		(factors.LiquidityStatus != nil && math.Abs(factors.LiquidityStatus.Impact) > appliedImpactThreshold)

	// Step 7: margin, only when some factor actually moved the price or the
	// caller asked for an explicit margin.
	if hasAppliedFactors || p.DesiredMarginPercent != nil {
		fairMargin := fairMarginPercent(customer, market)
		marginPercent := fairMargin
		if p.DesiredMarginPercent != nil {
			marginPercent = *p.DesiredMarginPercent
		}

		priceBeforeMargin := estimatedPrice
		marginImpact := priceBeforeMargin * (marginPercent / 100)
		estimatedPrice = priceBeforeMargin + marginImpact

		if p.DesiredMarginPercent != nil {
			factors.DesiredMargin = &models.MarginFactor{
				Impact: marginImpact,
				Explanation: fmt.Sprintf(
					"Desired margin of %.1f%% applied. Fair margin recommendation: %.1f%% based on relationship strength, market conditions, and competitive positioning.",
					marginPercent, fairMargin),
				DesiredMarginPercent: marginPercent,
				FairMarginPercent:    fairMargin,
				Warning:              marginWarning(marginPercent, fairMargin),
			}
		} else {
			factors.DesiredMargin = &models.MarginFactor{
				Impact: marginImpact,
				Explanation: fmt.Sprintf(
					"Recommended fair margin of %.1f%% applied based on relationship strength (%.0f%%), market conditions (%s), and competitive analysis.",
					fairMargin, customer.RelationshipStrength*100, market.TrendDirection),
				DesiredMarginPercent: fairMargin,
				FairMarginPercent:    fairMargin,
			}
		}
	}

	// Step 8: the estimate never drops below 70% of the base price.
	estimatedPrice = math.Max(estimatedPrice, basePrice*priceFloorRatio)

	// Step 9: confidence from data completeness.
	confidence := baseConfidence
	if len(customer.PastDeals) > 0 {
		confidence += 0.10
	}
	if customer.RelationshipStrength > 0.7 {
		confidence += 0.10
	}
	if len(relevant) > 0 {
		confidence += 0.10
	}
	confidence = math.Min(confidence, maxConfidence)

	confidenceRange := estimatedPrice * confidenceIntervalRatio

	return &models.PriceEstimate{
		EstimatedPrice:          estimatedPrice,
		FairPrice:               fairPrice,
		ConfidenceIntervalLower: estimatedPrice - confidenceRange,
		ConfidenceIntervalUpper: estimatedPrice + confidenceRange,
		ConfidenceScore:         confidence,
		BasePrice:               basePrice,
		ProductCategory:         product.Category,
		ProductBaseCost:         product.BaseCost,
		OrderQuantity:           p.Quantity,
		Factors:                 factors,
		Explanation:             overallExplanation(customer, market, index, fairPrice, estimatedPrice),
	}, nil
}

func appliedImpact(enabled bool, impact float64) float64 {
	if !enabled {
		return 0
	}
	return impact
}

func liquidityMultiplierFor(status models.LiquidityStatus) float64 {
	switch status {
	case models.LiquidityHigh:
		return 1.03
	case models.LiquidityLow:
		return 0.97
	default:
		return 1.0
	}
}

// fairMarginPercent derives the recommended margin from relationship, trend
// and liquidity, clamped to [10,35].
func fairMarginPercent(customer *models.Customer, market models.MarketCondition) float64 {
	margin := baseFairMarginPercent
	if customer.RelationshipStrength > 0.7 {
		margin += 5
	}
	if customer.RelationshipStrength < 0.5 {
		margin -= 3
	}
	switch market.TrendDirection {
	case models.TrendUp:
		margin += 3
	case models.TrendDown:
		margin -= 2
	}
	switch customer.LiquidityStatus {
	case models.LiquidityHigh:
		margin += 2
	case models.LiquidityLow:
		margin -= 3
	}
	return math.Max(minFairMarginPercent, math.Min(maxFairMarginPercent, margin))
}

// marginWarning grades the gap between desired and fair margin: over +10
// points is high severity, over +5 medium, under -5 a low-severity
// under-pricing warning.
func marginWarning(desired, fair float64) *models.MarginWarning {
	diff := desired - fair
	switch {
	case diff > 10:
		return &models.MarginWarning{
			Level: models.WarningHigh,
			Message: fmt.Sprintf(
				"Desired margin (%.1f%%) is significantly higher than the fair margin (%.1f%%). This may result in lost deals. Consider reducing to %.1f%% or less for better competitiveness.",
				desired, fair, fair+5),
		}
	case diff > 5:
		return &models.MarginWarning{
			Level: models.WarningMedium,
			Message: fmt.Sprintf(
				"Desired margin (%.1f%%) is above the recommended fair margin (%.1f%%). This may reduce win probability. Fair margin range: %.1f%% - %.1f%%.",
				desired, fair, fair-2, fair+2),
		}
	case diff < -5:
		return &models.MarginWarning{
			Level: models.WarningLow,
			Message: fmt.Sprintf(
				"Desired margin (%.1f%%) is below the fair margin (%.1f%%). You may be leaving money on the table. Consider increasing to %.1f%% or more.",
				desired, fair, fair-2),
		}
	default:
		return nil
	}
}

func valueBasedExplanation(index models.OverallPerformanceIndex, fairPrice float64) string {
	kind := "adjustment"
	if index.ValueMultiplier > 1 {
		kind = "premium"
	}
	return fmt.Sprintf(
		"Value-Based Pricing Strategy: Overall Performance Index of %.1f/100. This reflects the value delivered across %d key dimensions. The performance score determines the fair price of $%s (%.1f%% %s from base cost) based on customer's perceived value and willingness to pay.",
		index.OverallScore, len(index.Metrics), util.FormatMoney(fairPrice), (index.ValueMultiplier-1)*100, kind)
}

func productCostExplanation(product *models.Product, quantity int, basePrice float64) string {
	return fmt.Sprintf(
		"Base cost: $%.2f per unit × %s units = $%s. Product tier: %s. Category: %s.",
		product.BaseCost, util.FormatQuantity(quantity), util.FormatMoney(basePrice), product.Tier, product.Category)
}

func relationshipExplanation(customer *models.Customer, applied bool) string {
	deals := "deals"
	if len(customer.PastDeals) == 1 {
		deals = "deal"
	}
	head := fmt.Sprintf("Relationship strength score of %.0f%% with %d past %s.",
		customer.RelationshipStrength*100, len(customer.PastDeals), deals)
	if !applied {
		return head + " Not applied to pricing."
	}
	var note string
	switch {
	case customer.RelationshipStrength > 0.7:
		note = "Strong relationship allows for premium pricing adjustment."
	case customer.RelationshipStrength > 0.5:
		note = "Moderate relationship maintained."
	default:
		note = "Newer relationship, competitive pricing adjustment applied."
	}
	return head + " Applied to fair price: " + note
}

func marketExplanation(market models.MarketCondition, applied bool) string {
	state := "Not applied to pricing."
	if applied {
		state = "Applied to current price."
	}
	s := fmt.Sprintf("Market trend: %s. Economic indicator: %.1f%%. Seasonal factor: %.1f%%. %s",
		market.TrendDirection,
		(market.EconomicIndicator-1)*100,
		(market.SeasonalFactor-1)*100,
		state)
	if len(market.News) > 0 {
		s += " " + strings.Join(market.News, " ")
	}
	return s
}

func discountExplanation(agreement *models.DiscountAgreement, applied bool) string {
	state := "Not applied to pricing."
	if applied {
		state = "Applied to current price."
	}
	kind := string(agreement.Type)
	if kind != "" {
		kind = strings.ToUpper(kind[:1]) + kind[1:]
	}
	return fmt.Sprintf("%s discount agreement: %g%% off. %s", kind, agreement.Percentage, state)
}

func liquidityExplanation(customer *models.Customer, applied bool) string {
	s := fmt.Sprintf("Customer liquidity status: %s.", customer.LiquidityStatus)
	if applied {
		s += " Applied to current price."
		switch customer.LiquidityStatus {
		case models.LiquidityHigh:
			s += " High liquidity allows for premium pricing adjustment."
		case models.LiquidityLow:
			s += " Limited budget, competitive pricing adjustment applied."
		default:
			s += " Standard pricing approach."
		}
	} else {
		s += " Not applied to pricing."
	}
	if len(customer.News) > 0 {
		s += " " + strings.Join(customer.News, " ")
	}
	return s
}

func competitorExplanation(avgPrice float64, relevant []models.Competitor) string {
	names := make([]string, 0, len(relevant))
	for _, c := range relevant {
		names = append(names, c.Name)
	}
	verb := "are"
	if len(relevant) == 1 {
		verb = "is"
	}
	return fmt.Sprintf(
		"Average competitor price: $%.2f per unit. %s %s active in this component category. Competitor pricing is shown for reference but does not affect the fair-price calculation.",
		avgPrice, strings.Join(names, ", "), verb)
}

func overallExplanation(
	customer *models.Customer,
	market models.MarketCondition,
	index models.OverallPerformanceIndex,
	fairPrice, estimatedPrice float64,
) string {
	s := fmt.Sprintf(
		"Pricing workflow: Fair price of $%s calculated from value-based pricing strategy (Performance Index: %.1f/100). Then adjusted by relationship strength (%.0f%%), %s market conditions",
		util.FormatMoney(fairPrice), index.OverallScore, customer.RelationshipStrength*100,
		strings.ToLower(string(market.TrendDirection)))
	if customer.DiscountAgreement != nil {
		s += fmt.Sprintf(", %g%% discount agreement", customer.DiscountAgreement.Percentage)
	}
	if customer.LiquidityStatus != "" {
		s += fmt.Sprintf(", and %s liquidity status", customer.LiquidityStatus)
	}
	s += fmt.Sprintf(". Final estimated price: $%s.", util.FormatMoney(estimatedPrice))
	return s
}
