package models

import "fmt"

// WarningLevel grades how far a desired margin strays from the fair margin.
type WarningLevel string

const (
	WarningLow    WarningLevel = "low"
	WarningMedium WarningLevel = "medium"
	WarningHigh   WarningLevel = "high"
)

// PricingFactor is one named, independently toggleable pricing adjustment.
// Impact is the applied price delta; it is 0 when the factor was toggled off,
// but Explanation is always populated.
type PricingFactor struct {
	Impact      float64 `json:"impact"`
	Explanation string  `json:"explanation"`
}

// ValueFactor is the value-based pricing factor; it carries the performance
// index that produced the fair price.
type ValueFactor struct {
	Impact           float64                 `json:"impact"`
	Explanation      string                  `json:"explanation"`
	PerformanceIndex OverallPerformanceIndex `json:"performanceIndex"`
}

// MarginWarning flags a desired margin that deviates from the fair margin.
type MarginWarning struct {
	Level   WarningLevel `json:"level"`
	Message string       `json:"message"`
}

// MarginFactor is the applied margin with its fair-margin recommendation.
type MarginFactor struct {
	Impact               float64        `json:"impact"`
	Explanation          string         `json:"explanation"`
	DesiredMarginPercent float64        `json:"desiredMarginPercent"`
	FairMarginPercent    float64        `json:"fairMarginPercent"`
	Warning              *MarginWarning `json:"warning,omitempty"`
}

// PriceFactors maps factor kinds to their adjustment records. The optional
// entries are present only when the customer fixture carries the
// corresponding field (discount agreement, liquidity status) or when the
// margin step ran.
type PriceFactors struct {
	ValueBasedPricingStrategy ValueFactor    `json:"valueBasedPricingStrategy"`
	ProductCost               PricingFactor  `json:"productCost"`
	RelationshipStrength      PricingFactor  `json:"relationshipStrength"`
	MarketConditions          PricingFactor  `json:"marketConditions"`
	CompetitorPricing         PricingFactor  `json:"competitorPricing"`
	DiscountAgreement         *PricingFactor `json:"discountAgreement,omitempty"`
	LiquidityStatus           *PricingFactor `json:"liquidityStatus,omitempty"`
	DesiredMargin             *MarginFactor  `json:"desiredMargin,omitempty"`
}

// PriceEstimate is the full pricing result for one request. Created once per
// request, never persisted, immutable after construction.
type PriceEstimate struct {
	EstimatedPrice          float64      `json:"estimatedPrice"`
	FairPrice               float64      `json:"fairPrice"`
	ConfidenceIntervalLower float64      `json:"confidenceIntervalLower"`
	ConfidenceIntervalUpper float64      `json:"confidenceIntervalUpper"`
	ConfidenceScore         float64      `json:"confidenceScore"`
	BasePrice               float64      `json:"basePrice"`
	ProductCategory         string       `json:"productCategory"`
	ProductBaseCost         float64      `json:"productBaseCost"`
	OrderQuantity           int          `json:"orderQuantity"`
	Factors                 PriceFactors `json:"factors"`
	Explanation             string       `json:"explanation"`
}

// FactorOptions toggles individual pricing factors. All fields are required;
// use DefaultFactorOptions for the default all-enabled configuration.
type FactorOptions struct {
	IncludeRelationshipStrength bool `json:"includeRelationshipStrength"`
	IncludeMarketConditions     bool `json:"includeMarketConditions"`
	IncludeDiscountAgreement    bool `json:"includeDiscountAgreement"`
	IncludeLiquidityStatus      bool `json:"includeLiquidityStatus"`
}

// DefaultFactorOptions returns the default configuration with every factor
// enabled.
func DefaultFactorOptions() FactorOptions {
	return FactorOptions{
		IncludeRelationshipStrength: true,
		IncludeMarketConditions:     true,
		IncludeDiscountAgreement:    true,
		IncludeLiquidityStatus:      true,
	}
}

// NotFoundError reports an unresolved customer or product id. The request
// fails as a whole; no partial estimate is produced.
type NotFoundError struct {
	CustomerID string
	ProductID  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("customer or product not found: customerId=%s, productId=%s", e.CustomerID, e.ProductID)
}
