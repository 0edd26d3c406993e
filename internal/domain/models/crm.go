package models

// CRM fixture entities. All records are immutable after load; the fixture
// store hands out copies, never shared slices.

// CustomerSize classifies a customer by organization size.
type CustomerSize string

const (
	SizeSmall      CustomerSize = "Small"
	SizeMedium     CustomerSize = "Medium"
	SizeLarge      CustomerSize = "Large"
	SizeEnterprise CustomerSize = "Enterprise"
)

// ProductTier is the service tier of a product.
type ProductTier string

const (
	TierBasic      ProductTier = "Basic"
	TierStandard   ProductTier = "Standard"
	TierPremium    ProductTier = "Premium"
	TierEnterprise ProductTier = "Enterprise"
)

// LiquidityStatus describes a customer's current purchasing liquidity.
type LiquidityStatus string

const (
	LiquidityHigh   LiquidityStatus = "high"
	LiquidityNormal LiquidityStatus = "normal"
	LiquidityLow    LiquidityStatus = "low"
)

// DiscountType is the kind of negotiated discount agreement.
type DiscountType string

const (
	DiscountVolume    DiscountType = "volume"
	DiscountLoyalty   DiscountType = "loyalty"
	DiscountStrategic DiscountType = "strategic"
)

// TrendDirection is the current market trend.
type TrendDirection string

const (
	TrendUp     TrendDirection = "Up"
	TrendDown   TrendDirection = "Down"
	TrendStable TrendDirection = "Stable"
)

// DealStatus is the outcome of a past deal.
type DealStatus string

const (
	DealWon  DealStatus = "won"
	DealLost DealStatus = "lost"
)

// PastDeal is one historical transaction with a customer.
type PastDeal struct {
	Date     string     `json:"date"`
	Product  string     `json:"product"`
	Quantity int        `json:"quantity"`
	Price    float64    `json:"price"`
	Status   DealStatus `json:"status"`
}

// DiscountAgreement is a negotiated percentage discount.
type DiscountAgreement struct {
	Type       DiscountType `json:"type"`
	Percentage float64      `json:"percentage"`
}

// Customer is a CRM customer record.
// RelationshipStrength is a scalar in [0,1].
type Customer struct {
	ID                   string             `json:"id"`
	Name                 string             `json:"name"`
	Industry             string             `json:"industry"`
	Size                 CustomerSize       `json:"size"`
	RelationshipStrength float64            `json:"relationshipStrength"`
	PastDeals            []PastDeal         `json:"pastDeals"`
	DiscountAgreement    *DiscountAgreement `json:"discountAgreement,omitempty"`
	ValuePreferences     []string           `json:"valuePreferences"`
	LiquidityStatus      LiquidityStatus    `json:"liquidityStatus,omitempty"`
	News                 []string           `json:"news,omitempty"`
}

// Product is a catalog entry. BaseCost is the per-unit cost and must be > 0.
type Product struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Category string      `json:"category"`
	BaseCost float64     `json:"baseCost"`
	Tier     ProductTier `json:"tier"`
	Features []string    `json:"features"`
}

// Competitor is a market competitor in one product category.
// Used for informational average-price display only; it never moves the
// computed price.
type Competitor struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	ProductCategory string  `json:"productCategory"`
	BasePrice       float64 `json:"basePrice"`
	PriceRangeMin   float64 `json:"priceRangeMin"`
	PriceRangeMax   float64 `json:"priceRangeMax"`
	MarketShare     float64 `json:"marketShare"`
}

// MarketCondition is the single current market snapshot. EconomicIndicator
// and SeasonalFactor are multipliers centered near 1.0.
type MarketCondition struct {
	Date              string         `json:"date"`
	Industry          string         `json:"industry"`
	TrendDirection    TrendDirection `json:"trendDirection"`
	EconomicIndicator float64        `json:"economicIndicator"`
	SeasonalFactor    float64        `json:"seasonalFactor"`
	News              []string       `json:"news"`
}
