package crm

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"PricePull/internal/domain/models"
)

// Mock CRM fixture generator for the electronics-wholesale domain. All
// functions are pure over the supplied *rand.Rand and return caller-owned
// slices; there is no package-level accumulation. A fixed seed yields a
// reproducible dataset.

var (
	industries = []string{
		"Electronics Wholesale", "Electronics Distribution", "Component Wholesale",
		"Electronic Parts Distribution", "Semiconductor Distribution", "Consumer Electronics Wholesale",
		"Industrial Electronics", "Electronics Manufacturing", "Technology Distribution",
		"Electronics Supply Chain", "Electronic Components", "Electronics Retail",
	}

	companyPrefixes = []string{
		"Global", "Advanced", "Premier", "Elite", "Pro", "Tech", "Digital", "Smart",
		"Innovative", "Strategic", "Prime", "Apex", "Summit", "Vertex", "Nexus",
		"Electro", "Component", "Circuit", "Micro", "Nano", "Semiconductor",
	}

	companySuffixes = []string{
		"Electronics", "Components", "Distribution", "Wholesale", "Supply", "Group", "Corp",
		"Enterprises", "Industries", "Partners", "Associates", "Holdings", "Ventures",
		"Systems", "Solutions", "Trading",
	}

	valuePropositions = []string{
		"Cost Efficiency", "Volume Discounts", "Fast Delivery", "Quality Assurance", "Reliability",
		"Customer Support", "Inventory Management", "Custom Packaging", "Bulk Pricing", "Compliance",
		"Supply Chain Integration", "Technical Support", "Just-In-Time Delivery", "Flexibility",
		"Warranty Coverage", "Product Availability", "Competitive Pricing",
	}

	competitorNames = []string{
		"ElectroDist Wholesale", "Component Source Inc", "Global Electronics Supply",
		"Advanced Component Distributors", "Prime Electronics Group", "TechParts Wholesale",
		"Strategic Electronics Partners", "Apex Component Solutions", "Summit Electronics Supply",
		"Vertex Wholesale Electronics", "Circuit Components Corp", "MicroElectronics Distribution",
	}

	productCategories = []string{
		"Microcontrollers", "Semiconductors", "Displays", "Wireless Modules",
		"Passive Components", "Power Supplies", "Sensors & Actuators",
		"Connectors & Cables", "Electromechanical Components", "Test Equipment",
	}

	productFeaturePool = []string{
		"Industrial Grade", "Extended Temperature Range", "RoHS Compliant", "Low Power Consumption",
		"High Contrast", "Wide Viewing Angle", "Arduino Compatible", "FCC Certified",
		"3-Year Warranty", "Priority Support", "Bulk Packaging", "Standard Values",
		"Automotive Qualified", "Lead-Free", "Technical Documentation",
	}

	marketNewsPool = []string{
		"Electronics component demand up 15% YoY",
		"IoT and smart device market driving growth",
		"Supply chain stability improving after chip shortage",
		"Distributor inventories normalizing across regions",
		"Semiconductor capacity expansions coming online",
		"Freight costs easing on major trade lanes",
	}

	customerNewsPool = []string{
		"Expanding to new store locations",
		"Strong quarterly sales performance",
		"New distribution partnerships announced",
		"Limited purchasing budget this quarter",
		"Consolidating supplier base",
	}

	tiers      = []models.ProductTier{models.TierBasic, models.TierStandard, models.TierPremium, models.TierEnterprise}
	sizes      = []models.CustomerSize{models.SizeSmall, models.SizeMedium, models.SizeLarge, models.SizeEnterprise}
	statuses   = []models.LiquidityStatus{models.LiquidityHigh, models.LiquidityNormal, models.LiquidityLow}
	discounts  = []models.DiscountType{models.DiscountVolume, models.DiscountLoyalty, models.DiscountStrategic}
	trends     = []models.TrendDirection{models.TrendUp, models.TrendDown, models.TrendStable}
	dealStates = []models.DealStatus{models.DealWon, models.DealWon, models.DealWon, models.DealLost}
)

func choice[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}

// choices picks up to count distinct elements from pool.
func choices[T any](rng *rand.Rand, pool []T, count int) []T {
	idx := rng.Perm(len(pool))
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]T, 0, count)
	for _, i := range idx[:count] {
		out = append(out, pool[i])
	}
	return out
}

func newID(rng *rand.Rand, prefix string) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// rand.Rand.Read never fails
		panic(err)
	}
	return prefix + "_" + id.String()
}

func companyName(rng *rand.Rand) string {
	prefix := choice(rng, companyPrefixes)
	suffix := choice(rng, companySuffixes)
	switch rng.Intn(4) {
	case 0:
		return prefix + " Electronics " + suffix
	case 1:
		return prefix + " Component " + suffix
	case 2:
		return prefix + " " + suffix + " Electronics"
	default:
		return prefix + " " + suffix
	}
}

func pastDate(rng *rand.Rand, maxDaysAgo int) string {
	d := time.Now().AddDate(0, 0, -rng.Intn(maxDaysAgo)-1)
	return d.Format("2006-01-02")
}

// GenerateCustomers builds n randomized customers. RelationshipStrength is
// uniform in [0.2,1.0]; roughly half the customers carry a discount
// agreement and three quarters a liquidity status, so both optional-factor
// paths stay exercised.
func GenerateCustomers(rng *rand.Rand, n int) []models.Customer {
	out := make([]models.Customer, 0, n)
	for i := 0; i < n; i++ {
		c := models.Customer{
			ID:                   newID(rng, "CUST"),
			Name:                 companyName(rng),
			Industry:             choice(rng, industries),
			Size:                 choice(rng, sizes),
			RelationshipStrength: 0.2 + rng.Float64()*0.8,
			ValuePreferences:     choices(rng, valuePropositions, 2+rng.Intn(4)),
		}

		deals := rng.Intn(4)
		for d := 0; d < deals; d++ {
			qty := 50 * (1 + rng.Intn(100))
			c.PastDeals = append(c.PastDeals, models.PastDeal{
				Date:     pastDate(rng, 365),
				Product:  choice(rng, productCategories),
				Quantity: qty,
				Price:    float64(qty) * (1 + rng.Float64()*15),
				Status:   choice(rng, dealStates),
			})
		}

		if rng.Intn(2) == 0 {
			c.DiscountAgreement = &models.DiscountAgreement{
				Type:       choice(rng, discounts),
				Percentage: float64(1 + rng.Intn(7)),
			}
		}
		if rng.Intn(4) != 0 {
			c.LiquidityStatus = choice(rng, statuses)
		}
		if rng.Intn(3) == 0 {
			c.News = choices(rng, customerNewsPool, 1+rng.Intn(2))
		}
		out = append(out, c)
	}
	return out
}

// GenerateProducts builds n randomized catalog entries with a positive
// per-unit base cost.
func GenerateProducts(rng *rand.Rand, n int) []models.Product {
	out := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		category := choice(rng, productCategories)
		out = append(out, models.Product{
			ID:       newID(rng, "PROD"),
			Name:     fmt.Sprintf("%s Series %c-%d", category, 'A'+rune(rng.Intn(26)), 100+rng.Intn(900)),
			Category: category,
			BaseCost: 1 + rng.Float64()*99,
			Tier:     choice(rng, tiers),
			Features: choices(rng, productFeaturePool, 3+rng.Intn(4)),
		})
	}
	return out
}

// GenerateCompetitors builds n randomized competitors across the product
// categories.
func GenerateCompetitors(rng *rand.Rand, n int) []models.Competitor {
	out := make([]models.Competitor, 0, n)
	for i := 0; i < n; i++ {
		base := 1 + rng.Float64()*99
		out = append(out, models.Competitor{
			ID:              newID(rng, "COMP"),
			Name:            choice(rng, competitorNames),
			ProductCategory: choice(rng, productCategories),
			BasePrice:       base,
			PriceRangeMin:   base * 0.6,
			PriceRangeMax:   base * 1.4,
			MarketShare:     5 + rng.Float64()*25,
		})
	}
	return out
}

// GenerateMarketCondition builds the current market snapshot. Both
// multipliers stay centered near 1.0.
func GenerateMarketCondition(rng *rand.Rand) models.MarketCondition {
	return models.MarketCondition{
		Date:              time.Now().Format("2006-01-02"),
		Industry:          "Electronics Wholesale",
		TrendDirection:    choice(rng, trends),
		EconomicIndicator: 0.95 + rng.Float64()*0.15,
		SeasonalFactor:    0.90 + rng.Float64()*0.20,
		News:              choices(rng, marketNewsPool, 2+rng.Intn(3)),
	}
}
