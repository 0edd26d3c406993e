package repository

import "PricePull/internal/domain/models"

// Static electronics-wholesale demo dataset. Used when fixtures.mode is
// "static"; the generated mode builds a randomized set instead.

// SeedCustomers returns the demo customer set.
func SeedCustomers() []models.Customer {
	return []models.Customer{
		{
			ID:                   "1",
			Name:                 "ElectroRetail Chain",
			Industry:             "Electronics Retail",
			Size:                 models.SizeEnterprise,
			RelationshipStrength: 0.92,
			PastDeals: []models.PastDeal{
				{Date: "2024-01-15", Product: "Microcontroller Series (STM32)", Quantity: 5000, Price: 47500, Status: models.DealWon},
				{Date: "2023-08-20", Product: "OLED Displays (128x64)", Quantity: 2000, Price: 18000, Status: models.DealWon},
			},
			DiscountAgreement: &models.DiscountAgreement{Type: models.DiscountStrategic, Percentage: 5},
			ValuePreferences:  []string{"Fast Lead Times", "Quality Certifications", "Bulk Availability"},
			LiquidityStatus:   models.LiquidityHigh,
			News:              []string{"Expanding to 50 new store locations", "Strong Q1 2024 sales performance"},
		},
		{
			ID:                   "2",
			Name:                 "CircuitBoard Manufacturing",
			Industry:             "Electronics Manufacturing",
			Size:                 models.SizeLarge,
			RelationshipStrength: 0.75,
			PastDeals: []models.PastDeal{
				{Date: "2023-11-10", Product: "Passive Components Kit", Quantity: 10000, Price: 8500, Status: models.DealWon},
				{Date: "2023-05-05", Product: "Resistor Assortment", Quantity: 5000, Price: 4000, Status: models.DealLost},
			},
			DiscountAgreement: &models.DiscountAgreement{Type: models.DiscountVolume, Percentage: 3},
			ValuePreferences:  []string{"Cost Efficiency", "Consistent Quality", "Large Volume Orders"},
			LiquidityStatus:   models.LiquidityNormal,
		},
		{
			ID:                   "3",
			Name:                 "MakerSpace Electronics",
			Industry:             "Electronics Hobbyist",
			Size:                 models.SizeSmall,
			RelationshipStrength: 0.45,
			PastDeals: []models.PastDeal{
				{Date: "2023-12-01", Product: "Arduino Starter Kit", Quantity: 50, Price: 4500, Status: models.DealWon},
			},
			ValuePreferences: []string{"Affordability", "Small Order Quantities", "Educational Support"},
			LiquidityStatus:  models.LiquidityLow,
			News:             []string{"Small business, limited purchasing budget"},
		},
		{
			ID:                   "4",
			Name:                 "SmartDevice Distributors",
			Industry:             "Electronics Distribution",
			Size:                 models.SizeMedium,
			RelationshipStrength: 0.68,
			PastDeals: []models.PastDeal{
				{Date: "2024-02-01", Product: "WiFi Modules (ESP32)", Quantity: 3000, Price: 27000, Status: models.DealWon},
				{Date: "2023-09-15", Product: "Sensors Bundle", Quantity: 2500, Price: 22500, Status: models.DealWon},
			},
			DiscountAgreement: &models.DiscountAgreement{Type: models.DiscountLoyalty, Percentage: 2},
			ValuePreferences:  []string{"Reliable Supply Chain", "Technical Documentation", "Warranty Coverage"},
			LiquidityStatus:   models.LiquidityHigh,
			News:              []string{"Strong IoT market growth", "New distribution partnerships"},
		},
	}
}

// SeedProducts returns the demo product catalog.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:       "1",
			Name:     "Microcontroller Series (STM32)",
			Category: "Microcontrollers",
			BaseCost: 8.50,
			Tier:     models.TierEnterprise,
			Features: []string{"ARM Cortex-M4", "512KB Flash", "Industrial Grade", "Extended Temperature Range", "RoHS Compliant"},
		},
		{
			ID:       "2",
			Name:     "OLED Displays (128x64)",
			Category: "Displays",
			BaseCost: 9.00,
			Tier:     models.TierPremium,
			Features: []string{"I2C Interface", "High Contrast", "Low Power Consumption", "Wide Viewing Angle", "3-Year Warranty"},
		},
		{
			ID:       "3",
			Name:     "WiFi Modules (ESP32)",
			Category: "Wireless Modules",
			BaseCost: 8.50,
			Tier:     models.TierStandard,
			Features: []string{"Dual Core", "WiFi + Bluetooth", "32 GPIO Pins", "Arduino Compatible", "FCC Certified"},
		},
		{
			ID:       "4",
			Name:     "Passive Components Kit",
			Category: "Passive Components",
			BaseCost: 7.50,
			Tier:     models.TierBasic,
			Features: []string{"Resistors & Capacitors", "Standard Values", "5% Tolerance", "Bulk Packaging"},
		},
	}
}

// SeedCompetitors returns the demo competitor set.
func SeedCompetitors() []models.Competitor {
	return []models.Competitor{
		{ID: "1", Name: "ComponentSource Wholesale", ProductCategory: "Microcontrollers", BasePrice: 9.50, PriceRangeMin: 8.50, PriceRangeMax: 11.00, MarketShare: 25},
		{ID: "2", Name: "ElectroParts Direct", ProductCategory: "Wireless Modules", BasePrice: 10.80, PriceRangeMin: 10.50, PriceRangeMax: 12.50, MarketShare: 30},
		{ID: "3", Name: "Global Inc", ProductCategory: "Displays", BasePrice: 9.50, PriceRangeMin: 8.50, PriceRangeMax: 10.50, MarketShare: 20},
	}
}

// SeedMarketCondition returns the demo market snapshot.
func SeedMarketCondition() models.MarketCondition {
	return models.MarketCondition{
		Date:              "2024-03-15",
		Industry:          "Electronics Wholesale",
		TrendDirection:    models.TrendUp,
		EconomicIndicator: 1.05,
		SeasonalFactor:    1.02,
		News: []string{
			"Electronics component demand up 15% YoY",
			"IoT and smart device market driving growth",
			"Supply chain stability improving after chip shortage",
			"Q1 2024 electronics wholesale confidence high",
		},
	}
}
