package repository

import "PricePull/internal/domain/models"

// FixtureStore supplies the immutable CRM fixture snapshot backing the
// pricing pipeline.
type FixtureStore interface {
	FindCustomer(id string) (*models.Customer, bool)
	FindProduct(id string) (*models.Product, bool)
	ListCustomers() []models.Customer
	ListProducts() []models.Product
	ListCompetitors() []models.Competitor
	CurrentMarketCondition() models.MarketCondition
}

// Metrics abstracts operational metrics recording.
type Metrics interface {
	RecordEstimate(productID string)
	RecordEstimatedPrice(productID string, price float64)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
