package repository

import (
	domrepo "PricePull/internal/domain/repository"

	"PricePull/internal/domain/models"
)

// MemoryFixtureStore holds the CRM fixture snapshot in memory. Records are
// immutable after construction; lookups return copies so callers cannot
// mutate the snapshot.
type MemoryFixtureStore struct {
	customers   map[string]models.Customer
	products    map[string]models.Product
	customerIDs []string
	productIDs  []string
	competitors []models.Competitor
	market      models.MarketCondition
}

// NewMemoryFixtureStore builds a store from caller-owned fixture slices.
func NewMemoryFixtureStore(
	customers []models.Customer,
	products []models.Product,
	competitors []models.Competitor,
	market models.MarketCondition,
) *MemoryFixtureStore {
	s := &MemoryFixtureStore{
		customers:   make(map[string]models.Customer, len(customers)),
		products:    make(map[string]models.Product, len(products)),
		competitors: make([]models.Competitor, len(competitors)),
		market:      market,
	}
	for _, c := range customers {
		if _, dup := s.customers[c.ID]; dup {
			continue
		}
		s.customers[c.ID] = c
		s.customerIDs = append(s.customerIDs, c.ID)
	}
	for _, p := range products {
		if _, dup := s.products[p.ID]; dup {
			continue
		}
		s.products[p.ID] = p
		s.productIDs = append(s.productIDs, p.ID)
	}
	copy(s.competitors, competitors)
	return s
}

func (s *MemoryFixtureStore) FindCustomer(id string) (*models.Customer, bool) {
	c, ok := s.customers[id]
	if !ok {
		return nil, false
	}
	return &c, true
}

func (s *MemoryFixtureStore) FindProduct(id string) (*models.Product, bool) {
	p, ok := s.products[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

// ListCustomers returns customers in insertion order.
func (s *MemoryFixtureStore) ListCustomers() []models.Customer {
	out := make([]models.Customer, 0, len(s.customerIDs))
	for _, id := range s.customerIDs {
		out = append(out, s.customers[id])
	}
	return out
}

// ListProducts returns products in insertion order.
func (s *MemoryFixtureStore) ListProducts() []models.Product {
	out := make([]models.Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		out = append(out, s.products[id])
	}
	return out
}

func (s *MemoryFixtureStore) ListCompetitors() []models.Competitor {
	out := make([]models.Competitor, len(s.competitors))
	copy(out, s.competitors)
	return out
}

func (s *MemoryFixtureStore) CurrentMarketCondition() models.MarketCondition {
	return s.market
}

var _ domrepo.FixtureStore = (*MemoryFixtureStore)(nil)
