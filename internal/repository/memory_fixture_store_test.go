package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeedStore() *MemoryFixtureStore {
	return NewMemoryFixtureStore(SeedCustomers(), SeedProducts(), SeedCompetitors(), SeedMarketCondition())
}

func TestFindCustomer(t *testing.T) {
	s := newSeedStore()

	c, ok := s.FindCustomer("1")
	require.True(t, ok)
	assert.Equal(t, "ElectroRetail Chain", c.Name)

	_, ok = s.FindCustomer("does-not-exist")
	assert.False(t, ok)
}

func TestFindProduct(t *testing.T) {
	s := newSeedStore()

	p, ok := s.FindProduct("3")
	require.True(t, ok)
	assert.Equal(t, "WiFi Modules (ESP32)", p.Name)

	_, ok = s.FindProduct("")
	assert.False(t, ok)
}

func TestFindReturnsCopy(t *testing.T) {
	s := newSeedStore()

	c, ok := s.FindCustomer("1")
	require.True(t, ok)
	c.Name = "mutated"
	c.RelationshipStrength = 0

	again, ok := s.FindCustomer("1")
	require.True(t, ok)
	assert.Equal(t, "ElectroRetail Chain", again.Name)
	assert.InDelta(t, 0.92, again.RelationshipStrength, 1e-9)
}

func TestListOrderIsStable(t *testing.T) {
	s := newSeedStore()

	customers := s.ListCustomers()
	require.Len(t, customers, 4)
	for i, c := range customers {
		assert.Equal(t, SeedCustomers()[i].ID, c.ID)
	}

	products := s.ListProducts()
	require.Len(t, products, 4)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "4", products[3].ID)
}

func TestListCompetitorsReturnsCopy(t *testing.T) {
	s := newSeedStore()

	first := s.ListCompetitors()
	require.Len(t, first, 3)
	first[0].BasePrice = 0

	again := s.ListCompetitors()
	assert.InDelta(t, 9.50, again[0].BasePrice, 1e-9)
}

func TestCurrentMarketCondition(t *testing.T) {
	s := newSeedStore()

	mc := s.CurrentMarketCondition()
	assert.InDelta(t, 1.05, mc.EconomicIndicator, 1e-9)
	assert.InDelta(t, 1.02, mc.SeasonalFactor, 1e-9)
	assert.NotEmpty(t, mc.News)
}

func TestDuplicateIDsIgnored(t *testing.T) {
	customers := SeedCustomers()
	customers = append(customers, customers[0])

	s := NewMemoryFixtureStore(customers, SeedProducts(), nil, SeedMarketCondition())
	assert.Len(t, s.ListCustomers(), 4)
}
