// Package fixtures holds the hard-coded demo dataset the platform serves in
// place of a real backend: seed accounts, trades, producer installations,
// and dashboard aggregates.
package fixtures

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

// Seed account passwords. Demo data only; hashed with MinCost so startup
// stays fast.
const (
	AdminEmail    = "admin@smartgridlink.com"
	AdminPassword = "admin123"

	ProducerEmail    = "producer@smartgridlink.com"
	ProducerPassword = "producer123"

	ConsumerEmail    = "consumer@smartgridlink.com"
	ConsumerPassword = "consumer123"
)

func ts(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func hash(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h)
}

// Credentials returns the seed account records for the in-memory backend.
func Credentials() []domain.Credential {
	return []domain.Credential{
		{
			User: domain.User{
				ID:        "1",
				Email:     AdminEmail,
				Name:      "Admin User",
				Role:      domain.RoleAdmin,
				Address:   "123 Admin Street, Cape Town, South Africa",
				CreatedAt: ts("2024-01-15T10:00:00Z"),
			},
			PasswordHash: hash(AdminPassword),
		},
		{
			User: domain.User{
				ID:        "2",
				Email:     ProducerEmail,
				Name:      "Solar Farm Producer",
				Role:      domain.RoleProducer,
				Address:   "456 Solar Avenue, Johannesburg, South Africa",
				CreatedAt: ts("2024-02-20T14:30:00Z"),
			},
			PasswordHash: hash(ProducerPassword),
		},
		{
			User: domain.User{
				ID:        "3",
				Email:     ConsumerEmail,
				Name:      "Home Consumer",
				Role:      domain.RoleConsumer,
				Address:   "789 Home Road, Durban, South Africa",
				CreatedAt: ts("2024-03-10T09:15:00Z"),
			},
			PasswordHash: hash(ConsumerPassword),
		},
	}
}

// Users returns the password-free account directory shown on the admin
// dashboard.
func Users() []domain.User {
	users := make([]domain.User, 0, 7)
	for _, c := range Credentials() {
		users = append(users, c.User)
	}
	users = append(users,
		domain.User{ID: "4", Email: "john.solar@example.com", Name: "John Solar", Role: domain.RoleProducer, CreatedAt: ts("2024-01-25T11:20:00Z")},
		domain.User{ID: "5", Email: "jane.wind@example.com", Name: "Jane Wind", Role: domain.RoleProducer, CreatedAt: ts("2024-02-05T16:45:00Z")},
		domain.User{ID: "6", Email: "bob.consumer@example.com", Name: "Bob Smith", Role: domain.RoleConsumer, CreatedAt: ts("2024-03-01T08:30:00Z")},
		domain.User{ID: "7", Email: "alice.home@example.com", Name: "Alice Johnson", Role: domain.RoleConsumer, CreatedAt: ts("2024-03-15T13:00:00Z")},
	)
	return users
}

// Trades returns the recent platform-wide trade history.
func Trades() []domain.EnergyTrade {
	return []domain.EnergyTrade{
		{ID: "T001", ProducerID: "2", ProducerName: "Solar Farm Producer", ConsumerID: "3", ConsumerName: "Home Consumer", AmountKWh: 150, PricePerKWh: 2.50, TotalPrice: 375.0, Timestamp: ts("2025-01-14T14:30:00Z"), Status: domain.TradeCompleted},
		{ID: "T002", ProducerID: "4", ProducerName: "John Solar", ConsumerID: "6", ConsumerName: "Bob Smith", AmountKWh: 200, PricePerKWh: 2.30, TotalPrice: 460.0, Timestamp: ts("2025-01-14T15:45:00Z"), Status: domain.TradeCompleted},
		{ID: "T003", ProducerID: "5", ProducerName: "Jane Wind", ConsumerID: "7", ConsumerName: "Alice Johnson", AmountKWh: 180, PricePerKWh: 2.70, TotalPrice: 486.0, Timestamp: ts("2025-01-14T16:20:00Z"), Status: domain.TradeCompleted},
		{ID: "T004", ProducerID: "2", ProducerName: "Solar Farm Producer", ConsumerID: "6", ConsumerName: "Bob Smith", AmountKWh: 120, PricePerKWh: 2.50, TotalPrice: 300.0, Timestamp: ts("2025-01-15T09:15:00Z"), Status: domain.TradePending},
		{ID: "T005", ProducerID: "4", ProducerName: "John Solar", ConsumerID: "3", ConsumerName: "Home Consumer", AmountKWh: 250, PricePerKWh: 2.30, TotalPrice: 575.0, Timestamp: ts("2025-01-15T10:30:00Z"), Status: domain.TradeCompleted},
	}
}

// SystemMetrics returns the platform-wide aggregates for the admin view.
func SystemMetrics() domain.SystemMetrics {
	return domain.SystemMetrics{
		TotalUsers:        1247,
		TotalProducers:    423,
		TotalConsumers:    824,
		TotalTrades:       8934,
		TotalEnergyKWh:    1567890,
		TotalRevenue:      187456.80,
		ActiveConnections: 342,
	}
}

// ProducerStats returns the demo producer's trading position.
func ProducerStats() domain.ProducerStats {
	return domain.ProducerStats{
		TotalProducedKWh:  45680,
		TotalSoldKWh:      42150,
		Revenue:           5058.0,
		TokenBalance:      1250.5,
		ActiveConnections: 12,
	}
}

// ConsumerStats returns the demo consumer's purchasing position.
func ConsumerStats() domain.ConsumerStats {
	return domain.ConsumerStats{
		TotalConsumedKWh:  3850,
		TotalSpent:        462.0,
		TokenBalance:      450.25,
		ActiveConnections: 5,
	}
}

// TopBuyers returns the demo producer's best customers.
func TopBuyers() []domain.TopBuyer {
	return []domain.TopBuyer{
		{Name: "Home Consumer", Purchases: 24, TotalEnergyKWh: 3600, TotalSpent: 432.0},
		{Name: "Bob Smith", Purchases: 18, TotalEnergyKWh: 2880, TotalSpent: 345.6},
		{Name: "Alice Johnson", Purchases: 15, TotalEnergyKWh: 2400, TotalSpent: 288.0},
		{Name: "Tech Corp", Purchases: 12, TotalEnergyKWh: 3000, TotalSpent: 360.0},
		{Name: "Green Cafe", Purchases: 10, TotalEnergyKWh: 1800, TotalSpent: 216.0},
	}
}

// Producers returns the installations shown on the community map.
func Producers() []domain.EnergyProducer {
	return []domain.EnergyProducer{
		{ID: "P001", Name: "Solar Farm Producer", Location: domain.Location{Lat: 37.7749, Lng: -122.4194, Address: "123 Solar St, San Francisco, CA"}, CapacityKW: 500, CurrentOutputKW: 420, EnergyType: domain.EnergySolar, PricePerKWh: 2.50, Available: true},
		{ID: "P002", Name: "Wind Energy Co", Location: domain.Location{Lat: 37.7849, Lng: -122.4094, Address: "456 Wind Ave, San Francisco, CA"}, CapacityKW: 800, CurrentOutputKW: 650, EnergyType: domain.EnergyWind, PricePerKWh: 2.30, Available: true},
		{ID: "P003", Name: "Hydro Power Station", Location: domain.Location{Lat: 37.7649, Lng: -122.4294, Address: "789 River Rd, San Francisco, CA"}, CapacityKW: 1200, CurrentOutputKW: 980, EnergyType: domain.EnergyHydro, PricePerKWh: 2.10, Available: true},
		{ID: "P004", Name: "Community Solar", Location: domain.Location{Lat: 37.7949, Lng: -122.3994, Address: "321 Green Blvd, San Francisco, CA"}, CapacityKW: 300, CurrentOutputKW: 280, EnergyType: domain.EnergySolar, PricePerKWh: 2.70, Available: true},
		{ID: "P005", Name: "Eco Wind Farm", Location: domain.Location{Lat: 37.7549, Lng: -122.4394, Address: "654 Breeze Ln, San Francisco, CA"}, CapacityKW: 600, CurrentOutputKW: 0, EnergyType: domain.EnergyWind, PricePerKWh: 2.30, Available: false},
	}
}
