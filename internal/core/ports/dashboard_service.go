package ports

import (
	"context"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
)

// AdminOverview is the admin dashboard payload.
type AdminOverview struct {
	Metrics      domain.SystemMetrics `json:"metrics"`
	RecentTrades []domain.EnergyTrade `json:"recent_trades"`
	Users        []domain.User        `json:"users"`
}

// ProducerOverview is the producer dashboard payload.
type ProducerOverview struct {
	Stats       domain.ProducerStats `json:"stats"`
	RecentSales []domain.EnergyTrade `json:"recent_sales"`
	TopBuyers   []domain.TopBuyer    `json:"top_buyers"`
}

// ConsumerOverview is the consumer dashboard payload.
type ConsumerOverview struct {
	Stats           domain.ConsumerStats `json:"stats"`
	RecentPurchases []domain.EnergyTrade `json:"recent_purchases"`
}

// DashboardService serves the role-specific dashboard views.
type DashboardService interface {
	AdminOverview(ctx context.Context) (*AdminOverview, error)
	ProducerOverview(ctx context.Context, producerID string) (*ProducerOverview, error)
	ConsumerOverview(ctx context.Context, consumerID string) (*ConsumerOverview, error)

	// NearbyProducers lists producers for the community map, optionally
	// restricted to those currently available.
	NearbyProducers(ctx context.Context, onlyAvailable bool) ([]domain.EnergyProducer, error)
}
