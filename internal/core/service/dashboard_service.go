package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smartgridlink/energy-trading-api/internal/core/domain"
	"github.com/smartgridlink/energy-trading-api/internal/core/ports"
)

// DashboardData is the fixture dataset the dashboards are built from.
type DashboardData struct {
	Users         []domain.User
	Trades        []domain.EnergyTrade
	Producers     []domain.EnergyProducer
	Metrics       domain.SystemMetrics
	ProducerStats domain.ProducerStats
	ConsumerStats domain.ConsumerStats
	TopBuyers     []domain.TopBuyer
}

type dashboardService struct {
	data DashboardData
	log  zerolog.Logger
}

// NewDashboardService returns a DashboardService serving the given fixture
// dataset. There is no caching or invalidation; reads are direct.
func NewDashboardService(data DashboardData, log zerolog.Logger) ports.DashboardService {
	return &dashboardService{data: data, log: log}
}

func (s *dashboardService) AdminOverview(ctx context.Context) (*ports.AdminOverview, error) {
	return &ports.AdminOverview{
		Metrics:      s.data.Metrics,
		RecentTrades: s.data.Trades,
		Users:        s.data.Users,
	}, nil
}

func (s *dashboardService) ProducerOverview(ctx context.Context, producerID string) (*ports.ProducerOverview, error) {
	sales := make([]domain.EnergyTrade, 0)
	for _, t := range s.data.Trades {
		if t.ProducerID == producerID {
			sales = append(sales, t)
		}
	}

	return &ports.ProducerOverview{
		Stats:       s.data.ProducerStats,
		RecentSales: sales,
		TopBuyers:   s.data.TopBuyers,
	}, nil
}

func (s *dashboardService) ConsumerOverview(ctx context.Context, consumerID string) (*ports.ConsumerOverview, error) {
	purchases := make([]domain.EnergyTrade, 0)
	for _, t := range s.data.Trades {
		if t.ConsumerID == consumerID {
			purchases = append(purchases, t)
		}
	}
	return &ports.ConsumerOverview{
		Stats:           s.data.ConsumerStats,
		RecentPurchases: purchases,
	}, nil
}

func (s *dashboardService) NearbyProducers(ctx context.Context, onlyAvailable bool) ([]domain.EnergyProducer, error) {
	if !onlyAvailable {
		return s.data.Producers, nil
	}
	out := make([]domain.EnergyProducer, 0, len(s.data.Producers))
	for _, p := range s.data.Producers {
		if p.Available {
			out = append(out, p)
		}
	}
	return out, nil
}
