package domain

import "time"

// TradeStatus represents the lifecycle state of an energy trade.
type TradeStatus string

const (
	TradePending   TradeStatus = "pending"
	TradeCompleted TradeStatus = "completed"
	TradeCancelled TradeStatus = "cancelled"
)

const (
	EnergySolar = "solar"
	EnergyWind  = "wind"
	EnergyHydro = "hydro"
	EnergyOther = "other"
)

// EnergyTrade is a single peer-to-peer energy transaction between a
// producer and a consumer.
type EnergyTrade struct {
	ID           string      `json:"id"`
	ProducerID   string      `json:"producer_id"`
	ProducerName string      `json:"producer_name"`
	ConsumerID   string      `json:"consumer_id"`
	ConsumerName string      `json:"consumer_name"`
	AmountKWh    float64     `json:"amount_kwh"`
	PricePerKWh  float64     `json:"price_per_kwh"`
	TotalPrice   float64     `json:"total_price"`
	Timestamp    time.Time   `json:"timestamp"`
	Status       TradeStatus `json:"status"`
}

// Location is a geographic point with a display address.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// EnergyProducer is a producer installation visible on the community map.
type EnergyProducer struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Location        Location `json:"location"`
	CapacityKW      float64  `json:"capacity_kw"`
	CurrentOutputKW float64  `json:"current_output_kw"`
	EnergyType      string   `json:"energy_type"`
	PricePerKWh     float64  `json:"price_per_kwh"`
	Available       bool     `json:"available"`
}

// ProducerStats aggregates a producer's trading position for display.
type ProducerStats struct {
	TotalProducedKWh  float64 `json:"total_produced_kwh"`
	TotalSoldKWh      float64 `json:"total_sold_kwh"`
	Revenue           float64 `json:"revenue"`
	TokenBalance      float64 `json:"token_balance"`
	ActiveConnections int     `json:"active_connections"`
}

// ConsumerStats aggregates a consumer's purchasing position for display.
type ConsumerStats struct {
	TotalConsumedKWh  float64 `json:"total_consumed_kwh"`
	TotalSpent        float64 `json:"total_spent"`
	TokenBalance      float64 `json:"token_balance"`
	ActiveConnections int     `json:"active_connections"`
}

// SystemMetrics is the platform-wide view shown on the admin dashboard.
type SystemMetrics struct {
	TotalUsers        int     `json:"total_users"`
	TotalProducers    int     `json:"total_producers"`
	TotalConsumers    int     `json:"total_consumers"`
	TotalTrades       int     `json:"total_trades"`
	TotalEnergyKWh    float64 `json:"total_energy_kwh"`
	TotalRevenue      float64 `json:"total_revenue"`
	ActiveConnections int     `json:"active_connections"`
}

// TopBuyer summarises a consumer's purchase history with one producer.
type TopBuyer struct {
	Name           string  `json:"name"`
	Purchases      int     `json:"purchases"`
	TotalEnergyKWh float64 `json:"total_energy_kwh"`
	TotalSpent     float64 `json:"total_spent"`
}
