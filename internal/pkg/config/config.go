package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
	JWTSecret string        `env:"JWT_SECRET, default=dev-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`

	Latency LatencyConfig
	Audit   AuditConfig
	Redis   RedisConfig
	Mongo   MongoConfig
	AMQP    AMQPConfig
}

// LatencyConfig tunes the simulated identity-backend latency. Zero disables
// a delay; the defaults mirror a slow remote identity provider.
type LatencyConfig struct {
	Login  time.Duration `env:"LATENCY_LOGIN,  default=800ms"`
	Signup time.Duration `env:"LATENCY_SIGNUP, default=800ms"`
	Logout time.Duration `env:"LATENCY_LOGOUT, default=300ms"`
	Update time.Duration `env:"LATENCY_UPDATE, default=500ms"`
}

type AuditConfig struct {
	Workers int `env:"AUDIT_WORKERS, default=4"`
}

// RedisConfig enables Redis-backed session persistence when Addr is set;
// empty means in-memory.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// MongoConfig enables the MongoDB credential store when URI is set; empty
// means the fixture table.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=smartgridlink"`
}

// AMQPConfig enables session-event publishing when URL is set.
type AMQPConfig struct {
	URL   string `env:"AMQP_URL"`
	Queue string `env:"AMQP_QUEUE, default=session.events"`
}

// Load reads configuration from the environment using go-envconfig. A local
// .env file is merged in first when present.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
