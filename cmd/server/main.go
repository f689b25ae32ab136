package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartgridlink/energy-trading-api/internal/api"
	"github.com/smartgridlink/energy-trading-api/internal/core/ports"
	"github.com/smartgridlink/energy-trading-api/internal/core/service"
	"github.com/smartgridlink/energy-trading-api/internal/fixtures"
	"github.com/smartgridlink/energy-trading-api/internal/infrastructure/db/memory"
	mongodb "github.com/smartgridlink/energy-trading-api/internal/infrastructure/db/mongo"
	redisdb "github.com/smartgridlink/energy-trading-api/internal/infrastructure/db/redis"
	"github.com/smartgridlink/energy-trading-api/internal/infrastructure/queue"
	"github.com/smartgridlink/energy-trading-api/internal/pkg/config"
	"github.com/smartgridlink/energy-trading-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "energy-trading-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Session persistence: Redis when configured, in-memory otherwise.
	var sessions ports.SessionStorage = memory.NewSessionStorage()
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer func() { _ = client.Close() }()
		sessions = redisdb.NewSessionStorage(client)
		rdb = client
	}

	// Credential store: MongoDB when configured, fixture table otherwise.
	var creds ports.CredentialRepository = memory.NewCredentialRepository(fixtures.Credentials())
	var auditRepo ports.AuditRepository = memory.NewAuditRepository(0)
	var db *mongo.Database
	if cfg.Mongo.URI != "" {
		client, database, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connect failed")
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		creds = mongodb.NewCredentialRepository(database)
		auditRepo = mongodb.NewAuditRepository(database)
		db = database
	}

	// Audit pipeline: recorder behind a sharded dispatcher, optional broker.
	var publisher ports.EventPublisher
	if cfg.AMQP.URL != "" {
		publisher = queue.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Queue, log)
	}
	recorder := service.NewAuditService(auditRepo, publisher, log)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, recorder, log)
	dispatcher.Start(ctx)

	identity := service.NewIdentityService(creds, sessions, service.IdentityDelays{
		Login:  cfg.Latency.Login,
		Signup: cfg.Latency.Signup,
		Logout: cfg.Latency.Logout,
		Update: cfg.Latency.Update,
	}, log)

	store := service.NewSessionStore(identity, dispatcher, log)
	store.Initialize(ctx)

	dashboards := service.NewDashboardService(service.DashboardData{
		Users:         fixtures.Users(),
		Trades:        fixtures.Trades(),
		Producers:     fixtures.Producers(),
		Metrics:       fixtures.SystemMetrics(),
		ProducerStats: fixtures.ProducerStats(),
		ConsumerStats: fixtures.ConsumerStats(),
		TopBuyers:     fixtures.TopBuyers(),
	}, log)

	e := api.NewRouter(api.RouterConfig{
		Store:      store,
		Dashboards: dashboards,
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		Mongo:      db,
		Redis:      rdb,
		Log:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
