package wire

import (
	"log/slog"
	"os"
	"time"

	"signflow-server/cmd/config"
	"signflow-server/internal/infra/cache"
	"signflow-server/internal/infra/pdf"
	"signflow-server/internal/infra/pubsub"
	"signflow-server/internal/infra/sql"
	"signflow-server/internal/infra/storage"
	"signflow-server/internal/signing/flattening"
	"signflow-server/internal/signing/usecases"
)

func environment() string {
	env, ok := os.LookupEnv("ENV")
	if !ok {
		env = "production"
	}
	return env
}

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

func provideDatabase(cfg config.AppConfig) sql.ORM {
	if environment() == "local" {
		orm, err := sql.NewMemoryORM("migrations")
		if err != nil {
			panic(err)
		}
		return orm
	}

	orm, err := sql.NewPosgreORM(cfg.Postgresql.DSN)
	if err != nil {
		panic(err)
	}
	return orm
}

func providePublisherFactory(cfg config.AppConfig) pubsub.PublisherFactory {
	if environment() == "local" {
		return pubsub.NewMemoryPublisherFactory()
	}

	return pubsub.NewKafkaPublisherFactory(pubsub.KafkaPublisherFactoryOptions{
		Brokers:           cfg.Kafka.Brokers,
		SchemaRegistryURL: cfg.Kafka.SchemaRegistry,
	})
}

func provideCache(cfg config.AppConfig) cache.Cache {
	if environment() != "local" && cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err == nil {
			return redisCache
		}
		slog.Warn("redis cache unavailable, falling back to in-memory cache",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("error", err.Error()))
	}

	memoryCache, err := cache.New(nil)
	if err != nil {
		panic(err)
	}
	return memoryCache
}

func provideFileStore(cfg config.AppConfig) usecases.FileStore {
	store, err := storage.NewLocalFileStore(cfg.Storage.Root)
	if err != nil {
		panic(err)
	}
	return store
}

func providePDFProcessor() pdf.Processor {
	return pdf.NewProcessor()
}

func provideFlattener(processor pdf.Processor) *flattening.Flattener {
	return flattening.NewFlattener(processor)
}

func provideJanitorSchedule(cfg config.AppConfig) string {
	return cfg.Janitor.Schedule
}

func provideJanitorRetention(cfg config.AppConfig) time.Duration {
	return cfg.Janitor.Retention
}
