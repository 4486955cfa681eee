package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("signflow_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}

		viper.SetDefault("janitor.schedule", "0 3 * * *")
		viper.SetDefault("janitor.retention", "720h")
		viper.SetDefault("storage.root", "data/blobs")

		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			Postgresql: PostgresqlConfig{
				URL: viper.GetString("database.url"),
				DSN: viper.GetString("database.dsn"),
			},
			Kafka: KafkaConfig{
				Brokers:        viper.GetStringSlice("kafka.brokers"),
				Group:          viper.GetString("kafka.group"),
				SchemaRegistry: viper.GetString("kafka.schema_registry"),
			},
			Redis: RedisConfig{
				Addr:     viper.GetString("redis.addr"),
				Password: viper.GetString("redis.password"),
				DB:       viper.GetInt("redis.db"),
			},
			Storage: StorageConfig{
				Root: viper.GetString("storage.root"),
			},
			Janitor: JanitorConfig{
				Schedule:  viper.GetString("janitor.schedule"),
				Retention: viper.GetDuration("janitor.retention"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General    GeneralConfig
	Postgresql PostgresqlConfig
	Kafka      KafkaConfig
	Redis      RedisConfig
	Storage    StorageConfig
	Janitor    JanitorConfig
}

type GeneralConfig struct {
	LogLevel string
}

type PostgresqlConfig struct {
	URL string
	DSN string
}

type KafkaConfig struct {
	Brokers        []string
	Group          string
	SchemaRegistry string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type StorageConfig struct {
	Root string
}

type JanitorConfig struct {
	Schedule  string
	Retention time.Duration
}
