// Package config loads the service configuration from the environment.
//
// A .env file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"

	"github.com/Ivanvillan/front-820hd-sub000/internal/refresh"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Port        int    `env:"PORT" envDefault:"8080"`

	AWS     AWSConfig     `envPrefix:"AWS_"`
	Dynamo  DynamoConfig  `envPrefix:"DYNAMODB_"`
	Export  ExportConfig  `envPrefix:"EXPORT_"`
	Redis   RedisConfig   `envPrefix:"REDIS_"`
	Refresh RefreshConfig `envPrefix:"REFRESH_"`
}

// AWSConfig uses static credentials because local DynamoDB and MinIO do not
// validate them while the SDK still requires some.
type AWSConfig struct {
	Region          string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY" envDefault:"local"`
}

type DynamoConfig struct {
	Endpoint         string `env:"ENDPOINT"`
	OrdersTable      string `env:"ORDERS_TABLE" envDefault:"orders"`
	MaterialsTable   string `env:"MATERIALS_TABLE" envDefault:"materials"`
	TechniciansTable string `env:"TECHNICIANS_TABLE" envDefault:"technicians"`
	CustomersTable   string `env:"CUSTOMERS_TABLE" envDefault:"customers"`
}

type ExportConfig struct {
	Bucket   string `env:"BUCKET" envDefault:"order-documents"`
	Prefix   string `env:"PREFIX" envDefault:"orders/"`
	Endpoint string `env:"ENDPOINT"`
}

type RedisConfig struct {
	Enabled  bool          `env:"ENABLED" envDefault:"false"`
	Host     string        `env:"HOST" envDefault:"localhost"`
	Port     int           `env:"PORT" envDefault:"6379"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"10m"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RefreshConfig struct {
	Interval   time.Duration `env:"INTERVAL" envDefault:"60s"`
	Retries    int           `env:"RETRIES" envDefault:"3"`
	RetryDelay time.Duration `env:"RETRY_DELAY" envDefault:"5s"`
}

func (c RefreshConfig) Scheduler() refresh.Config {
	return refresh.Config{
		Interval:   c.Interval,
		Retries:    c.Retries,
		RetryDelay: c.RetryDelay,
	}
}

func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse configuration")
	}
	if cfg.Refresh.Retries < 0 {
		return Config{}, errors.New("REFRESH_RETRIES must not be negative")
	}
	return cfg, nil
}
