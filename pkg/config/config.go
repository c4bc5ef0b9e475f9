package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	GRPCPort int `envconfig:"GRPC_PORT" default:"8081"`
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Gateway -> API
	APIAddr    string        `envconfig:"API_ADDR" default:"localhost:8081"`
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"5s"`

	Catalog CatalogConfig
	AMQP    AMQPConfig
}

type CatalogConfig struct {
	File     string `envconfig:"CATALOG_FILE"`
	Currency string `envconfig:"CATALOG_CURRENCY" default:"RUB"`
}

// AMQPConfig enables cart event publishing when URL is set.
type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE"`
	Queue    string `envconfig:"AMQP_QUEUE" default:"cart-events"`
}

func (c AMQPConfig) Enabled() bool {
	return c.URL != ""
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}

func MustLoad(files ...string) Config {
	cfg, err := Load(files...)
	if err != nil {
		panic(err)
	}
	return cfg
}
