package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP           HTTP
	Logger         Logger
	Postgres       Postgres
	AuthServiceURL string `env:"AUTH_SERVICE_URL"`
	Kafka          Kafka
	Approvals      Approvals
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers             []string `env:"KAFKA_BROKERS"`
	ApprovalEventsTopic string   `env:"KAFKA_APPROVAL_EVENTS_TOPIC"`
}

type Approvals struct {
	// RequestTTL is how long a pending approval request stays actionable
	// before the expiry job moves it to EXPIRED.
	RequestTTL time.Duration `env:"APPROVAL_REQUEST_TTL" envDefault:"168h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
