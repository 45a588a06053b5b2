package config

import (
	"github.com/caarlos0/env/v11"
)

// Config collects every environment knob the service reads at startup.
// JWT_SECRET is read directly by the jwt package when signing/verifying.
type Config struct {
	ServiceName  string `env:"SERVICE_NAME" envDefault:"mentorlink"`
	AppPort      string `env:"APP_PORT" envDefault:"8001"`
	NatsURL      string `env:"NATS_URL"`
	OtelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"jaeger:4317"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
