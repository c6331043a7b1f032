package config

import (
	"fmt"
	"time"
)

type Notifier struct {
	RabbitMQURL     string
	ShutdownTimeout time.Duration
}

// LoadNotifier reads the notifier configuration. Unlike the catalog service,
// the notifier is useless without a broker, so RABBITMQ_URL is required.
func LoadNotifier() (Notifier, error) {
	cfg := Notifier{
		RabbitMQURL:     getEnv("RABBITMQ_URL", ""),
		ShutdownTimeout: defaultShutdownTimeout,
	}

	if cfg.RabbitMQURL == "" {
		return Notifier{}, fmt.Errorf("RABBITMQ_URL is required")
	}

	return cfg, nil
}
