package config

import (
	"os"
	"time"
)

const (
	defaultHTTPAddr        = ":8080"
	defaultEnv             = "development"
	defaultShutdownTimeout = 10 * time.Second

	defaultReadHeaderTimeout = 5 * time.Second

	// EnvProduction suppresses error and stack detail in 500 bodies.
	EnvProduction = "production"
)

type Catalog struct {
	HTTPAddr          string
	Env               string
	RabbitMQURL       string
	ShutdownTimeout   time.Duration
	ReadHeaderTimeout time.Duration
}

// LoadCatalog reads the catalog service configuration from the environment.
// Every key has a usable default; RABBITMQ_URL left empty disables event
// publishing. HTTP_ADDR wins over PORT when both are set.
func LoadCatalog() (Catalog, error) {
	cfg := Catalog{
		HTTPAddr:          getEnv("HTTP_ADDR", ""),
		Env:               getEnv("APP_ENV", defaultEnv),
		RabbitMQURL:       getEnv("RABBITMQ_URL", ""),
		ShutdownTimeout:   defaultShutdownTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	if cfg.HTTPAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.HTTPAddr = ":" + port
		} else {
			cfg.HTTPAddr = defaultHTTPAddr
		}
	}

	return cfg, nil
}

func (c Catalog) Production() bool {
	return c.Env == EnvProduction
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
