package config

import (
	"os"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantAddr string
		wantEnv  string
	}{
		{
			name:     "all defaults",
			env:      map[string]string{},
			wantAddr: defaultHTTPAddr,
			wantEnv:  defaultEnv,
		},
		{
			name:     "HTTP_ADDR overrides default",
			env:      map[string]string{"HTTP_ADDR": ":9090"},
			wantAddr: ":9090",
			wantEnv:  defaultEnv,
		},
		{
			name:     "PORT fallback",
			env:      map[string]string{"PORT": "3000"},
			wantAddr: ":3000",
			wantEnv:  defaultEnv,
		},
		{
			name:     "HTTP_ADDR wins over PORT",
			env:      map[string]string{"HTTP_ADDR": ":9090", "PORT": "3000"},
			wantAddr: ":9090",
			wantEnv:  defaultEnv,
		},
		{
			name:     "production mode",
			env:      map[string]string{"APP_ENV": "production"},
			wantAddr: defaultHTTPAddr,
			wantEnv:  EnvProduction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadCatalog()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.HTTPAddr != tt.wantAddr {
				t.Fatalf("want HTTPAddr %q, got %q", tt.wantAddr, cfg.HTTPAddr)
			}
			if cfg.Env != tt.wantEnv {
				t.Fatalf("want Env %q, got %q", tt.wantEnv, cfg.Env)
			}
			if cfg.ShutdownTimeout != defaultShutdownTimeout {
				t.Fatalf("want ShutdownTimeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
			}
			if cfg.ReadHeaderTimeout != defaultReadHeaderTimeout {
				t.Fatalf("want ReadHeaderTimeout %v, got %v", defaultReadHeaderTimeout, cfg.ReadHeaderTimeout)
			}
		})
	}
}

func TestLoadCatalog_ProductionFlag(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Production() {
		t.Fatal("want Production() true for APP_ENV=production")
	}

	clearConfigEnv(t)
	cfg, _ = LoadCatalog()
	if cfg.Production() {
		t.Fatal("want Production() false by default")
	}
}

func TestLoadCatalog_OptionalBroker(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RabbitMQURL != "" {
		t.Fatalf("want empty RabbitMQURL by default, got %q", cfg.RabbitMQURL)
	}

	t.Setenv("RABBITMQ_URL", "amqp://localhost")
	cfg, _ = LoadCatalog()
	if cfg.RabbitMQURL != "amqp://localhost" {
		t.Fatalf("want RabbitMQURL passthrough, got %q", cfg.RabbitMQURL)
	}
}

func TestLoadNotifier(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing RABBITMQ_URL",
			env:     map[string]string{},
			wantErr: "RABBITMQ_URL is required",
		},
		{
			name: "valid config",
			env:  map[string]string{"RABBITMQ_URL": "amqp://localhost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadNotifier()
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Fatalf("want error %q, got %q", tt.wantErr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.RabbitMQURL != tt.env["RABBITMQ_URL"] {
				t.Fatalf("want RabbitMQURL %q, got %q", tt.env["RABBITMQ_URL"], cfg.RabbitMQURL)
			}
			if cfg.ShutdownTimeout != defaultShutdownTimeout {
				t.Fatalf("want ShutdownTimeout %v, got %v", defaultShutdownTimeout, cfg.ShutdownTimeout)
			}
		})
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HTTP_ADDR", "PORT", "APP_ENV", "RABBITMQ_URL"} {
		if val, ok := os.LookupEnv(key); ok {
			t.Setenv(key, val)
		}
		os.Unsetenv(key)
	}
}
