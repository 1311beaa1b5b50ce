package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App        App
	API        API
	ImageCache ImageCache
	HTTP       HTTP
}

type App struct {
	Name     string `env:"APP_NAME" envDefault:"product-viewer"`
	Version  string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// API describes the remote deals service.
type API struct {
	BaseURL string `env:"API_BASE_URL" envDefault:"https://api.target.com/mobile_case_study_deals/v1"`
	// RequestTimeout bounds one round trip. Zero leaves calls unbounded and
	// relies on cancellation by a newer load.
	RequestTimeout time.Duration `env:"API_REQUEST_TIMEOUT" envDefault:"0"`
	LogFieldMaxLen int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type ImageCache struct {
	CountLimit     int `env:"IMAGE_CACHE_COUNT_LIMIT" envDefault:"50"`
	TotalCostLimit int `env:"IMAGE_CACHE_TOTAL_COST_LIMIT" envDefault:"52428800"`
}

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	ProbeListenAddress   string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"METRICS_LISTEN_ADDRESS" envDefault:":8082"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
