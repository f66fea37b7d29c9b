package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/aalemi-dev/logkit/interceptor"
	"github.com/aalemi-dev/logkit/logger"
	"github.com/aalemi-dev/logkit/metrics"
	"github.com/aalemi-dev/logkit/tracer"
)

// Config aggregates the configuration of every logkit component.
type Config struct {
	Logger      logger.Config      `yaml:"logger"`
	Metrics     metrics.Config     `yaml:"metrics"`
	Tracer      tracer.Config      `yaml:"tracer"`
	Interceptor interceptor.Config `yaml:"interceptor"`

	// Catalog is the path of a YAML method catalog. Empty means none.
	Catalog string `yaml:"catalog" env:"LOGKIT_CATALOG"`
}

// Default returns the configuration used for keys that neither the file
// nor the environment set.
func Default() Config {
	return Config{
		Metrics: metrics.Config{
			SystemMetricsAddress:      metrics.DefaultSystemMetricsAddress,
			ApplicationMetricsAddress: metrics.DefaultApplicationMetricsAddress,
		},
		Interceptor: interceptor.Config{
			InvocationID: true,
			TraceFields:  true,
		},
	}
}

// Load reads the YAML file at path on top of Default, then applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadEnv builds the configuration from Default and the environment only.
func LoadEnv() (*Config, error) {
	cfg := Default()
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("load config from environment: %w", err)
	}
	return &cfg, nil
}

// Usage describes every environment variable Config reads.
func Usage() string {
	var cfg Config
	desc, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return desc
}
