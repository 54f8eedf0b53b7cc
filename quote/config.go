package quote

import (
	"os"

	"github.com/ParceladoLara/payment-plan-go/pkg/observability"
)

// Config carries the facade's runtime settings. The calculation engine
// itself takes no configuration beyond its explicit parameters.
type Config struct {
	Log observability.LogConfig
}

// Load reads the facade configuration from the environment.
func Load() Config {
	return Config{
		Log: observability.LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
